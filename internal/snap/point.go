// Package snap resolves declarative snap points into concrete sheet offsets.
package snap

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultHandleHeight is added to every content-relative offset so the
// handle stays visible above the measured content.
const DefaultHandleHeight = 24

var (
	// ErrNoSnapPoints is returned when a sheet is configured without points.
	ErrNoSnapPoints = errors.New("no snap points provided")

	// ErrInvalidReference is returned when a reference name cannot be parsed.
	ErrInvalidReference = errors.New("invalid snap point reference")
)

// Reference is the dimension a snap point percentage applies to.
type Reference int

const (
	Window Reference = iota
	Content
)

// String returns the reference name used in configuration files.
func (r Reference) String() string {
	switch r {
	case Window:
		return "window"
	case Content:
		return "content"
	default:
		return "unknown"
	}
}

// ParseReference converts a configuration name into a Reference.
func ParseReference(s string) (Reference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "window":
		return Window, nil
	case "content":
		return Content, nil
	default:
		return Window, fmt.Errorf("%w: %q", ErrInvalidReference, s)
	}
}

// Point is a user-declared resting position, expressed as a percentage of
// either the window or the measured content height. Percentages above 100
// are allowed and clamped during resolution.
type Point struct {
	RelativeTo Reference
	Percentage float64
}

// WindowPct returns a window-relative point.
func WindowPct(pct float64) Point {
	return Point{RelativeTo: Window, Percentage: pct}
}

// ContentPct returns a content-relative point.
func ContentPct(pct float64) Point {
	return Point{RelativeTo: Content, Percentage: pct}
}

// HasContentPoints reports whether any point depends on content height.
func HasContentPoints(points []Point) bool {
	for _, p := range points {
		if p.RelativeTo == Content {
			return true
		}
	}
	return false
}
