// Package gesture turns pointer drags on the handle or the content of a
// sheet into live position tracking and release decisions.
package gesture

// Source identifies the surface a drag started on.
type Source int

const (
	SourceHandle Source = iota
	SourceContent
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceHandle:
		return "handle"
	case SourceContent:
		return "content"
	default:
		return "unknown"
	}
}

// Phase is the lifecycle stage of a pointer sample.
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseChanged
	PhaseEnded
	PhaseCancelled
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "Began"
	case PhaseChanged:
		return "Changed"
	case PhaseEnded:
		return "Ended"
	case PhaseCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether the phase closes a session.
func (p Phase) IsTerminal() bool {
	return p == PhaseEnded || p == PhaseCancelled
}

// Sample is one pointer update. TranslationY is the vertical distance since
// the press, positive downward. VelocityY is in rows per second.
type Sample struct {
	Source       Source
	Phase        Phase
	TranslationY float64
	VelocityY    float64
}

// Session is the state of one drag, from press to release.
type Session struct {
	StartPosition      float64
	StartContentOffset float64
	Phase              Phase

	// virtual is the unclamped sheet position the drag points at, so a
	// pointer that leaves the travel range and comes back lands where it
	// would have without clamping.
	virtual         float64
	lastTranslation float64
}
