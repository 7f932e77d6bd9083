// Package styles holds the demo colour palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour palette and pre-built styles.
type Theme struct {
	// Accent colours; the handle blends from HandleLow to HandleHigh as the
	// sheet moves from its first to its last snap point.
	Accent     lipgloss.Color
	HandleLow  lipgloss.Color
	HandleHigh lipgloss.Color

	// Text hierarchy (most to least prominent)
	Text       lipgloss.Color
	TextMuted  lipgloss.Color
	TextSubtle lipgloss.Color

	// Surfaces
	Backdrop lipgloss.Color
	Sheet    lipgloss.Color
	Dragging lipgloss.Color

	// Scrollbar
	Thumb      lipgloss.Color
	ThumbFlash lipgloss.Color
	Track      lipgloss.Color

	Error   lipgloss.Color
	Success lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Backdrop lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Event    lipgloss.Style
}

var defaultTheme = Theme{
	Accent:     lipgloss.Color("#a78bfa"),
	HandleLow:  lipgloss.Color("#585858"),
	HandleHigh: lipgloss.Color("#a78bfa"),

	Text:       lipgloss.Color("#c0c0c0"),
	TextMuted:  lipgloss.Color("#808080"),
	TextSubtle: lipgloss.Color("#585858"),

	Backdrop: lipgloss.Color("#121212"),
	Sheet:    lipgloss.Color("#1f1f2b"),
	Dragging: lipgloss.Color("#262636"),

	Thumb:      lipgloss.Color("#585858"),
	ThumbFlash: lipgloss.Color("#f1a208"),
	Track:      lipgloss.Color("#2a2a2a"),

	Error:   lipgloss.Color("#ff5555"),
	Success: lipgloss.Color("#42b883"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	text := lipgloss.NewStyle().Foreground(t.Text)
	return &Styles{
		Text:     text,
		Muted:    lipgloss.NewStyle().Foreground(t.TextMuted),
		Subtle:   lipgloss.NewStyle().Foreground(t.TextSubtle),
		Title:    text.Bold(true),
		Backdrop: lipgloss.NewStyle().Foreground(t.TextSubtle),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Event:    lipgloss.NewStyle().Foreground(t.Accent),
	}
}
