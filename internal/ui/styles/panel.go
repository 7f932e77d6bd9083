package styles

import "github.com/charmbracelet/lipgloss"

// SheetStyle returns the row style of the sheet surface. A sheet being
// dragged is drawn slightly lighter.
func SheetStyle(dragging bool) lipgloss.Style {
	bg := T().Sheet
	if dragging {
		bg = T().Dragging
	}
	return lipgloss.NewStyle().Background(bg).Foreground(T().Text)
}

// ThumbStyle returns the scrollbar thumb style, highlighted while the
// indicators flash.
func ThumbStyle(flashing bool) lipgloss.Style {
	fg := T().Thumb
	if flashing {
		fg = T().ThumbFlash
	}
	return lipgloss.NewStyle().Foreground(fg)
}

// TrackStyle returns the scrollbar track style.
func TrackStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(T().Track)
}
