package ui

// Base holds the width and height a component is laid out with, never
// negative. Components embed it and react to the bool SetSize returns.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions. It reports whether they changed.
func (b *Base) SetSize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if b.width == width && b.height == height {
		return false
	}
	b.width = width
	b.height = height
	return true
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}
