// Package layout provides pure functions for the sheet's on-screen
// dimensions.
package layout

import "math"

// NarrowThreshold is the terminal width below which the help shows only
// its short form.
const NarrowThreshold = 80

// EventLogWidth is the width of the floating event log.
const EventLogWidth = 34

// IsNarrowMode returns true if the terminal width is below the narrow
// threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// VisibleRows returns how many rows of a sheet of sheetHeight are on screen
// when its top sits at position. Overshoot past the top is cut at
// sheetHeight and past hidden at zero.
func VisibleRows(sheetHeight, position float64) int {
	if math.IsNaN(position) || sheetHeight <= 0 {
		return 0
	}
	rows := math.Round(sheetHeight - position)
	return int(math.Min(math.Max(rows, 0), math.Round(sheetHeight)))
}

// HandleRows returns how many of the visible rows belong to the handle.
func HandleRows(visibleRows, handleHeight int) int {
	return min(max(handleHeight, 0), max(visibleRows, 0))
}

// ContentRows returns the visible rows left for content below the handle.
func ContentRows(visibleRows, handleHeight int) int {
	return max(visibleRows-HandleRows(visibleRows, handleHeight), 0)
}

// ContentViewport returns the height the content is scrolled within: the
// content rows of the fully expanded sheet.
func ContentViewport(sheetHeight float64, handleHeight int) int {
	return ContentRows(int(math.Round(sheetHeight)), handleHeight)
}

// Fraction maps a continuous snap index onto [0, 1] over the last index.
// Hidden and single point sheets map to 0 and 1 respectively.
func Fraction(index float64, maxIndex int) float64 {
	if index < 0 || math.IsNaN(index) {
		return 0
	}
	if maxIndex <= 0 {
		return 1
	}
	return math.Min(index/float64(maxIndex), 1)
}

// EventLogRows returns the rows available to the event log above the
// sheet, leaving the status line free.
func EventLogRows(windowHeight, visibleRows, statusHeight int) int {
	return max(SheetTop(windowHeight, visibleRows)-statusHeight, 0)
}
