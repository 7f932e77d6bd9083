// Package ui provides shared UI constants and utilities.
package ui

import "time"

// Layout constants for the sheet demo.
const (
	// ScrollbarWidth is the column reserved on the right of the content.
	ScrollbarWidth = 1

	// WheelRows is how far one wheel notch scrolls the content.
	WheelRows = 3

	// PageOverlap is the number of rows kept on screen by a page scroll.
	PageOverlap = 2

	// StatusHeight is the status line at the top of the background page.
	StatusHeight = 1

	// FlashDuration is how long the scrollbar stays highlighted after the
	// sheet reaches its top snap point.
	FlashDuration = 600 * time.Millisecond
)
