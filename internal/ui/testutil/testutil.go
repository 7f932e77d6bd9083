// Package testutil provides helpers for asserting on rendered views.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output compares as text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the display width of s, ignoring escape sequences.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// Lines splits a view into stripped lines. Trailing empty lines are kept
// since a view's height is part of what is asserted.
func Lines(view string) []string {
	return strings.Split(StripANSI(view), "\n")
}

// RowOf returns the index of the first line containing substr, or -1.
func RowOf(view, substr string) int {
	for i, line := range Lines(view) {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// ContainsLine checks if any line in view contains substr.
func ContainsLine(view, substr string) bool {
	return RowOf(view, substr) >= 0
}

// CountMatching returns the number of lines containing substr.
func CountMatching(view, substr string) int {
	n := 0
	for _, line := range Lines(view) {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}
