// Package overlay composes layered views line by line.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view starting at row top.
// Leading and trailing spaces of each overlay line are transparent, so the
// base shows through around the visible content. ANSI styling on both
// layers is preserved.
func Compose(base, overlay string, width, top int) string {
	baseLines := strings.Split(base, "\n")

	for i, overlayLine := range strings.Split(overlay, "\n") {
		row := top + i
		if row < 0 {
			continue
		}
		if row >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := 0
		for _, r := range plain {
			if r != ' ' {
				break
			}
			startCol++
		}
		trimmed := strings.TrimRight(plain, " ")
		endCol := startCol + ansi.StringWidth(trimmed[startCol:])

		content := ansi.Cut(overlayLine, startCol, endCol)
		baseLines[row] = splice(baseLines[row], content, startCol, endCol, width)
	}

	return strings.Join(baseLines, "\n")
}

// Bottom replaces the last rows of base with the lines of sheet. The sheet
// is opaque: every line fully replaces the base line below it. Lines past
// height are dropped.
func Bottom(base, sheet string, height int) string {
	if sheet == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	baseLines = baseLines[:height]

	sheetLines := strings.Split(sheet, "\n")
	if len(sheetLines) > height {
		sheetLines = sheetLines[len(sheetLines)-height:]
	}
	copy(baseLines[height-len(sheetLines):], sheetLines)
	return strings.Join(baseLines, "\n")
}

func splice(line, content string, startCol, endCol, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	out := ansi.Cut(line, 0, startCol) + content
	if endCol < width {
		out += ansi.Cut(line, endCol, width)
	}
	return out
}
