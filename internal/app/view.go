// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/sheet/internal/keymap"
	"github.com/llehouerou/sheet/internal/motion"
	"github.com/llehouerou/sheet/internal/ui"
	"github.com/llehouerou/sheet/internal/ui/layout"
	"github.com/llehouerou/sheet/internal/ui/overlay"
	"github.com/llehouerou/sheet/internal/ui/render"
	"github.com/llehouerou/sheet/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	page := m.renderPage()
	if m.showLog {
		rows := layout.EventLogRows(m.Height, m.panel.VisibleRows(), ui.StatusHeight)
		width := min(layout.EventLogWidth, m.Width)
		if box := m.events.Render(width, rows, m.now()); box != "" {
			page = overlay.Compose(page, indent(box, m.Width-width), m.Width, ui.StatusHeight)
		}
	}
	view := overlay.Bottom(page, m.panel.View(), m.Height)

	if m.zones == nil {
		return view
	}
	return m.zones.Scan(view)
}

// renderPage draws the full-screen background: status line, help and a
// dotted backdrop.
func (m Model) renderPage() string {
	t := styles.T().S()

	lines := make([]string, 0, m.Height)
	lines = append(lines, m.renderStatus())

	h := m.help
	if layout.IsNarrowMode(m.Width) {
		h.ShowAll = false
	}
	for line := range strings.SplitSeq(h.View(keymap.NewHelp(helpContexts...)), "\n") {
		lines = append(lines, " "+line)
	}

	backdrop := t.Backdrop.Render(strings.Repeat("· ", m.Width/2) + render.Blank(m.Width%2))
	for len(lines) < m.Height {
		lines = append(lines, backdrop)
	}
	return strings.Join(lines[:m.Height], "\n")
}

func (m Model) renderStatus() string {
	t := styles.T().S()

	theme := styles.T()
	left := " " + styles.ApplyGradient("sheet", theme.HandleLow, theme.HandleHigh) + "  " +
		t.Muted.Render(m.motionSummary())
	var right string
	switch {
	case m.status != "":
		style := t.Success
		if m.statusIsError {
			style = t.Error
		}
		right = style.Render(render.Truncate(m.status, max(m.Width/2, 1))) + " "
	case !layout.IsNarrowMode(m.Width):
		right = t.Subtle.Render(m.helpHint()) + " "
	}
	return render.Row(left, right, m.Width)
}

// helpHint names the key that toggles the full help.
func (m Model) helpHint() string {
	keys := m.keys.KeysFor(keymap.ActionHelp)
	if len(keys) == 0 {
		return ""
	}
	return keys[0] + " more keys"
}

// motionSummary describes the live motion state.
func (m Model) motionSummary() string {
	s := m.sheet.Snapshot()
	if s.Geometry != nil && s.Geometry.Pending {
		return "waiting for layout"
	}
	index := "hidden"
	if s.Index >= 0 {
		index = humanize.FtoaWithDigits(s.Index, 2)
	}
	summary := fmt.Sprintf("index %s  position %s  %s",
		index, humanize.FtoaWithDigits(s.Position, 1), s.Phase)
	if s.Phase == motion.PhaseIdle {
		return summary
	}
	return summary + fmt.Sprintf("  rest %s", indexLabel(s.Reported))
}

// indent shifts every line of s right by n columns. Leading spaces are
// transparent to overlay.Compose.
func indent(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
