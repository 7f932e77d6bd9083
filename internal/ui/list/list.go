// Package list provides the scrollable row list shown inside the sheet.
//
// The list is a scroll.Scrollable: the sheet's gesture handler reads and
// writes its offset from the motion goroutine while the UI goroutine
// renders it, so the offset, the deceleration rate and the flash deadline
// are atomics. Rows and size belong to the UI goroutine.
package list

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sheet/internal/scroll"
	"github.com/llehouerou/sheet/internal/ui"
	"github.com/llehouerou/sheet/internal/ui/render"
	"github.com/llehouerou/sheet/internal/ui/styles"
)

var _ scroll.Scrollable = (*Model)(nil)

const emptyText = "nothing to show"

// Model is a scrollable list of text rows. Height is the viewport: the
// content rows of the fully expanded sheet. Use New; a Model must not be
// copied.
type Model struct {
	ui.Base
	rows []string
	now  func() time.Time

	offset     atomic.Uint64 // float64 bits
	maxOffset  atomic.Uint64 // float64 bits
	rate       atomic.Uint64 // float64 bits
	flashUntil atomic.Int64  // unix nanoseconds
	changed    chan struct{}
}

// New creates an empty list with momentum allowed.
func New() *Model {
	m := &Model{
		now:     time.Now,
		changed: make(chan struct{}, 1),
	}
	m.rate.Store(math.Float64bits(scroll.DecelerationNormal))
	return m
}

// SetClock replaces the time source used for the flash deadline.
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
}

// SetRows replaces the rows and clamps the offset.
func (m *Model) SetRows(rows []string) {
	m.rows = rows
	m.updateBounds()
}

// Rows returns the current rows.
func (m *Model) Rows() []string {
	return m.rows
}

// Len returns the number of rows.
func (m *Model) Len() int {
	return len(m.rows)
}

// ContentHeight is the measured height of the content, one row per entry.
func (m *Model) ContentHeight() int {
	return len(m.rows)
}

// SetSize sets the width and the viewport height and clamps the offset.
func (m *Model) SetSize(width, height int) bool {
	changed := m.Base.SetSize(width, height)
	m.updateBounds()
	return changed
}

// Changed is signalled whenever the offset or the flash state changes from
// any goroutine. Signals coalesce.
func (m *Model) Changed() <-chan struct{} {
	return m.changed
}

// ContentOffsetY implements scroll.Scrollable.
func (m *Model) ContentOffsetY() float64 {
	return math.Float64frombits(m.offset.Load())
}

// Offset returns the offset rounded to whole rows.
func (m *Model) Offset() int {
	return int(math.Round(m.ContentOffsetY()))
}

// MaxOffset returns the largest offset the content can scroll to.
func (m *Model) MaxOffset() float64 {
	return math.Float64frombits(m.maxOffset.Load())
}

// ScrollTo implements scroll.Scrollable. The offset is clamped to the
// scrollable range.
func (m *Model) ScrollTo(offset float64) {
	if math.IsNaN(offset) {
		return
	}
	offset = math.Min(math.Max(offset, 0), m.MaxOffset())
	if old := m.offset.Swap(math.Float64bits(offset)); old != math.Float64bits(offset) {
		m.signal()
	}
}

// ScrollBy moves the offset by delta rows and reports whether it moved.
func (m *Model) ScrollBy(delta int) bool {
	before := m.ContentOffsetY()
	m.ScrollTo(before + float64(delta))
	return m.ContentOffsetY() != before
}

// PageSize returns how far a page scroll moves.
func (m *Model) PageSize() int {
	return max(m.Height()-ui.PageOverlap, 1)
}

// AtTop reports whether the content is scrolled to its start.
func (m *Model) AtTop() bool {
	return m.ContentOffsetY() <= 0
}

// SetDecelerationRate implements scroll.Scrollable.
func (m *Model) SetDecelerationRate(rate float64) {
	m.rate.Store(math.Float64bits(rate))
}

// DecelerationRate returns the rate last set by the sheet.
func (m *Model) DecelerationRate() float64 {
	return math.Float64frombits(m.rate.Load())
}

// MomentumLocked reports whether free scrolling is disabled because the
// sheet is not fully expanded.
func (m *Model) MomentumLocked() bool {
	return m.DecelerationRate() == scroll.DecelerationLocked
}

// FlashIndicators implements scroll.Scrollable. The scrollbar is
// highlighted for ui.FlashDuration.
func (m *Model) FlashIndicators() {
	m.flashUntil.Store(m.now().Add(ui.FlashDuration).UnixNano())
	m.signal()
}

// Flashing reports whether the scrollbar is highlighted at now.
func (m *Model) Flashing(now time.Time) bool {
	return now.UnixNano() < m.flashUntil.Load()
}

// VisibleRange returns the [start, end) row indices shown in the first
// visible rows of the viewport.
func (m *Model) VisibleRange(visible int) (start, end int) {
	if len(m.rows) == 0 || visible <= 0 {
		return 0, 0
	}
	start = min(m.Offset(), len(m.rows))
	end = min(start+visible, len(m.rows))
	return start, end
}

// View renders the first visible rows of the viewport on surface, with a
// scrollbar in the last column.
func (m *Model) View(visible int, surface lipgloss.Style, now time.Time) string {
	if visible <= 0 {
		return ""
	}
	textWidth := max(m.Width()-ui.ScrollbarWidth, 0)
	start, end := m.VisibleRange(visible)
	bar := m.scrollbar(visible, now, surface)

	texts := m.rows[start:end]
	if len(m.rows) == 0 {
		texts = []string{"", render.Center(emptyText, textWidth)}
	}
	lines := render.Lines(texts, textWidth, visible)
	for i := range lines {
		lines[i] = surface.Render(lines[i]) + bar[i]
	}
	return strings.Join(lines, "\n")
}

// scrollbar returns one cell per visible row. The thumb is sized for the
// whole viewport so it does not shrink while the sheet is partly shown.
func (m *Model) scrollbar(visible int, now time.Time, surface lipgloss.Style) []string {
	cells := make([]string, visible)
	bg := surface.GetBackground()
	track := styles.TrackStyle().Background(bg).Render("│")
	thumb := styles.ThumbStyle(m.Flashing(now)).Background(bg).Render("┃")
	blank := surface.Render(render.Blank(ui.ScrollbarWidth))

	thumbStart, thumbLen := m.thumb()
	for i := range cells {
		switch {
		case thumbLen == 0:
			cells[i] = blank
		case i >= thumbStart && i < thumbStart+thumbLen:
			cells[i] = thumb
		default:
			cells[i] = track
		}
	}
	return cells
}

// thumb returns the thumb's first row and length within the viewport, or a
// zero length when everything fits.
func (m *Model) thumb() (start, length int) {
	height := m.Height()
	if height <= 0 || len(m.rows) <= height {
		return 0, 0
	}
	length = max(height*height/len(m.rows), 1)
	maxOffset := m.MaxOffset()
	if maxOffset <= 0 {
		return 0, length
	}
	frac := m.ContentOffsetY() / maxOffset
	start = int(math.Round(frac * float64(height-length)))
	return start, length
}

func (m *Model) updateBounds() {
	maxOffset := float64(max(len(m.rows)-m.Height(), 0))
	m.maxOffset.Store(math.Float64bits(maxOffset))
	if m.ContentOffsetY() > maxOffset {
		m.ScrollTo(maxOffset)
	}
}

func (m *Model) signal() {
	select {
	case m.changed <- struct{}{}:
	default:
	}
}
