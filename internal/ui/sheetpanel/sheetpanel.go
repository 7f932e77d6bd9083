// Package sheetpanel draws the bottom sheet and turns mouse input into
// gesture samples for it.
package sheetpanel

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/sheet/internal/gesture"
	"github.com/llehouerou/sheet/internal/motion"
	"github.com/llehouerou/sheet/internal/scroll"
	"github.com/llehouerou/sheet/internal/snap"
	"github.com/llehouerou/sheet/internal/ui"
	"github.com/llehouerou/sheet/internal/ui/layout"
	"github.com/llehouerou/sheet/internal/ui/list"
	"github.com/llehouerou/sheet/internal/ui/render"
	"github.com/llehouerou/sheet/internal/ui/styles"
)

// Zone and registration identifiers.
const (
	HandleZone   = "sheet-handle"
	ContentZone  = "sheet-content"
	ScrollableID = "sheet-list"
)

// gripWidth is the width of the grip drawn on the handle.
const gripWidth = 9

// Sheet is the engine surface the panel drives. *sheet.Sheet implements it.
type Sheet interface {
	Feed(sample gesture.Sample)
	SnapTo(index int) error
	SetWindow(height float64)
	SetContentHeight(height float64)
	RegisterScrollable(id string, sc scroll.Scrollable) scroll.Registration
	UnregisterScrollable(id string) bool
	Snapshot() motion.Snapshot
	Geometry() *snap.Geometry
}

// MeasuredMsg carries the content height measured after a paint.
type MeasuredMsg struct {
	Height int
}

// ScrollMsg is sent when the list offset or its indicators change.
type ScrollMsg struct{}

// FlashDoneMsg is sent once a scrollbar flash has expired.
type FlashDoneMsg struct{}

// ErrorMsg reports a rejected snap command.
type ErrorMsg struct {
	Err error
}

// Model is the sheet panel. It owns the content list and one gesture
// tracker per drag source.
type Model struct {
	ui.Base
	sheet        Sheet
	zones        *zone.Manager
	list         *list.Model
	handleHeight int
	handle       *gesture.Tracker
	content      *gesture.Tracker
	measured     int
	now          func() time.Time
}

// New creates a panel over s and registers its list as the sheet's
// scrollable child. Zones are marked in zones; the caller scans the final
// view with the same manager.
func New(s Sheet, zones *zone.Manager, handleHeight int) *Model {
	m := &Model{
		sheet:        s,
		zones:        zones,
		list:         list.New(),
		handleHeight: max(handleHeight, 0),
		handle:       gesture.NewTracker(gesture.SourceHandle),
		content:      gesture.NewTracker(gesture.SourceContent),
		measured:     -1,
		now:          time.Now,
	}
	s.RegisterScrollable(ScrollableID, m.list)
	return m
}

// SetClock replaces the time source for gesture samples and rendering.
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
	m.list.SetClock(now)
}

// List returns the content list.
func (m *Model) List() *list.Model {
	return m.list
}

// SetHandleHeight updates the handle height after a reconfiguration.
func (m *Model) SetHandleHeight(height int) {
	m.handleHeight = max(height, 0)
	m.syncViewport()
}

// Init starts listening for list changes and measures the content.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.measure(), m.listen())
}

// Close unregisters the list from the sheet.
func (m *Model) Close() {
	m.sheet.UnregisterScrollable(ScrollableID)
}

// SetSize sets the window size and forwards the height to the sheet.
func (m *Model) SetSize(width, height int) {
	if m.Base.SetSize(width, height) {
		m.sheet.SetWindow(float64(m.Height()))
	}
	m.syncViewport()
}

// SetRows replaces the content. The new height is reported once the
// returned command runs, after the next paint.
func (m *Model) SetRows(rows []string) tea.Cmd {
	m.list.SetRows(rows)
	return m.measure()
}

// Dragging reports whether a drag is in progress.
func (m *Model) Dragging() bool {
	return m.handle.Active() || m.content.Active()
}

// Update handles mouse input and the panel's own messages.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.syncViewport()

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case MeasuredMsg:
		m.sheet.SetContentHeight(float64(msg.Height))
	case ScrollMsg:
		cmds := []tea.Cmd{m.listen()}
		if m.list.Flashing(m.now()) {
			cmds = append(cmds, tea.Tick(ui.FlashDuration, func(time.Time) tea.Msg {
				return FlashDoneMsg{}
			}))
		}
		return tea.Batch(cmds...)
	}
	return nil
}

// Step moves the sheet delta snap points from the nearest one, staying
// within the snap points. A hidden sheet only opens upward.
func (m *Model) Step(delta int) tea.Cmd {
	s := m.sheet.Snapshot()
	g := s.Geometry
	if g == nil || g.Pending {
		return nil
	}
	current := int(math.Round(s.Index))
	if current < 0 && delta < 0 {
		return nil
	}
	target := min(max(current+delta, 0), g.MaxIndex())
	return m.snap(target)
}

// Scroll moves the content by rows in dir (positive scrolls forward).
// While momentum is locked, or when scrolling back past the start, the
// sheet steps one snap point instead.
func (m *Model) Scroll(dir, rows int) tea.Cmd {
	switch {
	case dir > 0 && m.list.MomentumLocked():
		return m.Step(1)
	case dir > 0:
		m.list.ScrollBy(rows)
	case dir < 0 && (m.list.MomentumLocked() || m.list.AtTop()):
		return m.Step(-1)
	case dir < 0:
		m.list.ScrollBy(-rows)
	}
	return nil
}

func (m *Model) snap(index int) tea.Cmd {
	if err := m.sheet.SnapTo(index); err != nil {
		return func() tea.Msg { return ErrorMsg{Err: err} }
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	y := float64(msg.Y)
	now := m.now()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			switch {
			case m.inZone(HandleZone, msg):
				m.sheet.Feed(m.handle.Press(y, now))
			case m.inZone(ContentZone, msg):
				m.sheet.Feed(m.content.Press(y, now))
			}
		case tea.MouseButtonWheelDown:
			if m.inZone(ContentZone, msg) || m.inZone(HandleZone, msg) {
				return m.Scroll(1, ui.WheelRows)
			}
		case tea.MouseButtonWheelUp:
			if m.inZone(ContentZone, msg) || m.inZone(HandleZone, msg) {
				return m.Scroll(-1, ui.WheelRows)
			}
		default:
		}

	case tea.MouseActionMotion:
		for _, t := range m.trackers() {
			if s, ok := t.Move(y, now); ok {
				m.sheet.Feed(s)
			}
		}

	case tea.MouseActionRelease:
		for _, t := range m.trackers() {
			if s, ok := t.Release(y, now); ok {
				m.sheet.Feed(s)
			}
		}
	}
	return nil
}

// CancelDrag aborts any drag in progress, for instance when the window
// loses focus.
func (m *Model) CancelDrag() {
	for _, t := range m.trackers() {
		if s, ok := t.Cancel(); ok {
			m.sheet.Feed(s)
		}
	}
}

func (m *Model) trackers() []*gesture.Tracker {
	return []*gesture.Tracker{m.handle, m.content}
}

func (m *Model) inZone(id string, msg tea.MouseMsg) bool {
	if m.zones == nil {
		return false
	}
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

// VisibleRows returns how many sheet rows are on screen.
func (m *Model) VisibleRows() int {
	s := m.sheet.Snapshot()
	if s.Geometry == nil {
		return 0
	}
	return min(layout.VisibleRows(s.Geometry.SheetHeight, s.Position), m.Height())
}

// View renders the visible part of the sheet, handle first. The result is
// meant to be laid over the bottom of the page.
func (m *Model) View() string {
	s := m.sheet.Snapshot()
	g := s.Geometry
	if g == nil {
		return ""
	}
	visible := m.VisibleRows()
	if visible == 0 || m.Width() == 0 {
		return ""
	}

	surface := styles.SheetStyle(m.Dragging())
	handleRows := layout.HandleRows(visible, m.handleHeight)
	contentRows := layout.ContentRows(visible, m.handleHeight)

	var parts []string
	if handleRows > 0 {
		lines := make([]string, handleRows)
		for i := range lines {
			lines[i] = surface.Render(render.Blank(m.Width()))
		}
		lines[0] = m.gripLine(layout.Fraction(s.Index, g.MaxIndex()))
		parts = append(parts, m.mark(HandleZone, strings.Join(lines, "\n")))
	}
	if contentRows > 0 {
		parts = append(parts, m.mark(ContentZone, m.list.View(contentRows, surface, m.now())))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) gripLine(fraction float64) string {
	surface := styles.SheetStyle(m.Dragging())
	width := min(gripWidth, m.Width())
	left := (m.Width() - width) / 2
	right := m.Width() - width - left
	return surface.Render(render.Blank(left)) +
		styles.HandleGrip(width, fraction, surface) +
		surface.Render(render.Blank(right))
}

func (m *Model) mark(id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}

// syncViewport sizes the list to the content rows of the fully expanded
// sheet, which follows the geometry.
func (m *Model) syncViewport() {
	g := m.sheet.Geometry()
	viewport := 0
	if g != nil && !g.Pending {
		viewport = layout.ContentViewport(g.SheetHeight, m.handleHeight)
	}
	m.list.SetSize(m.Width(), viewport)
}

// measure reports the content height from a command, the way a layout
// pass delivers it after the first paint. Unchanged heights are not
// reported again.
func (m *Model) measure() tea.Cmd {
	h := m.list.ContentHeight()
	if h == m.measured {
		return nil
	}
	m.measured = h
	return func() tea.Msg { return MeasuredMsg{Height: h} }
}

func (m *Model) listen() tea.Cmd {
	changed := m.list.Changed()
	return func() tea.Msg {
		<-changed
		return ScrollMsg{}
	}
}
