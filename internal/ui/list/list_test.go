package list

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sheet/internal/scroll"
	"github.com/llehouerou/sheet/internal/ui"
	"github.com/llehouerou/sheet/internal/ui/testutil"
)

func rows(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("row %02d", i)
	}
	return out
}

func newList(n, width, height int) *Model {
	m := New()
	m.SetRows(rows(n))
	m.SetSize(width, height)
	return m
}

func TestScrollTo_Clamps(t *testing.T) {
	m := newList(30, 20, 10)

	tests := []struct {
		name   string
		offset float64
		want   float64
	}{
		{"inside range", 5, 5},
		{"negative", -4, 0},
		{"past end", 100, 20},
		{"fractional", 2.5, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.ScrollTo(tt.offset)
			assert.InDelta(t, tt.want, m.ContentOffsetY(), 1e-9)
		})
	}
}

func TestScrollTo_ShortContentCannotScroll(t *testing.T) {
	m := newList(5, 20, 10)
	m.ScrollTo(3)
	assert.Zero(t, m.ContentOffsetY())
	assert.True(t, m.AtTop())
}

func TestScrollBy(t *testing.T) {
	m := newList(30, 20, 10)

	assert.True(t, m.ScrollBy(3))
	assert.Equal(t, 3, m.Offset())
	assert.True(t, m.ScrollBy(-10))
	assert.False(t, m.ScrollBy(-1), "scrolling up at the top does not move")
	assert.Equal(t, 0, m.Offset())
}

func TestChanged_SignalsAndCoalesces(t *testing.T) {
	m := newList(30, 20, 10)

	m.ScrollTo(1)
	m.ScrollTo(2)
	select {
	case <-m.Changed():
	default:
		t.Fatal("no change signal after ScrollTo")
	}
	select {
	case <-m.Changed():
		t.Fatal("signals did not coalesce")
	default:
	}

	m.ScrollTo(2)
	select {
	case <-m.Changed():
		t.Fatal("unchanged offset signalled")
	default:
	}
}

func TestResizeClampsOffset(t *testing.T) {
	m := newList(30, 20, 10)
	m.ScrollTo(20)

	m.SetSize(20, 25)
	assert.InDelta(t, 5, m.ContentOffsetY(), 1e-9)

	m.SetRows(rows(10))
	assert.Zero(t, m.ContentOffsetY())
}

func TestDecelerationRate(t *testing.T) {
	m := New()
	assert.False(t, m.MomentumLocked(), "new lists allow momentum")

	m.SetDecelerationRate(scroll.DecelerationLocked)
	assert.True(t, m.MomentumLocked())

	m.SetDecelerationRate(scroll.DecelerationNormal)
	assert.False(t, m.MomentumLocked())
	assert.InDelta(t, scroll.DecelerationNormal, m.DecelerationRate(), 1e-12)
}

func TestFlashIndicators(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := newList(30, 20, 10)
	m.SetClock(func() time.Time { return now })

	assert.False(t, m.Flashing(now))
	m.FlashIndicators()
	assert.True(t, m.Flashing(now.Add(ui.FlashDuration/2)))
	assert.False(t, m.Flashing(now.Add(ui.FlashDuration)))

	select {
	case <-m.Changed():
	default:
		t.Error("FlashIndicators did not signal a change")
	}
}

func TestVisibleRange(t *testing.T) {
	m := newList(30, 20, 10)
	m.ScrollTo(5)

	start, end := m.VisibleRange(4)
	assert.Equal(t, 5, start)
	assert.Equal(t, 9, end)

	start, end = m.VisibleRange(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)

	m.ScrollTo(20)
	start, end = m.VisibleRange(10)
	assert.Equal(t, 20, start)
	assert.Equal(t, 30, end)
}

func TestView(t *testing.T) {
	m := newList(30, 12, 10)
	m.ScrollTo(2)

	view := m.View(3, lipgloss.NewStyle(), time.Now())
	lines := testutil.Lines(view)
	require.Len(t, lines, 3)
	for i, line := range lines {
		assert.Equal(t, 12, testutil.MeasureWidth(line), "line %d width", i)
	}
	assert.True(t, strings.HasPrefix(lines[0], "row 02"))
	assert.True(t, strings.HasPrefix(lines[2], "row 04"))

	assert.Empty(t, m.View(0, lipgloss.NewStyle(), time.Now()))
}

func TestView_EmptyListShowsPlaceholder(t *testing.T) {
	m := New()
	m.SetSize(30, 5)

	lines := testutil.Lines(m.View(3, lipgloss.NewStyle(), time.Now()))
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "nothing to show")
	assert.Equal(t, 30, testutil.MeasureWidth(lines[1]))
}

func TestView_ScrollbarOnlyWhenScrollable(t *testing.T) {
	short := newList(3, 10, 10)
	for _, line := range testutil.Lines(short.View(3, lipgloss.NewStyle(), time.Now())) {
		assert.NotContains(t, line, "┃")
		assert.NotContains(t, line, "│")
	}

	long := newList(40, 10, 10)
	view := long.View(10, lipgloss.NewStyle(), time.Now())
	assert.Equal(t, 2, testutil.CountMatching(view, "┃"), "thumb is viewport²/rows rows long")
	assert.Equal(t, 0, testutil.RowOf(view, "┃"))

	long.ScrollTo(long.MaxOffset())
	view = long.View(10, lipgloss.NewStyle(), time.Now())
	assert.Equal(t, 8, testutil.RowOf(view, "┃"), "thumb sits at the bottom when scrolled to the end")
}
