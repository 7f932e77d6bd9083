package snap

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalidPercentage is returned for NaN or infinite percentages.
var ErrInvalidPercentage = errors.New("snap point percentage must be finite")

// Measurements are the runtime layout inputs a geometry is resolved from.
type Measurements struct {
	WindowHeight float64
	TopInset     float64
	HandleHeight float64

	// ContentHeight is only meaningful once ContentMeasured is set. Layout
	// is delivered after the first paint, so it starts out unknown.
	ContentHeight   float64
	ContentMeasured bool
}

// Geometry is the resolved form of a snap point list.
//
// Offsets are distances travelled from hidden toward shown, ascending.
// Positions are the externally consumed distance-from-top coordinate:
// Positions[i] = SheetHeight - Offsets[i], so index 0 is the point closest
// to hidden and index N-1 the most expanded one. Indices always refer to
// this sorted order, never to declaration order.
type Geometry struct {
	Offsets     []float64
	Positions   []float64
	SheetHeight float64
	Pending     bool
}

// Resolve converts points into a Geometry for the given measurements.
// A content-relative point with no measured content yields a pending
// geometry holding only the hidden position.
func Resolve(points []Point, m Measurements) (*Geometry, error) {
	if len(points) == 0 {
		return nil, ErrNoSnapPoints
	}
	for i, p := range points {
		if math.IsNaN(p.Percentage) || math.IsInf(p.Percentage, 0) {
			return nil, fmt.Errorf("snap point %d: %w", i, ErrInvalidPercentage)
		}
	}

	if HasContentPoints(points) && !m.ContentMeasured {
		return Pending(m.WindowHeight), nil
	}

	available := m.WindowHeight - m.TopInset
	maxOffset := math.Max(available, 0)

	offsets := make([]float64, len(points))
	for i, p := range points {
		var offset float64
		switch p.RelativeTo {
		case Content:
			offset = p.Percentage/100*m.ContentHeight + m.HandleHeight
		default:
			offset = p.Percentage / 100 * available
		}
		offsets[i] = clamp(offset, 0, maxOffset)
	}
	slices.SortStableFunc(offsets, cmp.Compare[float64])

	sheetHeight := offsets[len(offsets)-1]
	positions := make([]float64, len(offsets))
	for i, o := range offsets {
		positions[i] = sheetHeight - o
	}

	return &Geometry{
		Offsets:     offsets,
		Positions:   positions,
		SheetHeight: sheetHeight,
	}, nil
}

// Pending returns the geometry of a sheet whose layout is not known yet:
// the only position is the hidden one.
func Pending(windowHeight float64) *Geometry {
	h := math.Max(windowHeight, 0)
	return &Geometry{
		Offsets:     []float64{h},
		Positions:   []float64{h},
		SheetHeight: h,
		Pending:     true,
	}
}

// Len returns the number of resolved snap points.
func (g *Geometry) Len() int {
	return len(g.Positions)
}

// MaxIndex returns the index of the most expanded point.
func (g *Geometry) MaxIndex() int {
	return len(g.Positions) - 1
}

// ValidIndex reports whether index is -1 (closed) or a resolved point.
func (g *Geometry) ValidIndex(index int) bool {
	return index >= -1 && index <= g.MaxIndex()
}

// PositionFor returns the position of index, where -1 is the hidden position.
func (g *Geometry) PositionFor(index int) (float64, bool) {
	if !g.ValidIndex(index) {
		return 0, false
	}
	if index == -1 {
		return g.SheetHeight, true
	}
	return g.Positions[index], true
}

// IndexOf returns the first index whose position equals position exactly,
// or -1 when the position is not a snap point (the hidden position, for
// instance).
func (g *Geometry) IndexOf(position float64) int {
	return slices.Index(g.Positions, position)
}

// IndexAt interpolates position against the position table and returns the
// continuous snap index in [-1, N-1]. A pending geometry always reports -1.
func (g *Geometry) IndexAt(position float64) float64 {
	n := len(g.Positions)
	if g.Pending || n == 0 {
		return -1
	}

	// Ascending inputs: the most expanded point first, hidden last.
	in := make([]float64, n+1)
	out := make([]float64, n+1)
	for j := range n {
		in[j] = g.Positions[n-1-j]
		out[j] = float64(n - 1 - j)
	}
	in[n] = g.SheetHeight
	out[n] = -1

	var idx float64
	switch {
	case position < in[0]:
		idx = out[0]
	case position > in[n]:
		idx = out[n]
	default:
		for i := 1; i <= n; i++ {
			if position <= in[i] {
				idx = lerp(position, in[i-1], in[i], out[i-1], out[i])
				break
			}
		}
	}
	return clamp(idx, -1, float64(n-1))
}

// PositionAt is the inverse of IndexAt: it maps a fractional index back to
// a position, interpolating between neighbouring points.
func (g *Geometry) PositionAt(index float64) float64 {
	n := len(g.Positions)
	if g.Pending || n == 0 {
		return g.SheetHeight
	}
	index = clamp(index, -1, float64(n-1))

	value := func(i int) float64 {
		if i < 0 {
			return g.SheetHeight
		}
		return g.Positions[i]
	}

	lower := int(math.Floor(index))
	if lower >= n-1 {
		return g.Positions[n-1]
	}
	frac := index - float64(lower)
	return value(lower) + (value(lower+1)-value(lower))*frac
}

// Nearest returns the snap point closest to position. Equidistant points
// resolve toward the larger, more expanded index.
func (g *Geometry) Nearest(position float64) (int, float64) {
	best := 0
	bestDist := math.Inf(1)
	for i, p := range g.Positions {
		if d := math.Abs(p - position); d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best, g.Positions[best]
}

// Clamp restricts a position to the sheet's travel range [0, SheetHeight].
func (g *Geometry) Clamp(position float64) float64 {
	return clamp(position, 0, g.SheetHeight)
}

// Equal reports whether two geometries describe the same layout.
func (g *Geometry) Equal(other *Geometry) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.Pending == other.Pending &&
		g.SheetHeight == other.SheetHeight &&
		slices.Equal(g.Offsets, other.Offsets)
}

func lerp(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
