package sheet

import (
	"fmt"

	"github.com/llehouerou/sheet/internal/snap"
)

type targetKind int

const (
	targetIndex targetKind = iota
	targetExpanded
	targetCollapsed
	targetClosed
)

// target is a symbolic destination. It is resolved against the geometry
// of the motion goroutine when applied, so it stays correct when the
// layout changes between the command and its execution.
type target struct {
	kind  targetKind
	index int
}

func indexTarget(i int) target { return target{kind: targetIndex, index: i} }

// resolve returns the position of t in g and the index it stands for.
// Indices beyond a shrunken geometry are clamped to its last point.
func (t target) resolve(g *snap.Geometry) (float64, int) {
	var idx int
	switch t.kind {
	case targetClosed:
		return g.SheetHeight, -1
	case targetExpanded:
		idx = g.MaxIndex()
	case targetCollapsed:
		idx = 0
	default:
		idx = min(max(t.index, -1), g.MaxIndex())
	}
	pos, _ := g.PositionFor(idx)
	return pos, idx
}

func (t target) String() string {
	switch t.kind {
	case targetExpanded:
		return "expanded"
	case targetCollapsed:
		return "collapsed"
	case targetClosed:
		return "closed"
	default:
		return fmt.Sprintf("index %d", t.index)
	}
}
