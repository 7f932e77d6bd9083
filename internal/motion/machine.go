package motion

import (
	"log/slog"
	"math"
	"time"

	"github.com/llehouerou/sheet/internal/easing"
	"github.com/llehouerou/sheet/internal/snap"
)

// Config holds the animation settings of a Machine.
type Config struct {
	Duration time.Duration
	Easing   easing.Func

	// OnlyDistinct suppresses change and animate notifications when the
	// source and target indices are equal.
	OnlyDistinct bool

	Listener Listener

	// OnRest runs after every reported change, on the motion goroutine.
	OnRest func(index int)

	Logger *slog.Logger
}

// Snapshot is an immutable copy of the machine state, safe to share
// between goroutines.
type Snapshot struct {
	Position float64
	Index    float64
	Phase    Phase
	Reported int
	Geometry *snap.Geometry
}

// Machine is the single source of truth for the sheet position.
//
// A Machine is not safe for concurrent use: it belongs to the motion
// goroutine. Every method that can start or finish an animation takes the
// current time explicitly.
type Machine struct {
	cfg      Config
	position float64
	phase    Phase
	geometry *snap.Geometry
	reported int
	tween    *tween
}

// NewMachine creates a machine resting hidden in g.
func NewMachine(cfg Config, g *snap.Geometry) *Machine {
	if cfg.Listener == nil {
		cfg.Listener = nopListener{}
	}
	if cfg.Easing == nil {
		cfg.Easing = easing.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Machine{
		cfg:      cfg,
		position: g.SheetHeight,
		geometry: g,
		reported: -1,
	}
}

// Position returns the current distance from the top.
func (m *Machine) Position() float64 { return m.position }

// Phase returns the animation phase.
func (m *Machine) Phase() Phase { return m.phase }

// Geometry returns the geometry the machine currently animates within.
func (m *Machine) Geometry() *snap.Geometry { return m.geometry }

// Reported returns the last index announced through a change notification
// (or set by Place).
func (m *Machine) Reported() int { return m.reported }

// CurrentIndex returns the continuous snap index of the current position.
func (m *Machine) CurrentIndex() float64 {
	return m.geometry.IndexAt(m.position)
}

// Snapshot copies the current state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Position: m.position,
		Index:    m.CurrentIndex(),
		Phase:    m.phase,
		Reported: m.reported,
		Geometry: m.geometry,
	}
}

// SetConfig replaces the animation settings. A running tween keeps the
// settings it started with.
func (m *Machine) SetConfig(cfg Config) {
	if cfg.Listener == nil {
		cfg.Listener = m.cfg.Listener
	}
	if cfg.OnRest == nil {
		cfg.OnRest = m.cfg.OnRest
	}
	if cfg.Easing == nil {
		cfg.Easing = easing.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = m.cfg.Logger
	}
	m.cfg = cfg
}

// SetImmediate forces the position without animating. Any tween in flight
// is cancelled and no change notification fires.
func (m *Machine) SetImmediate(value float64) {
	m.cancel()
	m.position = value
	m.emitFrame()
}

// Place rests the sheet on index without animation and records it as the
// reported index. It returns false for an index outside the geometry.
func (m *Machine) Place(index int) bool {
	pos, ok := m.geometry.PositionFor(index)
	if !ok {
		return false
	}
	m.SetImmediate(pos)
	m.reported = index
	return true
}

// AnimateTo starts a tween from the current position to target, replacing
// any tween in flight. The replaced tween never reports completion.
func (m *Machine) AnimateTo(target float64, now time.Time) {
	from := m.reported
	to := m.geometry.IndexOf(target)
	if m.geometry.Pending {
		to = -1
	}
	if !m.cfg.OnlyDistinct || from != to {
		m.cfg.Listener.OnAnimate(AnimateEvent{From: from, To: to})
	}

	m.cfg.Logger.Debug("animate",
		"from", m.position, "to", target, "from_index", from, "to_index", to)

	m.tween = &tween{
		from:     m.position,
		to:       target,
		start:    now,
		duration: m.cfg.Duration,
		ease:     m.cfg.Easing,
	}
	m.phase = PhaseRunning
	m.emitFrame()
}

// Advance steps the tween to now. It returns true while the tween is still
// running.
func (m *Machine) Advance(now time.Time) bool {
	if m.tween == nil {
		return false
	}
	value, done := m.tween.at(now)
	m.position = value
	if !done {
		m.emitFrame()
		return true
	}

	m.tween = nil
	m.phase = PhaseStopped
	m.emitFrame()
	m.complete()
	return false
}

// Track writes a live position from an active gesture. It preempts a
// running tween without its completion notification.
func (m *Machine) Track(value float64) {
	m.cancel()
	m.position = value
	m.emitFrame()
}

// Interrupt cancels a running tween without notifications.
func (m *Machine) Interrupt() {
	if m.cancel() {
		m.emitFrame()
	}
}

// SetGeometry adopts a re-resolved geometry.
//
// While the new geometry is pending, or when it is the first resolved one,
// the sheet is moved to its hidden position. Between two resolved
// geometries the position and any tween endpoints are re-mapped through the
// fractional snap index so the sheet keeps its logical place.
func (m *Machine) SetGeometry(g *snap.Geometry) {
	old := m.geometry
	m.geometry = g

	if g.Pending || old == nil || old.Pending {
		m.cancel()
		m.position = g.SheetHeight
		m.reported = -1
		m.emitFrame()
		return
	}

	m.position = g.PositionAt(old.IndexAt(m.position))
	if m.tween != nil {
		m.tween.from = g.PositionAt(old.IndexAt(m.tween.from))
		m.tween.to = g.PositionAt(old.IndexAt(m.tween.to))
	}
	m.reported = min(m.reported, g.MaxIndex())
	m.emitFrame()
}

// complete reports the rest index after a natural tween completion.
func (m *Machine) complete() {
	idx := roundIndex(m.CurrentIndex())
	if m.cfg.OnlyDistinct && idx == m.reported {
		return
	}
	m.reported = idx
	m.cfg.Logger.Info("sheet changed", "index", idx, "position", m.position)
	m.cfg.Listener.OnChange(ChangeEvent{Index: idx})
	if m.cfg.OnRest != nil {
		m.cfg.OnRest(idx)
	}
}

// cancel drops the tween in flight. It returns true if one was running.
func (m *Machine) cancel() bool {
	if m.tween == nil {
		return false
	}
	m.tween = nil
	m.phase = PhaseStopped
	return true
}

func (m *Machine) emitFrame() {
	m.cfg.Listener.OnFrame(FrameEvent{
		Position: m.position,
		Index:    m.CurrentIndex(),
		Phase:    m.phase,
	})
}

// roundIndex rounds half up, so in-between values never report as -0.
func roundIndex(v float64) int {
	return int(math.Floor(v + 0.5))
}

type nopListener struct{}

func (nopListener) OnChange(ChangeEvent)   {}
func (nopListener) OnAnimate(AnimateEvent) {}
func (nopListener) OnFrame(FrameEvent)     {}
