// Package sheet is the command surface of a bottom sheet. It owns the
// motion goroutine that animates the sheet, validates commands issued from
// other goroutines and re-resolves the snap geometry when the layout
// changes.
package sheet

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/llehouerou/sheet/internal/gesture"
	"github.com/llehouerou/sheet/internal/motion"
	"github.com/llehouerou/sheet/internal/scroll"
	"github.com/llehouerou/sheet/internal/snap"
)

var (
	// ErrIndexOutOfRange is returned by SnapTo for an index outside
	// [-1, N-1].
	ErrIndexOutOfRange = errors.New("snap index out of range")

	// ErrRunning is returned when Run is called on a sheet that is
	// already running.
	ErrRunning = errors.New("sheet is already running")
)

// Sheet is a bottom sheet. Commands, layout setters and queries are safe
// for concurrent use and never block; they take effect on the motion
// goroutine started by Run.
type Sheet struct {
	coord  *scroll.Coordinator
	hub    *motion.Hub
	logger *slog.Logger
	box    *mailbox

	// mu guards opts and layout, and orders geometry publication.
	mu          sync.Mutex
	opts        Options
	layout      snap.Measurements
	windowKnown bool

	geometry atomic.Pointer[snap.Geometry]
	snapshot atomic.Pointer[motion.Snapshot]
	running  atomic.Bool

	// Owned by the motion goroutine once Run starts.
	machine  *motion.Machine
	handler  *gesture.Handler
	interval time.Duration
	deferred *target
	inflight *target
}

// New validates opts and creates a sheet. A nil coordinator gets a fresh
// one. When the initial geometry is already resolved the sheet rests on the
// initial snap index; otherwise it stays hidden and slides there once the
// layout is known.
func New(opts Options, coord *scroll.Coordinator) (*Sheet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
		opts.Logger = logger
	}
	if coord == nil {
		coord = scroll.NewCoordinator(logger)
	}

	s := &Sheet{
		coord:  coord,
		hub:    motion.NewHub(),
		logger: logger,
		box:    newMailbox(),
		opts:   opts,
		layout: snap.Measurements{
			WindowHeight: opts.WindowHeight,
			TopInset:     opts.TopInset,
			HandleHeight: opts.HandleHeight,
		},
		windowKnown: opts.WindowHeight > 0,
		interval:    opts.FrameInterval,
	}

	g, err := s.resolveLocked()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	s.geometry.Store(g)

	s.machine = motion.NewMachine(opts.motionConfig(s.hub, s.refresh), g)
	s.handler = gesture.NewHandler(s.machine, coord, opts.Projection, logger)

	initial := indexTarget(opts.InitialSnapIndex)
	if g.Pending {
		s.deferred = &initial
	} else {
		s.machine.Place(opts.InitialSnapIndex)
	}
	s.publish()

	logger.Debug("sheet created",
		"snap_points", len(opts.SnapPoints),
		"initial_index", opts.InitialSnapIndex,
		"pending", g.Pending,
	)
	return s, nil
}

// Coordinator returns the scroll coordinator the sheet arbitrates with.
func (s *Sheet) Coordinator() *scroll.Coordinator {
	return s.coord
}

// Subscribe returns a subscription to change, animate and frame events.
func (s *Sheet) Subscribe() *motion.Subscription {
	return s.hub.Subscribe()
}

// SnapTo animates to index, where -1 is the hidden position. It fails with
// ErrIndexOutOfRange, leaving the sheet untouched, unless
// -1 <= index <= N-1.
func (s *Sheet) SnapTo(index int) error {
	maxIndex := s.maxIndex()
	if index < -1 || index > maxIndex {
		s.logger.Warn("snap rejected", "index", index, "max_index", maxIndex)
		return fmt.Errorf("%w: %d not in [-1, %d]", ErrIndexOutOfRange, index, maxIndex)
	}
	s.post(indexTarget(index))
	return nil
}

// Expand animates to the most expanded snap point.
func (s *Sheet) Expand() {
	s.post(target{kind: targetExpanded})
}

// Collapse animates to the first snap point.
func (s *Sheet) Collapse() {
	s.post(target{kind: targetCollapsed})
}

// Close animates to the hidden position of whatever geometry is current
// when the command is applied.
func (s *Sheet) Close() {
	s.post(target{kind: targetClosed})
}

// Feed delivers a pointer sample to the gesture handler.
func (s *Sheet) Feed(sample gesture.Sample) {
	s.box.post(func(now time.Time) {
		if s.machine.Geometry().Pending {
			return
		}
		s.handler.Handle(sample, now)
	})
}

// SetWindow updates the window height.
func (s *Sheet) SetWindow(height float64) {
	s.updateLayout(func(m *snap.Measurements) {
		m.WindowHeight = max(height, 0)
		s.windowKnown = true
	})
}

// SetTopInset updates the distance kept free above the fully expanded
// sheet.
func (s *Sheet) SetTopInset(inset float64) {
	s.updateLayout(func(m *snap.Measurements) {
		m.TopInset = max(inset, 0)
	})
}

// SetContentHeight delivers the measured content height.
func (s *Sheet) SetContentHeight(height float64) {
	s.updateLayout(func(m *snap.Measurements) {
		m.ContentHeight = max(height, 0)
		m.ContentMeasured = true
	})
}

// Reconfigure replaces the snap points and animation options. The layout
// measurements are kept. InitialSnapIndex is validated but ignored: the
// sheet keeps its current target.
func (s *Sheet) Reconfigure(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.Logger == nil {
		opts.Logger = s.logger
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.opts = opts
	s.layout.TopInset = opts.TopInset
	s.layout.HandleHeight = opts.HandleHeight
	g, err := s.resolveLocked()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	s.geometry.Store(g)

	s.box.post(func(now time.Time) {
		s.machine.SetConfig(opts.motionConfig(nil, nil))
		s.handler.SetProjection(opts.Projection)
		s.interval = opts.FrameInterval
		s.applyGeometry(g, now)
		s.logger.Info("sheet reconfigured", "snap_points", len(opts.SnapPoints))
	})
	return nil
}

// RegisterScrollable registers a scrollable child and refreshes its
// affordances for the current rest index.
func (s *Sheet) RegisterScrollable(id string, sc scroll.Scrollable) scroll.Registration {
	reg := s.coord.Register(id, sc)
	s.box.post(func(time.Time) {
		s.refresh(s.machine.Reported())
	})
	return reg
}

// UnregisterScrollable removes a scrollable child.
func (s *Sheet) UnregisterScrollable(id string) bool {
	return s.coord.Unregister(id)
}

// Snapshot returns the motion state as of the last processed command or
// frame.
func (s *Sheet) Snapshot() motion.Snapshot {
	return *s.snapshot.Load()
}

// CurrentIndex returns the continuous snap index, -1 while hidden or
// pending.
func (s *Sheet) CurrentIndex() float64 {
	return s.Snapshot().Index
}

// Position returns the distance of the sheet from the top of its travel.
func (s *Sheet) Position() float64 {
	return s.Snapshot().Position
}

// Geometry returns the most recently resolved geometry.
func (s *Sheet) Geometry() *snap.Geometry {
	return s.geometry.Load()
}

func (s *Sheet) maxIndex() int {
	g := s.geometry.Load()
	if g.Pending {
		s.mu.Lock()
		defer s.mu.Unlock()
		return len(s.opts.SnapPoints) - 1
	}
	return g.MaxIndex()
}

func (s *Sheet) post(t target) {
	s.logger.Debug("command", "target", t.String())
	s.box.post(func(now time.Time) {
		s.apply(t, now)
	})
}

func (s *Sheet) updateLayout(mutate func(*snap.Measurements)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mutate(&s.layout)
	g, err := s.resolveLocked()
	if err != nil {
		s.logger.Warn("layout rejected", "error", err)
		return
	}
	if g.Equal(s.geometry.Load()) {
		return
	}
	s.geometry.Store(g)
	s.box.post(func(now time.Time) {
		s.applyGeometry(g, now)
	})
}

// resolveLocked resolves the geometry for the current options and layout.
// Callers hold mu, or own the sheet exclusively.
func (s *Sheet) resolveLocked() (*snap.Geometry, error) {
	if !s.windowKnown {
		return snap.Pending(0), nil
	}
	g, err := snap.Resolve(s.opts.SnapPoints, s.layout)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("geometry resolved",
		"positions", g.Positions,
		"sheet_height", g.SheetHeight,
		"pending", g.Pending,
	)
	return g, nil
}
