package sheet

import (
	"context"
	"time"

	"github.com/llehouerou/sheet/internal/scroll"
	"github.com/llehouerou/sheet/internal/snap"
)

// Run is the motion goroutine. It applies posted commands in order and
// advances animations on a frame ticker that only runs while a tween is in
// flight. Run returns nil when ctx is cancelled, closing every
// subscription.
func (s *Sheet) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer s.hub.Close()

	var (
		ticker   *time.Ticker
		tick     <-chan time.Time
		interval time.Duration
	)
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tick = nil, nil
		}
	}
	defer stopTicker()

	s.logger.Debug("motion loop started")
	for {
		s.process(time.Now())

		switch {
		case !s.machine.Phase().IsRunning():
			stopTicker()
		case ticker == nil:
			interval = s.interval
			ticker = time.NewTicker(interval)
			tick = ticker.C
		case interval != s.interval:
			interval = s.interval
			ticker.Reset(interval)
		}

		select {
		case <-ctx.Done():
			s.logger.Debug("motion loop stopped")
			return nil
		case <-s.box.wake:
		case now := <-tick:
			s.machine.Advance(now)
			s.publish()
		}
	}
}

func (s *Sheet) process(now time.Time) {
	ops := s.box.drain()
	if len(ops) == 0 {
		return
	}
	for _, o := range ops {
		o(now)
	}
	s.publish()
}

// apply animates toward t, or defers it while the geometry is pending.
// Closing is always applied.
func (s *Sheet) apply(t target, now time.Time) {
	g := s.machine.Geometry()
	if g.Pending && t.kind != targetClosed {
		s.deferred = &t
		s.logger.Debug("command deferred until layout", "target", t.String())
		return
	}
	s.deferred = nil
	s.inflight = &t
	pos, _ := t.resolve(g)
	s.machine.AnimateTo(pos, now)
}

// applyGeometry hands a new geometry to the machine. Leaving the pending
// state slides the sheet in from hidden toward the deferred target.
func (s *Sheet) applyGeometry(g *snap.Geometry, now time.Time) {
	old := s.machine.Geometry()
	if g.Equal(old) {
		return
	}

	if g.Pending && !old.Pending && s.deferred == nil {
		if s.machine.Phase().IsRunning() && s.inflight != nil {
			t := *s.inflight
			s.deferred = &t
		} else if idx := s.machine.Reported(); idx >= 0 {
			t := indexTarget(idx)
			s.deferred = &t
		}
	}

	s.machine.SetGeometry(g)
	if !g.Pending && old.Pending && s.deferred != nil {
		t := *s.deferred
		s.logger.Debug("applying deferred command", "target", t.String())
		s.apply(t, now)
	}
}

// refresh updates the active scrollable for the rest index: momentum is
// only allowed when the sheet is fully expanded.
func (s *Sheet) refresh(index int) {
	g := s.machine.Geometry()
	if !g.Pending && index == g.MaxIndex() {
		s.coord.FlashIndicators()
		s.coord.SetDecelerationRate(scroll.DecelerationNormal)
		return
	}
	s.coord.SetDecelerationRate(scroll.DecelerationLocked)
}

func (s *Sheet) publish() {
	snapshot := s.machine.Snapshot()
	s.snapshot.Store(&snapshot)
}
