package sheet

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/llehouerou/sheet/internal/easing"
	"github.com/llehouerou/sheet/internal/gesture"
	"github.com/llehouerou/sheet/internal/motion"
	"github.com/llehouerou/sheet/internal/scroll"
	"github.com/llehouerou/sheet/internal/scroll/mocks"
	"github.com/llehouerou/sheet/internal/snap"
)

const settle = DefaultDuration + 100*time.Millisecond

func windowOptions(initial int) Options {
	opts := DefaultOptions(threePoints()...)
	opts.WindowHeight = 800
	opts.InitialSnapIndex = initial
	opts.Easing = easing.Linear
	return opts
}

// contentOptions describes a sheet that depends on its content height and
// therefore starts pending.
func contentOptions(initial int) Options {
	opts := DefaultOptions(snap.ContentPct(50), snap.ContentPct(100))
	opts.WindowHeight = 800
	opts.HandleHeight = 0
	opts.InitialSnapIndex = initial
	opts.Easing = easing.Linear
	return opts
}

// start runs the motion goroutine of a new sheet. The returned stop
// function cancels it and waits for Run to return.
func start(t *testing.T, opts Options, coord *scroll.Coordinator) (*Sheet, *motion.Subscription, func()) {
	t.Helper()
	s, err := New(opts, coord)
	require.NoError(t, err)
	sub := s.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	stop := func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run() error = %v", err)
		}
	}
	return s, sub, stop
}

func drainChanges(sub *motion.Subscription) []int {
	var out []int
	for {
		select {
		case e := <-sub.Changed:
			out = append(out, e.Index)
		default:
			return out
		}
	}
}

func drainAnimates(sub *motion.Subscription) []motion.AnimateEvent {
	var out []motion.AnimateEvent
	for {
		select {
		case e := <-sub.Animated:
			out = append(out, e)
		default:
			return out
		}
	}
}

func TestNew_PlacesInitialIndexWhenResolved(t *testing.T) {
	s, err := New(windowOptions(1), nil)
	require.NoError(t, err)

	assert.Equal(t, 400.0, s.Position())
	assert.InDelta(t, 1.0, s.CurrentIndex(), 1e-9)
	assert.Equal(t, 1, s.Snapshot().Reported)
	assert.Equal(t, []float64{800, 400, 0}, s.Geometry().Positions)
}

func TestNew_PendingGeometryReportsMinusOne(t *testing.T) {
	s, err := New(contentOptions(1), nil)
	require.NoError(t, err)

	assert.True(t, s.Geometry().Pending)
	assert.Equal(t, -1.0, s.CurrentIndex())
	assert.Equal(t, 800.0, s.Position())
}

func TestSheet_SnapToOutOfRange(t *testing.T) {
	s, err := New(windowOptions(1), nil)
	require.NoError(t, err)

	for _, idx := range []int{-2, 3, 100} {
		err := s.SnapTo(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", idx)
	}
	assert.Equal(t, 400.0, s.Position())
}

func TestSheet_SnapToAnimatesAndNotifies(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, sub, stop := start(t, windowOptions(1), nil)
		defer stop()

		require.NoError(t, s.SnapTo(2))
		synctest.Wait()
		assert.Equal(t, motion.PhaseRunning, s.Snapshot().Phase)
		assert.Equal(t, []motion.AnimateEvent{{From: 1, To: 2}}, drainAnimates(sub))
		assert.Empty(t, drainChanges(sub), "no change before completion")

		time.Sleep(settle)
		synctest.Wait()
		assert.Equal(t, 0.0, s.Position())
		assert.Equal(t, motion.PhaseStopped, s.Snapshot().Phase)
		assert.Equal(t, []int{2}, drainChanges(sub))
	})
}

func TestSheet_SnapToCurrentIndexIsIdempotent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, sub, stop := start(t, windowOptions(1), nil)
		defer stop()

		require.NoError(t, s.SnapTo(1))
		synctest.Wait()
		assert.Equal(t, motion.PhaseRunning, s.Snapshot().Phase)

		time.Sleep(settle)
		synctest.Wait()
		assert.Equal(t, 400.0, s.Position())
		assert.Empty(t, drainChanges(sub))
		assert.Empty(t, drainAnimates(sub))
	})
}

func TestSheet_ExpandCollapseClose(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, sub, stop := start(t, windowOptions(1), nil)
		defer stop()

		s.Expand()
		time.Sleep(settle)
		synctest.Wait()
		assert.Equal(t, 0.0, s.Position())

		s.Collapse()
		time.Sleep(settle)
		synctest.Wait()
		assert.Equal(t, 800.0, s.Position())

		require.NoError(t, s.SnapTo(1))
		time.Sleep(settle)
		synctest.Wait()

		s.Close()
		time.Sleep(settle)
		synctest.Wait()
		assert.Equal(t, s.Geometry().SheetHeight, s.Position())

		// The 0% point sits on the hidden position, so closing rests on
		// index 0.
		assert.Equal(t, 0.0, s.CurrentIndex())
		assert.Equal(t, []int{2, 0, 1, 0}, drainChanges(sub))
	})
}

func TestSheet_CloseWithoutZeroPoint(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		opts := DefaultOptions(snap.WindowPct(25), snap.WindowPct(50))
		opts.WindowHeight = 800
		opts.InitialSnapIndex = 1
		s, sub, stop := start(t, opts, nil)
		defer stop()

		s.Close()
		synctest.Wait()
		assert.Equal(t, []motion.AnimateEvent{{From: 1, To: -1}}, drainAnimates(sub))

		time.Sleep(settle)
		synctest.Wait()
		assert.Equal(t, 400.0, s.Position())
		assert.Equal(t, []int{-1}, drainChanges(sub))
	})
}

func TestSheet_CloseTargetsCurrentSheetHeightAcrossResize(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, _, stop := start(t, windowOptions(2), nil)
		defer stop()

		s.Close()
		time.Sleep(DefaultDuration / 2)
		s.SetWindow(600)
		time.Sleep(settle)
		synctest.Wait()

		assert.Equal(t, 600.0, s.Geometry().SheetHeight)
		assert.Equal(t, 600.0, s.Position())
	})
}

func TestSheet_CloseWhilePending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, sub, stop := start(t, contentOptions(1), nil)
		defer stop()

		s.Close()
		time.Sleep(settle)
		synctest.Wait()
		assert.Equal(t, 800.0, s.Position())

		s.SetContentHeight(400)
		time.Sleep(settle)
		synctest.Wait()

		assert.False(t, s.Geometry().Pending)
		assert.Equal(t, 400.0, s.Position(), "stays hidden in the resolved geometry")
		assert.Equal(t, -1.0, s.CurrentIndex())
		assert.Empty(t, drainChanges(sub))
	})
}

func TestSheet_PendingResolvesBySlidingIn(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, sub, stop := start(t, contentOptions(1), nil)
		defer stop()

		assert.Equal(t, -1.0, s.CurrentIndex())

		// 50% and 100% of 400 rows: positions [200 0], hidden at 400.
		s.SetContentHeight(400)
		synctest.Wait()

		snapshot := s.Snapshot()
		assert.Equal(t, 400.0, snapshot.Position, "starts from the new hidden position")
		assert.Equal(t, motion.PhaseRunning, snapshot.Phase)
		assert.Equal(t, []motion.AnimateEvent{{From: -1, To: 1}}, drainAnimates(sub))

		time.Sleep(settle)
		synctest.Wait()
		assert.Equal(t, 0.0, s.Position())
		assert.Equal(t, []int{1}, drainChanges(sub))
	})
}

func TestSheet_SnapToWhilePendingIsDeferred(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, sub, stop := start(t, contentOptions(1), nil)
		defer stop()

		require.NoError(t, s.SnapTo(0), "range comes from the configured points")
		assert.ErrorIs(t, s.SnapTo(2), ErrIndexOutOfRange)

		s.SetContentHeight(400)
		time.Sleep(settle)
		synctest.Wait()

		assert.Equal(t, 200.0, s.Position())
		assert.Equal(t, []int{0}, drainChanges(sub))
	})
}

func TestSheet_ResizeRemapsRestingSheet(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, sub, stop := start(t, windowOptions(1), nil)
		defer stop()

		s.SetWindow(400)
		synctest.Wait()

		assert.Equal(t, 200.0, s.Position())
		assert.InDelta(t, 1.0, s.CurrentIndex(), 1e-9)
		assert.Equal(t, motion.PhaseIdle, s.Snapshot().Phase)
		assert.Empty(t, drainChanges(sub))
	})
}

func TestSheet_TopInsetLimitsTravel(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, _, stop := start(t, windowOptions(2), nil)
		defer stop()

		s.SetTopInset(100)
		synctest.Wait()

		assert.Equal(t, []float64{0, 350, 700}, s.Geometry().Offsets)
		assert.Equal(t, 0.0, s.Position())
	})
}

func TestSheet_FeedDragsAndSnaps(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, sub, stop := start(t, windowOptions(1), nil)
		defer stop()

		s.Feed(gesture.Sample{Source: gesture.SourceHandle, Phase: gesture.PhaseBegan})
		s.Feed(gesture.Sample{Source: gesture.SourceHandle, Phase: gesture.PhaseChanged, TranslationY: 5000})
		synctest.Wait()
		assert.Equal(t, 800.0, s.Position(), "live tracking is clamped")

		s.Feed(gesture.Sample{Source: gesture.SourceHandle, Phase: gesture.PhaseChanged, TranslationY: 50})
		s.Feed(gesture.Sample{Source: gesture.SourceHandle, Phase: gesture.PhaseEnded, TranslationY: 50})
		time.Sleep(settle)
		synctest.Wait()

		assert.Equal(t, 400.0, s.Position())
		assert.Empty(t, drainChanges(sub))
	})
}

func TestSheet_GestureInterruptsAnimation(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, sub, stop := start(t, windowOptions(1), nil)
		defer stop()

		s.Expand()
		time.Sleep(DefaultDuration / 2)
		s.Feed(gesture.Sample{Source: gesture.SourceHandle, Phase: gesture.PhaseBegan})
		synctest.Wait()
		assert.Equal(t, motion.PhaseStopped, s.Snapshot().Phase)

		time.Sleep(settle)
		synctest.Wait()
		assert.Empty(t, drainChanges(sub), "interrupted animation never reports")

		s.Feed(gesture.Sample{Source: gesture.SourceHandle, Phase: gesture.PhaseEnded, VelocityY: -2000})
		time.Sleep(settle)
		synctest.Wait()
		assert.Equal(t, 0.0, s.Position())
		assert.Equal(t, []int{2}, drainChanges(sub))
	})
}

func TestSheet_FeedIgnoredWhilePending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, _, stop := start(t, contentOptions(1), nil)
		defer stop()

		s.Feed(gesture.Sample{Source: gesture.SourceHandle, Phase: gesture.PhaseBegan})
		s.Feed(gesture.Sample{Source: gesture.SourceHandle, Phase: gesture.PhaseChanged, TranslationY: -300})
		synctest.Wait()

		assert.Equal(t, 800.0, s.Position())
	})
}

func TestSheet_RefreshesScrollable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		list := mocks.NewMockScrollable(ctrl)
		gomock.InOrder(
			list.EXPECT().SetDecelerationRate(scroll.DecelerationLocked),
			list.EXPECT().FlashIndicators(),
			list.EXPECT().SetDecelerationRate(scroll.DecelerationNormal),
			list.EXPECT().SetDecelerationRate(scroll.DecelerationLocked),
		)

		s, _, stop := start(t, windowOptions(1), scroll.NewCoordinator(nil))
		defer stop()

		reg := s.RegisterScrollable("list", list)
		assert.Equal(t, "list", reg.ID)
		synctest.Wait()

		s.Expand()
		time.Sleep(settle)
		synctest.Wait()

		s.Collapse()
		time.Sleep(settle)
		synctest.Wait()

		assert.True(t, s.UnregisterScrollable("list"))
		assert.False(t, s.UnregisterScrollable("list"))
	})
}

func TestSheet_Reconfigure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, _, stop := start(t, windowOptions(1), nil)
		defer stop()

		bad := windowOptions(1)
		bad.Duration = 0
		assert.ErrorIs(t, s.Reconfigure(bad), ErrInvalidConfig)
		assert.Equal(t, 3, s.Geometry().Len(), "rejected options leave the sheet untouched")

		next := windowOptions(0)
		next.SnapPoints = []snap.Point{snap.WindowPct(25), snap.WindowPct(75)}
		require.NoError(t, s.Reconfigure(next))
		synctest.Wait()

		assert.Equal(t, []float64{400, 0}, s.Geometry().Positions)
		require.NoError(t, s.SnapTo(1))
		time.Sleep(settle)
		synctest.Wait()
		assert.Equal(t, 0.0, s.Position())
	})
}

func TestSheet_RunTwice(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, sub, stop := start(t, windowOptions(1), nil)
		synctest.Wait()

		err := s.Run(context.Background())
		assert.True(t, errors.Is(err, ErrRunning))

		stop()
		<-sub.Done
	})
}
