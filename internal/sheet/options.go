package sheet

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/llehouerou/sheet/internal/easing"
	"github.com/llehouerou/sheet/internal/gesture"
	"github.com/llehouerou/sheet/internal/motion"
	"github.com/llehouerou/sheet/internal/snap"
)

// ErrInvalidConfig wraps every construction-time validation failure.
var ErrInvalidConfig = errors.New("invalid sheet configuration")

const (
	DefaultDuration  = 500 * time.Millisecond
	DefaultFrameRate = 60
)

// Options configure a Sheet. They are immutable once passed to New or
// Reconfigure.
type Options struct {
	SnapPoints       []snap.Point
	InitialSnapIndex int

	// WindowHeight is the initial window height. Zero means unknown: the
	// sheet stays hidden until SetWindow is called.
	WindowHeight float64
	TopInset     float64
	HandleHeight float64

	Duration     time.Duration
	Easing       easing.Func
	OnlyDistinct bool

	// Projection is the release velocity look-ahead, in seconds.
	Projection    float64
	FrameInterval time.Duration

	Logger *slog.Logger
}

// DefaultOptions returns options with the documented defaults and the given
// snap points.
func DefaultOptions(points ...snap.Point) Options {
	return Options{
		SnapPoints:    points,
		HandleHeight:  snap.DefaultHandleHeight,
		Duration:      DefaultDuration,
		Easing:        easing.Default(),
		OnlyDistinct:  true,
		Projection:    gesture.DefaultProjection,
		FrameInterval: time.Second / DefaultFrameRate,
	}
}

// Validate checks the options. Invalid values are rejected, never
// defaulted.
func (o Options) Validate() error {
	if len(o.SnapPoints) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, snap.ErrNoSnapPoints)
	}
	if _, err := snap.Resolve(o.SnapPoints, snap.Measurements{ContentMeasured: true}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if maxIndex := len(o.SnapPoints) - 1; o.InitialSnapIndex < -1 || o.InitialSnapIndex > maxIndex {
		return fmt.Errorf("%w: initial snap index %d not in [-1, %d]",
			ErrInvalidConfig, o.InitialSnapIndex, maxIndex)
	}
	if o.Duration <= 0 {
		return fmt.Errorf("%w: animation duration must be positive, got %s", ErrInvalidConfig, o.Duration)
	}
	if err := easing.Validate(o.Easing); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !finiteNonNegative(o.TopInset) {
		return fmt.Errorf("%w: top inset must be >= 0, got %v", ErrInvalidConfig, o.TopInset)
	}
	if !finiteNonNegative(o.HandleHeight) {
		return fmt.Errorf("%w: handle height must be >= 0, got %v", ErrInvalidConfig, o.HandleHeight)
	}
	if !finiteNonNegative(o.WindowHeight) {
		return fmt.Errorf("%w: window height must be >= 0, got %v", ErrInvalidConfig, o.WindowHeight)
	}
	if !finiteNonNegative(o.Projection) {
		return fmt.Errorf("%w: projection must be >= 0, got %v", ErrInvalidConfig, o.Projection)
	}
	if o.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame interval must be positive, got %s", ErrInvalidConfig, o.FrameInterval)
	}
	return nil
}

func (o Options) motionConfig(listener motion.Listener, onRest func(int)) motion.Config {
	return motion.Config{
		Duration:     o.Duration,
		Easing:       o.Easing,
		OnlyDistinct: o.OnlyDistinct,
		Listener:     listener,
		OnRest:       onRest,
		Logger:       o.Logger,
	}
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
