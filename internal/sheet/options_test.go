package sheet

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/llehouerou/sheet/internal/easing"
	"github.com/llehouerou/sheet/internal/snap"
)

func threePoints() []snap.Point {
	return []snap.Point{snap.WindowPct(0), snap.WindowPct(50), snap.WindowPct(100)}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		want   error
	}{
		{"defaults", func(*Options) {}, nil},
		{"closed initial index", func(o *Options) { o.InitialSnapIndex = -1 }, nil},
		{"last initial index", func(o *Options) { o.InitialSnapIndex = 2 }, nil},
		{"no snap points", func(o *Options) { o.SnapPoints = nil }, snap.ErrNoSnapPoints},
		{"NaN percentage", func(o *Options) { o.SnapPoints = []snap.Point{snap.WindowPct(math.NaN())} }, snap.ErrInvalidPercentage},
		{"initial index too large", func(o *Options) { o.InitialSnapIndex = 3 }, ErrInvalidConfig},
		{"initial index too small", func(o *Options) { o.InitialSnapIndex = -2 }, ErrInvalidConfig},
		{"zero duration", func(o *Options) { o.Duration = 0 }, ErrInvalidConfig},
		{"negative duration", func(o *Options) { o.Duration = -time.Second }, ErrInvalidConfig},
		{"nil easing", func(o *Options) { o.Easing = nil }, easing.ErrMalformed},
		{"malformed easing", func(o *Options) { o.Easing = func(t float64) float64 { return 2 * t } }, easing.ErrMalformed},
		{"negative top inset", func(o *Options) { o.TopInset = -1 }, ErrInvalidConfig},
		{"negative handle height", func(o *Options) { o.HandleHeight = -1 }, ErrInvalidConfig},
		{"negative projection", func(o *Options) { o.Projection = -0.1 }, ErrInvalidConfig},
		{"zero frame interval", func(o *Options) { o.FrameInterval = 0 }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions(threePoints()...)
			tt.mutate(&opts)

			err := opts.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want it to wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	s, err := New(opts, nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("New() error = %v, want ErrInvalidConfig", err)
	}
	if s != nil {
		t.Error("New() returned a sheet alongside an error")
	}
}
