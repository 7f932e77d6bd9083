package motion

import (
	"time"

	"github.com/llehouerou/sheet/internal/easing"
)

// tween interpolates the position from one value to another over a fixed
// duration.
type tween struct {
	from, to float64
	start    time.Time
	duration time.Duration
	ease     easing.Func
}

// at returns the interpolated value at now and whether the tween is done.
func (tw *tween) at(now time.Time) (float64, bool) {
	elapsed := now.Sub(tw.start)
	if elapsed >= tw.duration {
		return tw.to, true
	}
	if elapsed <= 0 {
		return tw.from, false
	}
	progress := tw.ease(float64(elapsed) / float64(tw.duration))
	return tw.from + (tw.to-tw.from)*progress, false
}
