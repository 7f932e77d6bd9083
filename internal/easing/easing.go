// Package easing provides the time curves used by sheet animations.
//
// A Func maps normalized time t in [0, 1] to animation progress. Progress
// must start at 0 and end at 1; curves such as Back may overshoot in between.
package easing

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	// ErrMalformed is returned by Validate for curves that do not start at
	// 0, do not end at 1, or produce non-finite values.
	ErrMalformed = errors.New("malformed easing function")

	// ErrUnknown is returned by ByName for unregistered curve names.
	ErrUnknown = errors.New("unknown easing function")
)

// Func is an easing curve.
type Func func(t float64) float64

// DefaultBackOvershoot is the overshoot used by the default curve.
const DefaultBackOvershoot = 0.75

// Linear progresses at constant speed.
func Linear(t float64) float64 { return t }

// Quad accelerates quadratically.
func Quad(t float64) float64 { return t * t }

// Cubic accelerates cubically.
func Cubic(t float64) float64 { return t * t * t }

// Back returns a curve that pulls back by s before moving forward.
func Back(s float64) Func {
	return func(t float64) float64 {
		return t * t * ((s+1)*t - s)
	}
}

// In returns f unchanged; it exists for symmetry with Out and InOut.
func In(f Func) Func { return f }

// Out runs f backwards in time, turning acceleration into deceleration.
func Out(f Func) Func {
	return func(t float64) float64 {
		return 1 - f(1-t)
	}
}

// InOut runs f for the first half and Out(f) for the second.
func InOut(f Func) Func {
	return func(t float64) float64 {
		if t < 0.5 {
			return f(t*2) / 2
		}
		return 1 - f((1-t)*2)/2
	}
}

// Default is the sheet's default curve: a decelerating ease with a small
// overshoot past the target.
func Default() Func {
	return Out(Back(DefaultBackOvershoot))
}

var registry = map[string]func() Func{
	"linear":            func() Func { return Linear },
	"ease-in-quad":      func() Func { return In(Quad) },
	"ease-out-quad":     func() Func { return Out(Quad) },
	"ease-in-out-quad":  func() Func { return InOut(Quad) },
	"ease-out-cubic":    func() Func { return Out(Cubic) },
	"ease-in-out-cubic": func() Func { return InOut(Cubic) },
	"ease-out-back":     Default,
}

// ByName returns the registered curve for a configuration name. An empty
// name selects the default curve.
func ByName(name string) (Func, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Default(), nil
	}
	build, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}
	return build(), nil
}

// Names lists the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const (
	endpointTolerance = 1e-6
	validationSamples = 32
)

// Validate checks that f is usable as an animation curve.
func Validate(f Func) error {
	if f == nil {
		return fmt.Errorf("%w: nil", ErrMalformed)
	}
	if v := f(0); math.Abs(v) > endpointTolerance {
		return fmt.Errorf("%w: f(0) = %v, want 0", ErrMalformed, v)
	}
	if v := f(1); math.Abs(v-1) > endpointTolerance {
		return fmt.Errorf("%w: f(1) = %v, want 1", ErrMalformed, v)
	}
	for i := 1; i < validationSamples; i++ {
		t := float64(i) / validationSamples
		if v := f(t); math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: f(%v) = %v", ErrMalformed, t, v)
		}
	}
	return nil
}
