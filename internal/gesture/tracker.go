package gesture

import "time"

// velocityWindow is how far back pointer history is kept for the release
// velocity.
const velocityWindow = 100 * time.Millisecond

type pointerSample struct {
	y  float64
	at time.Time
}

// Tracker converts raw pointer positions into Samples for one source.
type Tracker struct {
	source  Source
	active  bool
	startY  float64
	history []pointerSample
}

// NewTracker creates an idle tracker for src.
func NewTracker(src Source) *Tracker {
	return &Tracker{source: src}
}

// Active reports whether the pointer is pressed.
func (t *Tracker) Active() bool {
	return t.active
}

// Press starts a drag at y.
func (t *Tracker) Press(y float64, now time.Time) Sample {
	t.active = true
	t.startY = y
	t.history = append(t.history[:0], pointerSample{y: y, at: now})
	return Sample{Source: t.source, Phase: PhaseBegan}
}

// Move records a pointer motion. It returns false when no drag is active.
func (t *Tracker) Move(y float64, now time.Time) (Sample, bool) {
	if !t.active {
		return Sample{}, false
	}
	t.record(y, now)
	return Sample{
		Source:       t.source,
		Phase:        PhaseChanged,
		TranslationY: y - t.startY,
		VelocityY:    t.velocity(),
	}, true
}

// Release ends the drag at y.
func (t *Tracker) Release(y float64, now time.Time) (Sample, bool) {
	if !t.active {
		return Sample{}, false
	}
	t.record(y, now)
	s := Sample{
		Source:       t.source,
		Phase:        PhaseEnded,
		TranslationY: y - t.startY,
		VelocityY:    t.velocity(),
	}
	t.reset()
	return s, true
}

// Cancel aborts the drag, keeping the last known translation.
func (t *Tracker) Cancel() (Sample, bool) {
	if !t.active {
		return Sample{}, false
	}
	last := t.history[len(t.history)-1]
	s := Sample{
		Source:       t.source,
		Phase:        PhaseCancelled,
		TranslationY: last.y - t.startY,
	}
	t.reset()
	return s, true
}

func (t *Tracker) reset() {
	t.active = false
	t.history = t.history[:0]
}

func (t *Tracker) record(y float64, now time.Time) {
	t.history = append(t.history, pointerSample{y: y, at: now})
	cutoff := now.Add(-velocityWindow)
	drop := 0
	for drop < len(t.history)-2 && t.history[drop+1].at.Before(cutoff) {
		drop++
	}
	t.history = t.history[drop:]
}

// velocity is the mean speed across the retained history, in rows per
// second.
func (t *Tracker) velocity() float64 {
	if len(t.history) < 2 {
		return 0
	}
	first, last := t.history[0], t.history[len(t.history)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.y - first.y) / dt
}
