package gesture

import (
	"math"
	"testing"
	"time"
)

func TestTracker_TranslationAndVelocity(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTracker(SourceHandle)

	began := tr.Press(10, start)
	if began.Phase != PhaseBegan || began.Source != SourceHandle {
		t.Fatalf("Press() = %+v, want Began on handle", began)
	}

	s, ok := tr.Move(15, start.Add(50*time.Millisecond))
	if !ok {
		t.Fatal("Move() ok = false while pressed")
	}
	if s.TranslationY != 5 {
		t.Errorf("TranslationY = %v, want 5", s.TranslationY)
	}
	if math.Abs(s.VelocityY-100) > 1e-9 {
		t.Errorf("VelocityY = %v, want 100", s.VelocityY)
	}

	end, ok := tr.Release(20, start.Add(100*time.Millisecond))
	if !ok || end.Phase != PhaseEnded {
		t.Fatalf("Release() = %+v, %v", end, ok)
	}
	if end.TranslationY != 10 {
		t.Errorf("TranslationY = %v, want 10", end.TranslationY)
	}
	if tr.Active() {
		t.Error("tracker still active after release")
	}
}

func TestTracker_VelocityUsesRecentWindow(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTracker(SourceContent)
	tr.Press(0, start)

	// Fast motion followed by a pause: only the pause counts.
	tr.Move(50, start.Add(10*time.Millisecond))
	tr.Move(50, start.Add(500*time.Millisecond))
	s, _ := tr.Release(50, start.Add(600*time.Millisecond))

	if s.VelocityY != 0 {
		t.Errorf("VelocityY = %v, want 0 after a pause", s.VelocityY)
	}
}

func TestTracker_IgnoresMotionWhenIdle(t *testing.T) {
	tr := NewTracker(SourceHandle)
	now := time.Now()

	if _, ok := tr.Move(3, now); ok {
		t.Error("Move() ok = true without press")
	}
	if _, ok := tr.Release(3, now); ok {
		t.Error("Release() ok = true without press")
	}
	if _, ok := tr.Cancel(); ok {
		t.Error("Cancel() ok = true without press")
	}
}

func TestTracker_Cancel(t *testing.T) {
	now := time.Now()
	tr := NewTracker(SourceHandle)
	tr.Press(4, now)
	tr.Move(9, now.Add(time.Millisecond))

	s, ok := tr.Cancel()
	if !ok || s.Phase != PhaseCancelled || s.TranslationY != 5 {
		t.Errorf("Cancel() = %+v, %v", s, ok)
	}
}
