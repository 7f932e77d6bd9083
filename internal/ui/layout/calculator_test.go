package layout

import (
	"math"
	"testing"
)

func TestVisibleRows(t *testing.T) {
	tests := []struct {
		name        string
		sheetHeight float64
		position    float64
		want        int
	}{
		{"fully expanded", 40, 0, 40},
		{"half way", 40, 20, 20},
		{"hidden", 40, 40, 0},
		{"rounds", 40, 19.6, 20},
		{"overshoot above top", 40, -3, 40},
		{"overshoot below hidden", 40, 44, 0},
		{"NaN position", 40, math.NaN(), 0},
		{"empty sheet", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleRows(tt.sheetHeight, tt.position); got != tt.want {
				t.Errorf("VisibleRows(%v, %v) = %d, want %d", tt.sheetHeight, tt.position, got, tt.want)
			}
		})
	}
}

func TestHandleAndContentRows(t *testing.T) {
	tests := []struct {
		visible, handle     int
		wantHandle, wantRow int
	}{
		{10, 1, 1, 9},
		{1, 1, 1, 0},
		{0, 1, 0, 0},
		{3, 2, 2, 1},
		{5, 0, 0, 5},
	}
	for _, tt := range tests {
		if got := HandleRows(tt.visible, tt.handle); got != tt.wantHandle {
			t.Errorf("HandleRows(%d, %d) = %d, want %d", tt.visible, tt.handle, got, tt.wantHandle)
		}
		if got := ContentRows(tt.visible, tt.handle); got != tt.wantRow {
			t.Errorf("ContentRows(%d, %d) = %d, want %d", tt.visible, tt.handle, got, tt.wantRow)
		}
	}
}

func TestContentViewport(t *testing.T) {
	if got := ContentViewport(24.4, 1); got != 23 {
		t.Errorf("ContentViewport(24.4, 1) = %d, want 23", got)
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		name     string
		index    float64
		maxIndex int
		want     float64
	}{
		{"hidden", -1, 2, 0},
		{"first", 0, 2, 0},
		{"between", 1.5, 3, 0.5},
		{"last", 2, 2, 1},
		{"single point", 0, 0, 1},
		{"overshoot", 2.3, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fraction(tt.index, tt.maxIndex); got != tt.want {
				t.Errorf("Fraction(%v, %d) = %v, want %v", tt.index, tt.maxIndex, got, tt.want)
			}
		})
	}
}

func TestIsNarrowMode(t *testing.T) {
	if !IsNarrowMode(79) || IsNarrowMode(80) {
		t.Error("IsNarrowMode threshold mismatch")
	}
}

func TestEventLogRows(t *testing.T) {
	if got := EventLogRows(50, 20, 1); got != 29 {
		t.Errorf("EventLogRows(50, 20, 1) = %d, want 29", got)
	}
	if got := EventLogRows(10, 10, 1); got != 0 {
		t.Errorf("EventLogRows(10, 10, 1) = %d, want 0", got)
	}
}
