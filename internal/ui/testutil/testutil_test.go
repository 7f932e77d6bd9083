package testutil

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"colour", "\x1b[31mred\x1b[0m", "red"},
		{"truecolor background", "\x1b[48;2;31;31;43m  \x1b[0mx", "  x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("\x1b[1mab\x1b[0m日"); got != 4 {
		t.Errorf("MeasureWidth = %d, want 4", got)
	}
}

func TestRowOf(t *testing.T) {
	view := "top\n\x1b[2mmiddle\x1b[0m\nbottom\n"

	if got := RowOf(view, "middle"); got != 1 {
		t.Errorf("RowOf(middle) = %d, want 1", got)
	}
	if got := RowOf(view, "missing"); got != -1 {
		t.Errorf("RowOf(missing) = %d, want -1", got)
	}
	if !ContainsLine(view, "bottom") {
		t.Error("ContainsLine(bottom) = false")
	}
	if got := len(Lines(view)); got != 4 {
		t.Errorf("len(Lines) = %d, want 4", got)
	}
}

func TestCountMatching(t *testing.T) {
	if got := CountMatching("a x\nb\nc x", "x"); got != 2 {
		t.Errorf("CountMatching = %d, want 2", got)
	}
}
