package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	base := "aaaaa\nbbbbb\nccccc"

	tests := []struct {
		name    string
		overlay string
		top     int
		want    string
	}{
		{
			name:    "first row",
			overlay: " XY",
			top:     0,
			want:    "aXYaa\nbbbbb\nccccc",
		},
		{
			name:    "offset rows",
			overlay: "Z\n  W",
			top:     1,
			want:    "aaaaa\nZbbbb\nccWcc",
		},
		{
			name:    "blank lines are transparent",
			overlay: "   \nQ",
			top:     0,
			want:    "aaaaa\nQbbbb\nccccc",
		},
		{
			name:    "rows past the base are dropped",
			overlay: "1\n2\n3",
			top:     2,
			want:    "aaaaa\nbbbbb\n1cccc",
		},
		{
			name:    "negative top skips leading rows",
			overlay: "1\n2",
			top:     -1,
			want:    "2aaaa\nbbbbb\nccccc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(base, tt.overlay, 5, tt.top))
		})
	}
}

func TestCompose_PadsShortBaseLines(t *testing.T) {
	assert.Equal(t, "ab  X", Compose("ab", "    X", 5, 0))
}

func TestBottom(t *testing.T) {
	base := "1\n2\n3\n4"

	assert.Equal(t, "1\n2\nS\nT", Bottom(base, "S\nT", 4))
	assert.Equal(t, base, Bottom(base, "", 4))
	assert.Equal(t, "B\nC\nD", Bottom(base, "A\nB\nC\nD", 3))
	assert.Equal(t, "1\n2\n3\n4\n\nS", Bottom(base, "S", 6), "short base is padded")
}
