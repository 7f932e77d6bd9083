package errmsg

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/llehouerou/sheet/internal/sheet"
	"github.com/llehouerou/sheet/internal/snap"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSnapTo,
			err:      nil,
			expected: "",
		},
		{
			name:     "engine error is kept",
			op:       OpSnapTo,
			err:      fmt.Errorf("%w: 7 not in [-1, 2]", sheet.ErrIndexOutOfRange),
			expected: "Failed to snap sheet: snap index out of range: 7 not in [-1, 2]",
		},
		{
			name:     "configuration prefix is dropped",
			op:       OpConfigApply,
			err:      fmt.Errorf("%w: %w", sheet.ErrInvalidConfig, snap.ErrNoSnapPoints),
			expected: "Failed to apply configuration: " + snap.ErrNoSnapPoints.Error(),
		},
		{
			name:     "missing file",
			op:       OpLogOpen,
			err:      &fs.PathError{Op: "open", Path: "/x/sheet.log", Err: fs.ErrNotExist},
			expected: "Failed to open log file: no such file",
		},
		{
			name:     "plain error",
			op:       OpConfigReload,
			err:      errors.New("toml: line 3: expected '='"),
			expected: "Failed to reload configuration: toml: line 3: expected '='",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	denied := &fs.PathError{Op: "open", Path: "/var/log/sheet.log", Err: fs.ErrPermission}

	if got := FormatWith(OpLogOpen, "/var/log/sheet.log", denied); got != `Failed to open log file "/var/log/sheet.log": permission denied` {
		t.Errorf("FormatWith() = %q", got)
	}
	if got := FormatWith(OpLogOpen, "", denied); got != "Failed to open log file: permission denied" {
		t.Errorf("FormatWith() with empty subject = %q", got)
	}
	if got := FormatWith(OpLogOpen, "x", nil); got != "" {
		t.Errorf("FormatWith() with nil error = %q, want empty", got)
	}
}

func TestReason_BareSentinel(t *testing.T) {
	if got := Reason(sheet.ErrInvalidConfig); got != sheet.ErrInvalidConfig.Error() {
		t.Errorf("Reason(ErrInvalidConfig) = %q", got)
	}
}
