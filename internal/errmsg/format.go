// Package errmsg turns engine and configuration errors into the one-line
// messages shown in the status bar and on exit.
package errmsg

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/llehouerou/sheet/internal/sheet"
)

// Op names what was being attempted when an error occurred.
type Op string

const (
	OpSnapTo Op = "snap sheet"

	OpConfigLoad   Op = "load configuration"
	OpConfigReload Op = "reload configuration"
	OpConfigApply  Op = "apply configuration"
	OpConfigWatch  Op = "watch configuration"

	OpLogOpen    Op = "open log file"
	OpInitialize Op = "initialize sheet"
)

// Format returns "Failed to <op>: <reason>", or "" for a nil error.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %s", op, Reason(err))
}

// FormatWith is Format with a subject, usually a file path, quoted after
// the operation. An empty subject is left out.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s %q: %s", op, subject, Reason(err))
}

// Reason shortens err for display. The configuration sentinel prefix is
// dropped since every configuration Op already says as much, and file
// system errors lose the operation and path the caller reports itself.
func Reason(err error) string {
	var pathErr *fs.PathError
	switch {
	case errors.As(err, &pathErr) && errors.Is(err, fs.ErrNotExist):
		return "no such file"
	case errors.As(err, &pathErr) && errors.Is(err, fs.ErrPermission):
		return "permission denied"
	case errors.Is(err, sheet.ErrInvalidConfig):
		msg := err.Error()
		if rest, ok := strings.CutPrefix(msg, sheet.ErrInvalidConfig.Error()+": "); ok {
			return rest
		}
		return msg
	}
	return err.Error()
}
