package cli

import (
	"errors"

	"github.com/yaklabco/leetboard/pkg/fsutil"
	"github.com/yaklabco/leetboard/pkg/leaderboard"
)

// Exit codes for leetboard, following BSD sysexits where they fit.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitError indicates a generic failure.
	ExitError = 1

	// ExitInvalidInput indicates malformed stats data.
	ExitInvalidInput = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps an error to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, leaderboard.ErrInvalidInput):
		return ExitInvalidInput
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitError
	}
}
