package deploy

import (
	"errors"
	"fmt"
)

// Process exit codes for precondition violations and external tool failures.
const (
	ExitCodeMissingTool        = 1
	ExitCodeMissingVariable    = 2
	ExitCodeAuthFailure        = 3
	ExitCodeClusterCredentials = 4
)

// ExitError carries the process exit code a failure maps to.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the message of the wrapped error
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d: %v", e.Code, e.Err)
}

// Unwrap returns the wrapped error
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError wraps err with the given process exit code
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// ExitCodeFromError extracts the exit code from err. Errors that do not carry
// one map to a generic non-zero code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
