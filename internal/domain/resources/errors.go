package resources

import "errors"

// Domain error taxonomy. Handlers map these onto HTTP problem responses,
// everything else becomes a 500.
var (
	// ErrNotFound indicates that no resource exists for the requested ID.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates that a resource with the same unique attributes already exists.
	ErrConflict = errors.New("resource already exists")

	// ErrValidation indicates that user-provided resource data failed validation.
	ErrValidation = errors.New("resource validation failed")
)
