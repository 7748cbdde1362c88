package models

import "errors"

// Error kinds shared by the validation and repository layers. Callers
// classify failures with errors.Is and map them to HTTP status codes.
var (
	// ErrMissingParameter signals a required field was absent.
	ErrMissingParameter = errors.New("missing parameter")
	// ErrInvalidArgument signals a field failed type, shape, or format checks.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound signals a lookup found nothing where existence was required.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate signals a uniqueness constraint was violated.
	ErrDuplicate = errors.New("already exists")
	// ErrExternalService signals the music catalog failed or returned an
	// unusable shape.
	ErrExternalService = errors.New("external service failure")
)
