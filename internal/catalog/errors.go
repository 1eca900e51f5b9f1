package catalog

import (
	"errors"
	"fmt"

	"github.com/savrasovpm/go-pantry-keeper/internal/adapter"
)

// Error kinds surfaced to the presentation layer. The cache never renders
// UI; callers map each kind to a user-facing message.
var (
	// ErrUnauthorized is returned when no session token is present or the
	// server rejected the one that was sent.
	ErrUnauthorized = errors.New("not authorized")

	// ErrNotFound is returned when the requested record does not exist,
	// locally or on the server.
	ErrNotFound = errors.New("record not found")

	// ErrValidationFailed is returned when a record fails field checks,
	// client- or server-side.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNetworkFailure is returned when the transport could not complete
	// the request.
	ErrNetworkFailure = errors.New("network failure")

	// ErrServerError is returned when the server answered with a 5xx.
	ErrServerError = errors.New("server error")
)

// MissingFieldError reports a required field left empty during client-side
// validation. It matches ErrValidationFailed under errors.Is.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrValidationFailed
}

func isUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// classify translates a transport error from the gateway into the cache's
// error taxonomy. Unknown errors count as server errors: the request made it
// out but the response could not be used.
func classify(err error) error {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, adapter.ErrValidation):
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	default:
		return fmt.Errorf("%w: %v", ErrServerError, err)
	}
}
