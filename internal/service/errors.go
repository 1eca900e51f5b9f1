package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired = errors.New("token is expired")

	ErrValidationEmptyName       = errors.New("name must not be empty")
	ErrValidationBadQuantity     = errors.New("quantity must be greater than zero")
	ErrValidationMissingCategory = errors.New("category must be set")
)

// Client-side session errors.
var (
	// ErrInvalidCredentials is returned when the server rejects the supplied
	// username/password pair.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrServerUnavailable is returned when the server cannot be reached or
	// answers with a 5xx during an auth operation.
	ErrServerUnavailable = errors.New("server is unavailable")
)
