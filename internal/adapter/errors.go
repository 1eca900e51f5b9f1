package adapter

import "errors"

// Sentinel errors produced by the HTTP error mapper. Callers match them with
// [errors.Is]; the concrete status code and response body are preserved in
// the wrapping error's message.
var (
	// ErrUnauthorized is returned for HTTP 401 and 403 responses: the bearer
	// token is missing, expired, or not accepted by the server.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound is returned for HTTP 404 responses.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned for HTTP 400, 409 and 422 responses: the
	// server rejected the payload on a field or constraint check.
	ErrValidation = errors.New("request rejected by server validation")

	// ErrServer is returned for HTTP 5xx responses.
	ErrServer = errors.New("server error")

	// ErrNetwork is returned when the request could not complete at the
	// transport level (connection refused, timeout, DNS failure).
	ErrNetwork = errors.New("network failure")
)
