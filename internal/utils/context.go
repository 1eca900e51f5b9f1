// Package utils holds the small helpers shared by the server and client:
// the resty HTTP client wrapper, JWT issue/verify, JSON response writing and
// the request-context user id key.
package utils

import (
	"context"
)

// contextKey keeps the package's context keys from colliding with
// string-typed keys used elsewhere.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the request-context key under which the auth middleware
// stores the authenticated user's id as an int64.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext reads the authenticated user's id placed in ctx by
// the auth middleware. ok is false when the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
