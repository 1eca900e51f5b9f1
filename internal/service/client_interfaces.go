package service

import (
	"context"

	"github.com/savrasovpm/go-pantry-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionService owns the client's authentication state: the bearer token
// and the identity derived from it. It is the single writer of the token;
// every other component reads it through [SessionService.Token] or is
// notified through [SessionService.Subscribe].
type SessionService interface {
	// Login exchanges credentials for a session. On success the token is
	// stored, listeners are notified and the session is persisted locally.
	Login(ctx context.Context, creds models.Credentials) (models.Identity, error)

	// Register creates an account and then behaves like Login.
	Register(ctx context.Context, creds models.Credentials) (models.Identity, error)

	// Logout clears the token and identity. The local state is cleared
	// unconditionally; a persistence failure is reported but never leaves
	// the session alive.
	Logout(ctx context.Context) error

	// CurrentUser returns the identity behind the stored token, resolving
	// it from the server on first use and caching it until the token
	// changes. Returns ErrInvalidCredentials when no token is stored.
	CurrentUser(ctx context.Context) (models.Identity, error)

	// Token returns the current bearer token, or "" when logged out.
	Token() string

	// Invalidate drops the session locally after the server rejected the
	// token. Listeners are notified like on any other token change.
	Invalidate()

	// Subscribe registers a listener invoked synchronously on every token
	// change, before the mutating call returns.
	Subscribe(listener func(token string))

	// Restore loads a previously persisted session, if any, and notifies
	// listeners. Called once at startup.
	Restore(ctx context.Context) error
}
