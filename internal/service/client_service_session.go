package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/savrasovpm/go-pantry-keeper/internal/adapter"
	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/store"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

// sessionService is the concrete [SessionService]. Invariant: a non-empty
// identity exists only while a non-empty token does; every code path that
// changes the token goes through setSession/clearSession so the two can
// never drift apart.
type sessionService struct {
	gateway    adapter.ServerGateway
	localState store.LocalStateRepository
	logger     *logger.Logger

	mu        sync.Mutex
	token     string
	identity  models.Identity
	resolved  bool
	listeners []func(token string)
}

// NewSessionService wires a [SessionService] to the gateway whose requests
// it authorises and the local state repository it persists to. The gateway
// itself is the first listener: its token is updated before any other
// subscriber observes the change, so no request races ahead with a stale
// token.
func NewSessionService(gateway adapter.ServerGateway, localState store.LocalStateRepository, logger *logger.Logger) SessionService {
	s := &sessionService{
		gateway:    gateway,
		localState: localState,
		logger:     logger,
	}
	s.listeners = append(s.listeners, gateway.SetToken)
	return s
}

func (s *sessionService) Login(ctx context.Context, creds models.Credentials) (models.Identity, error) {
	token, err := s.gateway.Login(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", creds.Username).Msg("login failed")
		return models.Identity{}, mapAuthError(err)
	}

	return s.establish(ctx, token)
}

func (s *sessionService) Register(ctx context.Context, creds models.Credentials) (models.Identity, error) {
	token, err := s.gateway.Register(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", creds.Username).Msg("registration failed")
		return models.Identity{}, mapAuthError(err)
	}

	return s.establish(ctx, token)
}

// establish installs token, notifies listeners, resolves the identity behind
// it and persists the session.
func (s *sessionService) establish(ctx context.Context, token string) (models.Identity, error) {
	s.setToken(token)

	identity, err := s.CurrentUser(ctx)
	if err != nil {
		// a token without a resolved identity is not a session; drop it so
		// the UI and the gateway agree the login failed
		s.clearSession()
		return models.Identity{}, err
	}

	if err = s.localState.SaveSession(ctx, models.LocalSession{
		Token:    token,
		UserID:   identity.ID,
		Username: identity.Username,
		SavedAt:  time.Now().UTC(),
	}); err != nil {
		// the in-memory session is still valid, it just won't survive a restart
		s.logger.Warn().Err(err).Msg("failed to persist session")
	}

	return identity, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.clearSession()

	if err := s.localState.ClearSession(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear persisted session")
		return fmt.Errorf("session cleared locally, but clearing persisted state failed: %w", err)
	}
	if err := s.localState.ClearSnapshots(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear persisted snapshots")
		return fmt.Errorf("session cleared locally, but clearing persisted snapshots failed: %w", err)
	}

	return nil
}

func (s *sessionService) CurrentUser(ctx context.Context) (models.Identity, error) {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return models.Identity{}, fmt.Errorf("%w: not logged in", ErrInvalidCredentials)
	}
	if s.resolved {
		identity := s.identity
		s.mu.Unlock()
		return identity, nil
	}
	s.mu.Unlock()

	identity, err := s.gateway.Me(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("identity resolution failed")
		if errors.Is(err, adapter.ErrUnauthorized) {
			s.Invalidate()
		}
		return models.Identity{}, mapAuthError(err)
	}

	s.mu.Lock()
	// the token may have changed while /me was in flight
	if s.token != "" {
		s.identity = identity
		s.resolved = true
	}
	s.mu.Unlock()

	return identity, nil
}

func (s *sessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *sessionService) Invalidate() {
	s.logger.Info().Msg("session invalidated by server")
	s.clearSession()

	if err := s.localState.ClearSession(context.Background()); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear persisted session")
	}
}

func (s *sessionService) Subscribe(listener func(token string)) {
	s.mu.Lock()
	token := s.token
	s.listeners = append(s.listeners, listener)
	s.mu.Unlock()

	listener(token)
}

func (s *sessionService) Restore(ctx context.Context) error {
	persisted, err := s.localState.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restoring session failed: %w", err)
	}

	s.mu.Lock()
	s.token = persisted.Token
	s.identity = models.Identity{ID: persisted.UserID, Username: persisted.Username}
	s.resolved = true
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, notify := range listeners {
		notify(persisted.Token)
	}

	s.logger.Info().Str("username", persisted.Username).Msg("session restored")
	return nil
}

// setToken installs a new token and synchronously notifies listeners before
// returning, so no caller can issue a request with a stale token.
func (s *sessionService) setToken(token string) {
	s.mu.Lock()
	s.token = token
	s.identity = models.Identity{}
	s.resolved = false
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, notify := range listeners {
		notify(token)
	}
}

// clearSession atomically drops the token and the identity derived from it.
func (s *sessionService) clearSession() {
	s.setToken("")
}
