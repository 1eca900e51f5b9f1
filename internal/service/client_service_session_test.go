// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Savrasov

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/savrasovpm/go-pantry-keeper/internal/adapter"
	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/mock"
	"github.com/savrasovpm/go-pantry-keeper/internal/store"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

// fakeLocalState is an in-memory LocalStateRepository.
type fakeLocalState struct {
	session    models.LocalSession
	hasSession bool
	snapshots  map[string][]byte

	saveErr  error
	clearErr error
}

func newFakeLocalState() *fakeLocalState {
	return &fakeLocalState{snapshots: make(map[string][]byte)}
}

func (f *fakeLocalState) SaveSession(_ context.Context, s models.LocalSession) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.session = s
	f.hasSession = true
	return nil
}

func (f *fakeLocalState) GetSession(_ context.Context) (models.LocalSession, error) {
	if !f.hasSession {
		return models.LocalSession{}, store.ErrLocalSessionNotFound
	}
	return f.session, nil
}

func (f *fakeLocalState) ClearSession(_ context.Context) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.session = models.LocalSession{}
	f.hasSession = false
	return nil
}

func (f *fakeLocalState) SaveSnapshot(_ context.Context, collection string, payload []byte) error {
	f.snapshots[collection] = payload
	return nil
}

func (f *fakeLocalState) GetSnapshot(_ context.Context, collection string) ([]byte, error) {
	payload, ok := f.snapshots[collection]
	if !ok {
		return nil, store.ErrLocalSnapshotNotFound
	}
	return payload, nil
}

func (f *fakeLocalState) ClearSnapshots(_ context.Context) error {
	f.snapshots = make(map[string][]byte)
	return nil
}

func newTestSession(t *testing.T) (*mock.MockServerGateway, *fakeLocalState, SessionService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockServerGateway(ctrl)
	state := newFakeLocalState()
	return gateway, state, NewSessionService(gateway, state, logger.Nop())
}

func TestSessionLogin_Success(t *testing.T) {
	gateway, state, session := newTestSession(t)
	creds := models.Credentials{Username: "alice", Password: "pw"}

	gomock.InOrder(
		gateway.EXPECT().Login(gomock.Any(), creds).Return("tok-1", nil),
		// the gateway learns the token before any authenticated call goes out
		gateway.EXPECT().SetToken("tok-1"),
		gateway.EXPECT().Me(gomock.Any()).Return(models.Identity{ID: 7, Username: "alice"}, nil),
	)

	identity, err := session.Login(context.Background(), creds)

	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, "tok-1", session.Token())
	assert.True(t, state.hasSession)
	assert.Equal(t, "tok-1", state.session.Token)
}

func TestSessionLogin_InvalidCredentials(t *testing.T) {
	gateway, state, session := newTestSession(t)

	gateway.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return("", adapter.ErrUnauthorized)

	_, err := session.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, session.Token())
	assert.False(t, state.hasSession)
}

func TestSessionLogin_ServerUnavailable(t *testing.T) {
	gateway, _, session := newTestSession(t)

	gateway.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return("", adapter.ErrNetwork)

	_, err := session.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestSessionLogin_IdentityResolutionFailureDropsToken(t *testing.T) {
	gateway, state, session := newTestSession(t)

	gomock.InOrder(
		gateway.EXPECT().Login(gomock.Any(), gomock.Any()).Return("tok-1", nil),
		gateway.EXPECT().SetToken("tok-1"),
		gateway.EXPECT().Me(gomock.Any()).Return(models.Identity{}, adapter.ErrNetwork),
		// the half-established session is rolled back on the gateway too
		gateway.EXPECT().SetToken(""),
	)

	_, err := session.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.Empty(t, session.Token())
	assert.False(t, state.hasSession)
}

func TestSessionRegister_Success(t *testing.T) {
	gateway, _, session := newTestSession(t)
	creds := models.Credentials{Username: "bob", Password: "pw"}

	gomock.InOrder(
		gateway.EXPECT().Register(gomock.Any(), creds).Return("tok-2", nil),
		gateway.EXPECT().SetToken("tok-2"),
		gateway.EXPECT().Me(gomock.Any()).Return(models.Identity{ID: 8, Username: "bob"}, nil),
	)

	identity, err := session.Register(context.Background(), creds)

	require.NoError(t, err)
	assert.Equal(t, int64(8), identity.ID)
	assert.Equal(t, "tok-2", session.Token())
}

func TestSessionLogout_ClearsLocallyEvenWhenPersistenceFails(t *testing.T) {
	gateway, state, session := newTestSession(t)

	gomock.InOrder(
		gateway.EXPECT().Login(gomock.Any(), gomock.Any()).Return("tok-1", nil),
		gateway.EXPECT().SetToken("tok-1"),
		gateway.EXPECT().Me(gomock.Any()).Return(models.Identity{ID: 7, Username: "alice"}, nil),
		gateway.EXPECT().SetToken(""),
	)

	_, err := session.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	state.clearErr = errors.New("disk full")
	err = session.Logout(context.Background())

	require.Error(t, err)
	assert.Empty(t, session.Token())

	_, err = session.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionCurrentUser_CachedUntilTokenChanges(t *testing.T) {
	gateway, _, session := newTestSession(t)

	gomock.InOrder(
		gateway.EXPECT().Login(gomock.Any(), gomock.Any()).Return("tok-1", nil),
		gateway.EXPECT().SetToken("tok-1"),
		gateway.EXPECT().Me(gomock.Any()).Return(models.Identity{ID: 7, Username: "alice"}, nil).Times(1),
	)

	_, err := session.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	// both calls answered from the cached identity, no further /me requests
	first, err := session.CurrentUser(context.Background())
	require.NoError(t, err)
	second, err := session.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSessionCurrentUser_NotLoggedIn(t *testing.T) {
	_, _, session := newTestSession(t)

	_, err := session.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionInvalidate_DropsTokenAndIdentity(t *testing.T) {
	gateway, state, session := newTestSession(t)

	gomock.InOrder(
		gateway.EXPECT().Login(gomock.Any(), gomock.Any()).Return("tok-1", nil),
		gateway.EXPECT().SetToken("tok-1"),
		gateway.EXPECT().Me(gomock.Any()).Return(models.Identity{ID: 7, Username: "alice"}, nil),
		gateway.EXPECT().SetToken(""),
	)

	_, err := session.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	session.Invalidate()

	assert.Empty(t, session.Token())
	assert.False(t, state.hasSession)
}

func TestSessionRestore_NotifiesListeners(t *testing.T) {
	gateway, state, session := newTestSession(t)

	state.hasSession = true
	state.session = models.LocalSession{Token: "tok-9", UserID: 7, Username: "alice"}

	gateway.EXPECT().SetToken("tok-9")

	require.NoError(t, session.Restore(context.Background()))
	assert.Equal(t, "tok-9", session.Token())

	// identity came from the persisted session, no /me round-trip
	identity, err := session.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
}

func TestSessionRestore_NothingPersisted(t *testing.T) {
	_, _, session := newTestSession(t)

	require.NoError(t, session.Restore(context.Background()))
	assert.Empty(t, session.Token())
}

func TestSessionSubscribe_SeesCurrentTokenImmediately(t *testing.T) {
	gateway, _, session := newTestSession(t)

	gomock.InOrder(
		gateway.EXPECT().Login(gomock.Any(), gomock.Any()).Return("tok-1", nil),
		gateway.EXPECT().SetToken("tok-1"),
		gateway.EXPECT().Me(gomock.Any()).Return(models.Identity{ID: 7, Username: "alice"}, nil),
	)

	_, err := session.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	var seen []string
	session.Subscribe(func(token string) { seen = append(seen, token) })

	assert.Equal(t, []string{"tok-1"}, seen)
}
