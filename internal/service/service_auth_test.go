// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Savrasov

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/savrasovpm/go-pantry-keeper/internal/config"
	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/mock"
	"github.com/savrasovpm/go-pantry-keeper/internal/store"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

func newTestAuth(t *testing.T, cfg config.App) (*mock.MockUserRepository, AuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return repo, NewAuthService(repo, cfg, logger.Nop())
}

func testAuthConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "pantry-keeper",
		TokenDuration: time.Hour,
	}
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	repo, auth := newTestAuth(t, testAuthConfig())

	var stored models.User
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 7
			return user, nil
		})

	registered, err := auth.RegisterUser(context.Background(), models.Credentials{
		Username: "  alice  ",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), registered.UserID)
	assert.Equal(t, "alice", stored.Username)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestRegisterUser_EmptyCredentials(t *testing.T) {
	tests := []struct {
		name  string
		creds models.Credentials
	}{
		{name: "empty username", creds: models.Credentials{Username: "   ", Password: "pw"}},
		{name: "empty password", creds: models.Credentials{Username: "alice", Password: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, auth := newTestAuth(t, testAuthConfig())

			_, err := auth.RegisterUser(context.Background(), tt.creds)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	repo, auth := newTestAuth(t, testAuthConfig())

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := auth.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	repo, auth := newTestAuth(t, testAuthConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{UserID: 7, Username: "alice", PasswordHash: string(hash)}, nil)

	user, err := auth.Login(context.Background(), models.Credentials{Username: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo, auth := newTestAuth(t, testAuthConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{UserID: 7, Username: "alice", PasswordHash: string(hash)}, nil)

	_, err = auth.Login(context.Background(), models.Credentials{Username: "alice", Password: "nope"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo, auth := newTestAuth(t, testAuthConfig())

	repo.EXPECT().
		FindUserByUsername(gomock.Any(), "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := auth.Login(context.Background(), models.Credentials{Username: "ghost", Password: "pw"})

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	_, auth := newTestAuth(t, testAuthConfig())

	token, err := auth.CreateToken(context.Background(), models.User{UserID: 7, Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := auth.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
}

func TestParseToken_Expired(t *testing.T) {
	cfg := testAuthConfig()
	cfg.TokenDuration = -time.Minute
	_, auth := newTestAuth(t, cfg)

	token, err := auth.CreateToken(context.Background(), models.User{UserID: 7})
	require.NoError(t, err)

	_, err = auth.ParseToken(context.Background(), token.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	cfg := testAuthConfig()
	cfg.TokenIssuer = "someone-else"
	_, other := newTestAuth(t, cfg)
	_, auth := newTestAuth(t, testAuthConfig())

	token, err := other.CreateToken(context.Background(), models.User{UserID: 7})
	require.NoError(t, err)

	_, err = auth.ParseToken(context.Background(), token.SignedString)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenIsExpired)
}

func TestMe_Success(t *testing.T) {
	repo, auth := newTestAuth(t, testAuthConfig())

	repo.EXPECT().
		FindUserByID(gomock.Any(), int64(7)).
		Return(models.User{UserID: 7, Username: "alice"}, nil)

	identity, err := auth.Me(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, models.Identity{ID: 7, Username: "alice"}, identity)
}

func TestMe_NotFound(t *testing.T) {
	repo, auth := newTestAuth(t, testAuthConfig())

	repo.EXPECT().
		FindUserByID(gomock.Any(), int64(404)).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := auth.Me(context.Background(), 404)

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
