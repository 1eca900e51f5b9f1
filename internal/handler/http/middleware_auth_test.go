package http

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/savrasovpm/go-pantry-keeper/internal/service"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), ErrEmptyAuthorizationHeader.Error()))
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	m, router := newTestRouter(t)

	m.auth.EXPECT().
		ParseToken(gomock.Any(), "stale").
		Return(models.Token{}, service.ErrTokenIsExpired)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", "stale", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), service.ErrTokenIsExpired.Error()))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	m, router := newTestRouter(t)

	m.auth.EXPECT().
		ParseToken(gomock.Any(), "garbage").
		Return(models.Token{}, errors.New("token contains an invalid number of segments"))

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", "garbage", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc", wantToken: "abc"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token part", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
