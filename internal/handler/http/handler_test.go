package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/mock"
	"github.com/savrasovpm/go-pantry-keeper/internal/service"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

const testVersion = "1.2.3"

type serviceMocks struct {
	auth       *mock.MockAuthService
	recipes    *mock.MockRecipeService
	freezer    *mock.MockFreezerService
	categories *mock.MockCategoryService
}

func newTestRouter(t *testing.T) (*serviceMocks, *chi.Mux) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		auth:       mock.NewMockAuthService(ctrl),
		recipes:    mock.NewMockRecipeService(ctrl),
		freezer:    mock.NewMockFreezerService(ctrl),
		categories: mock.NewMockCategoryService(ctrl),
	}

	services := &service.Services{
		AuthService:     m.auth,
		RecipeService:   m.recipes,
		FreezerService:  m.freezer,
		CategoryService: m.categories,
	}

	return m, NewHandler(services, testVersion, logger.Nop()).Init()
}

// expectAuthed arranges a successful bearer-token check for user 7.
func (m *serviceMocks) expectAuthed() {
	m.auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: 7}, nil)
}

func doJSON(t *testing.T, router *chi.Mux, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGetServerVersion(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/version", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testVersion, rec.Body.String())
}

func TestTraceIDHeader_SetOnResponse(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/version", "", nil)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestTraceIDHeader_Propagated(t *testing.T) {
	_, router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}
