// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Savrasov

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/savrasovpm/go-pantry-keeper/internal/config"
	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGateway builds an httpServerGateway pointed at the test server.
func newTestGateway(t *testing.T, serverURL string) *httpServerGateway {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	g, err := NewHTTPServerGateway(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return g.(*httpServerGateway)
}

// ── NewHTTPServerGateway ────────────────────────────────────────────────────

func TestNewHTTPServerGateway_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerGateway(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

func TestNewHTTPServerGateway_SchemeIsOptional(t *testing.T) {
	g, err := NewHTTPServerGateway(config.ClientAdapter{HTTPAddress: "localhost:8080"}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, g)
}

func TestNormalizeBaseURL_StripsTrailingSlash(t *testing.T) {
	got, err := normalizeBaseURL("http://localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds.Username)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.TokenResponse{Token: "tok-123"})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	token, err := g.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	// the gateway does not store the token on its own
	assert.Empty(t, g.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid login/password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegister_EmptyTokenBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Register(context.Background(), models.Credentials{Username: "bob", Password: "pw"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty token")
}

func TestMe_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Identity{ID: 7, Username: "alice"})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	g.SetToken("tok-123")

	identity, err := g.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), identity.ID)
	assert.Equal(t, "alice", identity.Username)
}

// ── recipes ─────────────────────────────────────────────────────────────────

func TestListRecipes_Success(t *testing.T) {
	recipes := []models.Recipe{
		{ID: 1, Name: "Pancakes", Ingredients: []string{"flour", "milk"}, CategoryID: 1},
		{ID: 2, Name: "Salad", Ingredients: []string{"lettuce"}, CategoryID: 2},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/recipes", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(recipes)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.ListRecipes(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Pancakes", got[0].Name)
	assert.Equal(t, []string{"flour", "milk"}, got[0].Ingredients)
}

func TestCreateRecipe_ReturnsServerRepresentation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var recipe models.Recipe
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recipe))
		recipe.ID = 42 // server assigns the id

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(recipe)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	g.SetToken("tok")

	created, err := g.CreateRecipe(context.Background(), models.Recipe{Name: "Stew", CategoryID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "Stew", created.Name)
}

func TestUpdateRecipe_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "recipe not found", http.StatusNotFound)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	g.SetToken("tok")

	_, err := g.UpdateRecipe(context.Background(), 99, models.Recipe{Name: "Gone"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchRecipes_PassesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recipes/search", r.URL.Path)
		assert.Equal(t, "pan", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Recipe{{ID: 1, Name: "Pancakes"}})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.SearchRecipes(context.Background(), "pan")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pancakes", got[0].Name)
}

// ── freezer items ───────────────────────────────────────────────────────────

func TestDeleteFreezerItem_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	g.SetToken("tok")

	err := g.DeleteFreezerItem(context.Background(), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
}

func TestListFreezerItems_CarriesCategoryName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/freezer-items", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.FreezerItem{
			{ID: 1, Name: "Peas", Quantity: 2, CategoryID: 3, CategoryName: "Vegetables"},
		})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.ListFreezerItems(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Vegetables", got[0].CategoryName)
}

// ── transport failures ──────────────────────────────────────────────────────

func TestListCategories_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // close immediately so the request fails at the transport level

	g := newTestGateway(t, srv.URL)
	_, err := g.ListCategories(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestDeleteCategory_ConflictMapsToValidation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "category is still referenced", http.StatusConflict)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	g.SetToken("tok")

	err := g.DeleteCategory(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetToken_ConcurrentWithToken(t *testing.T) {
	g := newTestGateway(t, "http://localhost:8080")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				g.SetToken(fmt.Sprintf("token-%d-%d", n, j))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = g.Token()
			}
		}()
	}
	wg.Wait()

	assert.NotEmpty(t, g.Token())
}
