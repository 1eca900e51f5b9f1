package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/savrasovpm/go-pantry-keeper/internal/config"
	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/utils"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

type httpServerGateway struct {
	client *utils.HTTPClient

	// mu guards token: the session writes it from the UI flow while
	// background refreshers read it mid-request.
	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerGateway constructs an HTTP/REST implementation of
// [ServerGateway]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerGateway(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerGateway, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerGateway{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerGateway]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerGateway) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerGateway]. It returns the bearer token currently
// held by the gateway, or an empty string if none has been set.
func (h *httpServerGateway) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerGateway]. It POSTs the credentials to
// POST /api/auth/register and returns the token from the response body.
func (h *httpServerGateway) Register(ctx context.Context, creds models.Credentials) (string, error) {
	return h.requestToken(ctx, "/api/auth/register", creds)
}

// Login implements [ServerGateway]. It POSTs the credentials to
// POST /api/auth/login and returns the token from the response body.
func (h *httpServerGateway) Login(ctx context.Context, creds models.Credentials) (string, error) {
	return h.requestToken(ctx, "/api/auth/login", creds)
}

func (h *httpServerGateway) requestToken(ctx context.Context, path string, creds models.Credentials) (string, error) {
	var tr models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&tr).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if tr.Token == "" {
		return "", fmt.Errorf("empty token in %s response", path)
	}

	return tr.Token, nil
}

// Me implements [ServerGateway]. It GETs /api/auth/me using the stored
// bearer token and returns the decoded identity.
func (h *httpServerGateway) Me(ctx context.Context) (models.Identity, error) {
	var identity models.Identity

	resp, err := h.authedRequest(ctx).
		SetResult(&identity).
		Get("/api/auth/me")
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	return identity, nil
}

// ListRecipes implements [ServerGateway].
func (h *httpServerGateway) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	return listResource[models.Recipe](h, ctx, "/api/recipes")
}

// GetRecipe implements [ServerGateway].
func (h *httpServerGateway) GetRecipe(ctx context.Context, id int64) (models.Recipe, error) {
	var recipe models.Recipe

	resp, err := h.authedRequest(ctx).
		SetResult(&recipe).
		Get("/api/recipes/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// SearchRecipes implements [ServerGateway]. It GETs /api/recipes/search with
// the query as a URL parameter and decodes the matching recipes.
func (h *httpServerGateway) SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("query", query).
		Get("/api/recipes/search")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var recipes []models.Recipe
	if err = json.Unmarshal(resp.Body(), &recipes); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return recipes, nil
}

// CreateRecipe implements [ServerGateway].
func (h *httpServerGateway) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	return writeResource[models.Recipe](h, ctx, resty.MethodPost, "/api/recipes", recipe)
}

// UpdateRecipe implements [ServerGateway].
func (h *httpServerGateway) UpdateRecipe(ctx context.Context, id int64, recipe models.Recipe) (models.Recipe, error) {
	return writeResource[models.Recipe](h, ctx, resty.MethodPut, "/api/recipes/"+strconv.FormatInt(id, 10), recipe)
}

// DeleteRecipe implements [ServerGateway].
func (h *httpServerGateway) DeleteRecipe(ctx context.Context, id int64) error {
	return h.deleteResource(ctx, "/api/recipes/"+strconv.FormatInt(id, 10))
}

// ListFreezerItems implements [ServerGateway].
func (h *httpServerGateway) ListFreezerItems(ctx context.Context) ([]models.FreezerItem, error) {
	return listResource[models.FreezerItem](h, ctx, "/api/freezer-items")
}

// CreateFreezerItem implements [ServerGateway].
func (h *httpServerGateway) CreateFreezerItem(ctx context.Context, item models.FreezerItem) (models.FreezerItem, error) {
	return writeResource[models.FreezerItem](h, ctx, resty.MethodPost, "/api/freezer-items", item)
}

// UpdateFreezerItem implements [ServerGateway].
func (h *httpServerGateway) UpdateFreezerItem(ctx context.Context, id int64, item models.FreezerItem) (models.FreezerItem, error) {
	return writeResource[models.FreezerItem](h, ctx, resty.MethodPut, "/api/freezer-items/"+strconv.FormatInt(id, 10), item)
}

// DeleteFreezerItem implements [ServerGateway].
func (h *httpServerGateway) DeleteFreezerItem(ctx context.Context, id int64) error {
	return h.deleteResource(ctx, "/api/freezer-items/"+strconv.FormatInt(id, 10))
}

// ListCategories implements [ServerGateway].
func (h *httpServerGateway) ListCategories(ctx context.Context) ([]models.Category, error) {
	return listResource[models.Category](h, ctx, "/api/categories")
}

// CreateCategory implements [ServerGateway].
func (h *httpServerGateway) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	return writeResource[models.Category](h, ctx, resty.MethodPost, "/api/categories", category)
}

// DeleteCategory implements [ServerGateway].
func (h *httpServerGateway) DeleteCategory(ctx context.Context, id int64) error {
	return h.deleteResource(ctx, "/api/categories/"+strconv.FormatInt(id, 10))
}

func (h *httpServerGateway) deleteResource(ctx context.Context, path string) error {
	resp, err := h.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerGateway) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// listResource GETs path and decodes the response body as a JSON array of T.
func listResource[T any](h *httpServerGateway, ctx context.Context, path string) ([]T, error) {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []T
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}

	return items, nil
}

// writeResource POSTs or PUTs body to path and decodes the server's
// canonical representation from the response.
func writeResource[T any](h *httpServerGateway, ctx context.Context, method, path string, body T) (T, error) {
	var result T

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Execute(method, path)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}
