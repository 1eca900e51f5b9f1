// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Savrasov

// Package adapter provides the transport layer used by the client to talk to
// the pantry-keeper server.
//
// The primary abstraction is [ServerGateway], which decouples the caching and
// session layers from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerGateway]) built on resty.
//
// The gateway is deliberately thin: it attaches the bearer token when one is
// set, serialises payloads, and maps HTTP status codes to the sentinel errors
// defined in errors.go ([ErrUnauthorized] for 401/403, [ErrNotFound] for 404,
// and so on) so that callers can use [errors.Is] for transport-agnostic error
// handling. It performs no caching, no retries, and no business validation —
// those are the caching layer's responsibility.
package adapter

import (
	"context"

	"github.com/savrasovpm/go-pantry-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_gateway_mock.go -package=mock

// ServerGateway defines transport-agnostic communication with the
// pantry-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerGateway interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. An empty string clears the token.
	SetToken(token string)

	// Token returns the bearer token currently stored in the gateway, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account from the provided credentials and
	// returns the bearer token issued by the server. The token is NOT stored
	// in the gateway; the session layer owns that decision.
	Register(ctx context.Context, creds models.Credentials) (string, error)

	// Login authenticates with the provided credentials and returns the
	// bearer token issued by the server.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Me resolves the identity for the currently stored bearer token.
	Me(ctx context.Context) (models.Identity, error)

	// ListRecipes fetches the full recipe collection.
	ListRecipes(ctx context.Context) ([]models.Recipe, error)

	// GetRecipe fetches a single recipe by its identifier.
	GetRecipe(ctx context.Context, id int64) (models.Recipe, error)

	// SearchRecipes fetches recipes whose name matches the query server-side.
	SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error)

	// CreateRecipe persists a new recipe and returns the server's canonical
	// representation, including the assigned identifier.
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)

	// UpdateRecipe replaces the recipe identified by id and returns the
	// server's canonical representation of the merged result.
	UpdateRecipe(ctx context.Context, id int64, recipe models.Recipe) (models.Recipe, error)

	// DeleteRecipe removes the recipe identified by id.
	DeleteRecipe(ctx context.Context, id int64) error

	// ListFreezerItems fetches the freezer inventory, with the category
	// display name joined in by the server.
	ListFreezerItems(ctx context.Context) ([]models.FreezerItem, error)

	// CreateFreezerItem persists a new freezer item and returns the server's
	// canonical representation.
	CreateFreezerItem(ctx context.Context, item models.FreezerItem) (models.FreezerItem, error)

	// UpdateFreezerItem replaces the freezer item identified by id and
	// returns the server's canonical representation, including the joined
	// category name.
	UpdateFreezerItem(ctx context.Context, id int64, item models.FreezerItem) (models.FreezerItem, error)

	// DeleteFreezerItem removes the freezer item identified by id.
	DeleteFreezerItem(ctx context.Context, id int64) error

	// ListCategories fetches all categories.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// CreateCategory persists a new category and returns the server's
	// canonical representation.
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)

	// DeleteCategory removes the category identified by id. Returns
	// [ErrValidation] (wrapped) when the category is still referenced by
	// records.
	DeleteCategory(ctx context.Context, id int64) error
}
