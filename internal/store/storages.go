package store

import (
	"context"
	"fmt"

	"github.com/savrasovpm/go-pantry-keeper/internal/config"
	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
)

// Storages groups the server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository     UserRepository
	RecipeRepository   RecipeRepository
	FreezerRepository  FreezerRepository
	CategoryRepository CategoryRepository
}

// NewStorages connects to PostgreSQL using cfg.DB.DSN, applies pending
// migrations and wires the repositories.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating storages...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		RecipeRepository:   NewRecipeRepository(db, logger),
		FreezerRepository:  NewFreezerRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
	}, nil
}
