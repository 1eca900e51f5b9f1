package service

import (
	"github.com/savrasovpm/go-pantry-keeper/internal/config"
	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/store"
)

// Services groups the server-side business services.
type Services struct {
	AuthService     AuthService
	RecipeService   RecipeService
	FreezerService  FreezerService
	CategoryService CategoryService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		RecipeService:   NewRecipeService(storages.RecipeRepository, logger),
		FreezerService:  NewFreezerService(storages.FreezerRepository, logger),
		CategoryService: NewCategoryService(storages.CategoryRepository, logger),
	}
}
