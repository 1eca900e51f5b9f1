package service

import (
	"context"

	"github.com/savrasovpm/go-pantry-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Me(ctx context.Context, userID int64) (models.Identity, error)
}

// RecipeService is the business layer over the recipe repository.
type RecipeService interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (models.Recipe, error)
	SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error
}

// FreezerService is the business layer over the freezer inventory repository.
type FreezerService interface {
	ListFreezerItems(ctx context.Context) ([]models.FreezerItem, error)
	GetFreezerItem(ctx context.Context, id int64) (models.FreezerItem, error)
	CreateFreezerItem(ctx context.Context, item models.FreezerItem) (models.FreezerItem, error)
	UpdateFreezerItem(ctx context.Context, item models.FreezerItem) (models.FreezerItem, error)
	DeleteFreezerItem(ctx context.Context, id int64) error
}

// CategoryService is the business layer over the category repository.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
