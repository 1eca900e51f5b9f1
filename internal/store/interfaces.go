package store

import (
	"context"

	"github.com/savrasovpm/go-pantry-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository handles user account persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// RecipeRepository handles recipe persistence and search.
type RecipeRepository interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (models.Recipe, error)
	SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error
}

// FreezerRepository handles freezer inventory persistence. List and Get
// return items with the owning category's name joined in.
type FreezerRepository interface {
	ListFreezerItems(ctx context.Context) ([]models.FreezerItem, error)
	GetFreezerItem(ctx context.Context, id int64) (models.FreezerItem, error)
	CreateFreezerItem(ctx context.Context, item models.FreezerItem) (models.FreezerItem, error)
	UpdateFreezerItem(ctx context.Context, item models.FreezerItem) (models.FreezerItem, error)
	DeleteFreezerItem(ctx context.Context, id int64) error
}

// CategoryRepository handles category persistence.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
