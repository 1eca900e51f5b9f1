package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/mock"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

func newTestRecipes(t *testing.T) (*mock.MockRecipeRepository, RecipeService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRecipeRepository(ctrl)
	return repo, NewRecipeService(repo, logger.Nop())
}

func TestSearchRecipes_EmptyQueryListsEverything(t *testing.T) {
	repo, recipes := newTestRecipes(t)

	all := []models.Recipe{{ID: 1, Name: "Pancakes", CategoryID: 1}}
	repo.EXPECT().ListRecipes(gomock.Any()).Return(all, nil)

	found, err := recipes.SearchRecipes(context.Background(), "   ")

	require.NoError(t, err)
	assert.Equal(t, all, found)
}

func TestSearchRecipes_DelegatesTrimmedQuery(t *testing.T) {
	repo, recipes := newTestRecipes(t)

	repo.EXPECT().
		SearchRecipes(gomock.Any(), "pan").
		Return([]models.Recipe{{ID: 1, Name: "Pancakes", CategoryID: 1}}, nil)

	found, err := recipes.SearchRecipes(context.Background(), "  pan  ")

	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestCreateRecipe_ValidationSkipsRepository(t *testing.T) {
	tests := []struct {
		name    string
		recipe  models.Recipe
		wantErr error
	}{
		{name: "empty name", recipe: models.Recipe{Name: "  ", CategoryID: 1}, wantErr: ErrValidationEmptyName},
		{name: "missing category", recipe: models.Recipe{Name: "Pancakes"}, wantErr: ErrValidationMissingCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, recipes := newTestRecipes(t)

			_, err := recipes.CreateRecipe(context.Background(), tt.recipe)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateRecipe_PassesThrough(t *testing.T) {
	repo, recipes := newTestRecipes(t)

	recipe := models.Recipe{ID: 3, Name: "Pancakes", Ingredients: []string{"flour"}, CategoryID: 1}
	repo.EXPECT().UpdateRecipe(gomock.Any(), recipe).Return(recipe, nil)

	updated, err := recipes.UpdateRecipe(context.Background(), recipe)

	require.NoError(t, err)
	assert.Equal(t, recipe, updated)
}

func TestCreateFreezerItem_Validation(t *testing.T) {
	tests := []struct {
		name    string
		item    models.FreezerItem
		wantErr error
	}{
		{name: "empty name", item: models.FreezerItem{Name: " ", Quantity: 1, CategoryID: 1}, wantErr: ErrValidationEmptyName},
		{name: "zero quantity", item: models.FreezerItem{Name: "Dumplings", Quantity: 0, CategoryID: 1}, wantErr: ErrValidationBadQuantity},
		{name: "missing category", item: models.FreezerItem{Name: "Dumplings", Quantity: 2}, wantErr: ErrValidationMissingCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			freezer := NewFreezerService(mock.NewMockFreezerRepository(ctrl), logger.Nop())

			_, err := freezer.CreateFreezerItem(context.Background(), tt.item)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateCategory_TrimsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCategoryRepository(ctrl)
	categories := NewCategoryService(repo, logger.Nop())

	repo.EXPECT().
		CreateCategory(gomock.Any(), models.Category{Name: "Soups"}).
		Return(models.Category{ID: 2, Name: "Soups"}, nil)

	created, err := categories.CreateCategory(context.Background(), models.Category{Name: "  Soups  "})

	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	categories := NewCategoryService(mock.NewMockCategoryRepository(ctrl), logger.Nop())

	_, err := categories.CreateCategory(context.Background(), models.Category{Name: "   "})

	assert.ErrorIs(t, err, ErrValidationEmptyName)
}
