package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/savrasovpm/go-pantry-keeper/internal/service"
	"github.com/savrasovpm/go-pantry-keeper/internal/store"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

func TestListRecipes_Public(t *testing.T) {
	m, router := newTestRouter(t)

	m.recipes.EXPECT().
		ListRecipes(gomock.Any()).
		Return([]models.Recipe{{ID: 1, Name: "Pancakes", CategoryID: 1}}, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/recipes", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	recipes := decodeBody[[]models.Recipe](t, rec)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Pancakes", recipes[0].Name)
}

func TestListRecipes_EmptyIsJSONArray(t *testing.T) {
	m, router := newTestRouter(t)

	m.recipes.EXPECT().ListRecipes(gomock.Any()).Return(nil, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/recipes", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetRecipe_NotFound(t *testing.T) {
	m, router := newTestRouter(t)

	m.recipes.EXPECT().
		GetRecipe(gomock.Any(), int64(99)).
		Return(models.Recipe{}, store.ErrRecipeNotFound)

	rec := doJSON(t, router, http.MethodGet, "/api/recipes/99", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRecipe_BadID(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/recipes/oops", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchRecipes_PassesQuery(t *testing.T) {
	m, router := newTestRouter(t)

	m.recipes.EXPECT().
		SearchRecipes(gomock.Any(), "pan").
		Return([]models.Recipe{{ID: 1, Name: "Pancakes", CategoryID: 1}}, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/recipes/search?query=pan", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	recipes := decodeBody[[]models.Recipe](t, rec)
	assert.Len(t, recipes, 1)
}

func TestCreateRecipe_RequiresToken(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/recipes", "", models.Recipe{Name: "Pancakes", CategoryID: 1})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateRecipe_Success(t *testing.T) {
	m, router := newTestRouter(t)
	recipe := models.Recipe{Name: "Pancakes", Ingredients: []string{"flour", "milk"}, CategoryID: 1}

	m.expectAuthed()
	m.recipes.EXPECT().
		CreateRecipe(gomock.Any(), recipe).
		DoAndReturn(func(_ any, r models.Recipe) (models.Recipe, error) {
			r.ID = 42
			return r, nil
		})

	rec := doJSON(t, router, http.MethodPost, "/api/recipes", "valid-token", recipe)

	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Recipe](t, rec)
	assert.Equal(t, int64(42), created.ID)
}

func TestCreateRecipe_ValidationFailure(t *testing.T) {
	m, router := newTestRouter(t)

	m.expectAuthed()
	m.recipes.EXPECT().
		CreateRecipe(gomock.Any(), gomock.Any()).
		Return(models.Recipe{}, service.ErrValidationMissingCategory)

	rec := doJSON(t, router, http.MethodPost, "/api/recipes", "valid-token", models.Recipe{Name: "Pancakes"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRecipe_IDComesFromPath(t *testing.T) {
	m, router := newTestRouter(t)

	m.expectAuthed()
	m.recipes.EXPECT().
		UpdateRecipe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, r models.Recipe) (models.Recipe, error) {
			assert.Equal(t, int64(5), r.ID)
			return r, nil
		})

	rec := doJSON(t, router, http.MethodPut, "/api/recipes/5", "valid-token", models.Recipe{ID: 999, Name: "Pancakes", CategoryID: 1})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteRecipe_NoContent(t *testing.T) {
	m, router := newTestRouter(t)

	m.expectAuthed()
	m.recipes.EXPECT().DeleteRecipe(gomock.Any(), int64(5)).Return(nil)

	rec := doJSON(t, router, http.MethodDelete, "/api/recipes/5", "valid-token", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateFreezerItem_Success(t *testing.T) {
	m, router := newTestRouter(t)
	item := models.FreezerItem{Name: "Dumplings", Quantity: 3, CategoryID: 2}

	m.expectAuthed()
	m.freezer.EXPECT().
		CreateFreezerItem(gomock.Any(), item).
		Return(models.FreezerItem{ID: 9, Name: "Dumplings", Quantity: 3, CategoryID: 2, CategoryName: "Frozen"}, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/freezer-items", "valid-token", item)

	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.FreezerItem](t, rec)
	assert.Equal(t, "Frozen", created.CategoryName)
}

func TestDeleteFreezerItem_NotFound(t *testing.T) {
	m, router := newTestRouter(t)

	m.expectAuthed()
	m.freezer.EXPECT().
		DeleteFreezerItem(gomock.Any(), int64(77)).
		Return(store.ErrFreezerItemNotFound)

	rec := doJSON(t, router, http.MethodDelete, "/api/freezer-items/77", "valid-token", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
