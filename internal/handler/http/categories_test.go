package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/savrasovpm/go-pantry-keeper/internal/store"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

func TestListCategories_Public(t *testing.T) {
	m, router := newTestRouter(t)

	m.categories.EXPECT().
		ListCategories(gomock.Any()).
		Return([]models.Category{{ID: 1, Name: "Desserts"}, {ID: 2, Name: "Soups"}}, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/categories", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	categories := decodeBody[[]models.Category](t, rec)
	assert.Len(t, categories, 2)
}

func TestCreateCategory_Success(t *testing.T) {
	m, router := newTestRouter(t)

	m.expectAuthed()
	m.categories.EXPECT().
		CreateCategory(gomock.Any(), models.Category{Name: "Soups"}).
		Return(models.Category{ID: 2, Name: "Soups"}, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/categories", "valid-token", models.Category{Name: "Soups"})

	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Category](t, rec)
	assert.Equal(t, int64(2), created.ID)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	m, router := newTestRouter(t)

	m.expectAuthed()
	m.categories.EXPECT().
		CreateCategory(gomock.Any(), gomock.Any()).
		Return(models.Category{}, store.ErrCategoryAlreadyExists)

	rec := doJSON(t, router, http.MethodPost, "/api/categories", "valid-token", models.Category{Name: "Soups"})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteCategory_StillReferenced(t *testing.T) {
	m, router := newTestRouter(t)

	m.expectAuthed()
	m.categories.EXPECT().
		DeleteCategory(gomock.Any(), int64(2)).
		Return(store.ErrCategoryInUse)

	rec := doJSON(t, router, http.MethodDelete, "/api/categories/2", "valid-token", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteCategory_NoContent(t *testing.T) {
	m, router := newTestRouter(t)

	m.expectAuthed()
	m.categories.EXPECT().DeleteCategory(gomock.Any(), int64(2)).Return(nil)

	rec := doJSON(t, router, http.MethodDelete, "/api/categories/2", "valid-token", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
