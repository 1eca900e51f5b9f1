package http

import (
	"encoding/json"
	"net/http"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/utils"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.ListCategories(r.Context())
	if err != nil {
		respondError(w, r, err, "listing categories failed")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CategoryService.CreateCategory(r.Context(), category)
	if err != nil {
		respondError(w, r, err, "creating category failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// deleteCategory refuses to remove a category that still has recipes or
// freezer items attached; the storage layer reports that as
// [store.ErrCategoryInUse], which maps to 409.
func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid category id", http.StatusBadRequest)
		return
	}

	if err = h.services.CategoryService.DeleteCategory(r.Context(), id); err != nil {
		respondError(w, r, err, "deleting category failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
