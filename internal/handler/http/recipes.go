package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/utils"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

// parseIDParam extracts the {id} route parameter as an int64.
func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.services.RecipeService.ListRecipes(r.Context())
	if err != nil {
		respondError(w, r, err, "listing recipes failed")
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}

	recipe, err := h.services.RecipeService.GetRecipe(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "getting recipe failed")
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) searchRecipes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	recipes, err := h.services.RecipeService.SearchRecipes(r.Context(), query)
	if err != nil {
		respondError(w, r, err, "searching recipes failed")
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var recipe models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.RecipeService.CreateRecipe(r.Context(), recipe)
	if err != nil {
		respondError(w, r, err, "creating recipe failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}

	var recipe models.Recipe
	if err = json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	recipe.ID = id

	updated, err := h.services.RecipeService.UpdateRecipe(r.Context(), recipe)
	if err != nil {
		respondError(w, r, err, "updating recipe failed")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}

	if err = h.services.RecipeService.DeleteRecipe(r.Context(), id); err != nil {
		respondError(w, r, err, "deleting recipe failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
