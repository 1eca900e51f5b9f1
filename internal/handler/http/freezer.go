package http

import (
	"encoding/json"
	"net/http"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/utils"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

func (h *Handler) listFreezerItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.FreezerService.ListFreezerItems(r.Context())
	if err != nil {
		respondError(w, r, err, "listing freezer items failed")
		return
	}
	if items == nil {
		items = []models.FreezerItem{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getFreezerItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid freezer item id", http.StatusBadRequest)
		return
	}

	item, err := h.services.FreezerService.GetFreezerItem(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "getting freezer item failed")
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) createFreezerItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var item models.FreezerItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.FreezerService.CreateFreezerItem(r.Context(), item)
	if err != nil {
		respondError(w, r, err, "creating freezer item failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateFreezerItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid freezer item id", http.StatusBadRequest)
		return
	}

	var item models.FreezerItem
	if err = json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	item.ID = id

	updated, err := h.services.FreezerService.UpdateFreezerItem(r.Context(), item)
	if err != nil {
		respondError(w, r, err, "updating freezer item failed")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteFreezerItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid freezer item id", http.StatusBadRequest)
		return
	}

	if err = h.services.FreezerService.DeleteFreezerItem(r.Context(), id); err != nil {
		respondError(w, r, err, "deleting freezer item failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
