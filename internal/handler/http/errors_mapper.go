package http

import (
	"errors"
	"net/http"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/service"
	"github.com/savrasovpm/go-pantry-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrWrongPassword:             http.StatusUnauthorized,
	service.ErrTokenIsExpired:            http.StatusUnauthorized,
	service.ErrValidationEmptyName:       http.StatusBadRequest,
	service.ErrValidationBadQuantity:     http.StatusBadRequest,
	service.ErrValidationMissingCategory: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrRecipeNotFound:        http.StatusNotFound,
	store.ErrFreezerItemNotFound:   http.StatusNotFound,
	store.ErrCategoryNotFound:      http.StatusNotFound,
	store.ErrCategoryAlreadyExists: http.StatusConflict,
	store.ErrCategoryInUse:         http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError translates a service or storage error into the HTTP status it
// maps to and writes a plain-text response. 5xx causes are not leaked to the
// client.
func respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	log.Err(err).Msg(msg)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}

	http.Error(w, err.Error(), status)
}
