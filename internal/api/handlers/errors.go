package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dom/wardle/internal/catalog"
	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/repository"
	"github.com/rs/zerolog/hlog"
)

// writeServiceError maps service errors to a status code and a plain text
// body. Unexpected errors are logged under op.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownGuess),
		errors.Is(err, domain.ErrEmptyGuess),
		errors.Is(err, domain.ErrInvalidMode):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrUnknownCatalog),
		errors.Is(err, repository.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrModeNotGuessable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrCatalogUnavailable):
		http.Error(w, "Catalog unavailable, try again later", http.StatusServiceUnavailable)
	case errors.Is(err, catalog.ErrRemoteDisabled):
		http.Error(w, "Remote catalog is disabled", http.StatusServiceUnavailable)
	default:
		hlog.FromRequest(r).Error().Err(err).Str("op", op).Msg("request failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
