package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jpmattos/kiosk-totem/internal/core/domain/entity"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}

// writeDomainError maps the error taxonomy to HTTP: validation → 400,
// not-found → 404, duplicate key → 409, collaborator failure → 500 with a
// generic message, anything else → 500. Storage details are logged, never
// leaked to the client.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *entity.ValidationError

	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, "validation_error", verr.Message)
	case errors.Is(err, entity.ErrProductNotFound),
		errors.Is(err, entity.ErrCustomerNotFound),
		errors.Is(err, entity.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, entity.ErrDuplicateCPF):
		writeError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, entity.ErrSuggestionUnavailable):
		slog.ErrorContext(r.Context(), "suggestion collaborator failed", "error", err)
		writeError(w, http.StatusInternalServerError, "collaborator_error", "could not reach the suggestion assistant")
	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
