package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/jpmattos/kiosk-totem/internal/core/ports"
)

// GenerateSuggestion asks the external collaborator for one short upsell
// line. The frontend sends only the minimal context; history and catalog
// are resolved server-side.
func (h *Handler) GenerateSuggestion(w http.ResponseWriter, r *http.Request) {
	var req SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	cart := make([]string, len(req.CartItems))
	for i, item := range req.CartItems {
		cart[i] = item.Name
	}

	text, err := h.suggester.Suggest(r.Context(), ports.SuggestRequest{
		CustomerID:  req.CustomerID,
		CartItems:   cart,
		Temperature: req.Temperature,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SuggestionResponse{Suggestion: text})
}
