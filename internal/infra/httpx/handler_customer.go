package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jpmattos/kiosk-totem/internal/core/ports"
)

// CheckCustomer looks a customer up by CPF. Absence is a normal answer, not
// an error: the totem uses it to decide between login and registration.
func (h *Handler) CheckCustomer(w http.ResponseWriter, r *http.Request) {
	var req CheckCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.CPF == "" {
		writeError(w, http.StatusBadRequest, "validation_error", "cpf is required")
		return
	}

	customer, err := h.customers.FindByTaxID(r.Context(), req.CPF)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CheckCustomerResponse{
		Exists:   customer != nil,
		Customer: customer,
	})
}

func (h *Handler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req RegisterCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	customer, err := h.customers.Register(r.Context(), ports.RegisterCustomerInput{
		CPF:   req.CPF,
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "customer registered", "customer_id", customer.ID)
	writeJSON(w, http.StatusCreated, customer)
}

func (h *Handler) CustomerHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.customers.History(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
