package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jpmattos/kiosk-totem/internal/core/ports"
)

// PlaceOrder creates the order in the active queue and in the customer's
// permanent history.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	order, err := h.orders.Place(r.Context(), ports.PlaceOrderInput{
		CustomerID: req.CustomerID,
		Items:      req.Items,
		Total:      req.Total,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "order placed", "order_id", order.ID, "customer_id", order.CustomerID, "total", order.Total)
	writeJSON(w, http.StatusCreated, PlaceOrderResponse{OrderID: order.ID})
}

// ListActiveOrders returns the staff queue, oldest first.
func (h *Handler) ListActiveOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListActive(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// FinalizeOrder removes an order from the active queue; the history copy
// stays forever.
func (h *Handler) FinalizeOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if err := h.orders.Finalize(r.Context(), orderID); err != nil {
		writeDomainError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "order finalized", "order_id", orderID)
	w.WriteHeader(http.StatusNoContent)
}
