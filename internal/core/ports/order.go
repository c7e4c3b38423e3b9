package ports

import (
	"context"

	"github.com/jpmattos/kiosk-totem/internal/core/domain/entity"
)

type PlaceOrderInput struct {
	CustomerID string
	Items      []entity.OrderItem
	Total      float64
}

type OrderQueue interface {
	// Place creates the order in both durable views: the active queue and
	// the customer's permanent history.
	Place(ctx context.Context, input PlaceOrderInput) (entity.Order, error)
	// ListActive returns queued orders oldest-first.
	ListActive(ctx context.Context) ([]entity.QueuedOrder, error)
	// Finalize removes an order from the active queue. The history copy is
	// never touched.
	Finalize(ctx context.Context, orderID string) error
}
