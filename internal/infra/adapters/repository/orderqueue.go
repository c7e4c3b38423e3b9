package repository

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jpmattos/kiosk-totem/internal/core/domain/entity"
	"github.com/jpmattos/kiosk-totem/internal/core/ports"
	"github.com/jpmattos/kiosk-totem/internal/orderlog"
	"github.com/jpmattos/kiosk-totem/internal/storage/jsonfile"
)

var _ ports.OrderQueue = (*OrderQueue)(nil)

// OrderQueue is the flat-file implementation of ports.OrderQueue, backed by
// pedidos.json. Placement also writes the customer's permanent history, the
// one cross-repository write in the system.
type OrderQueue struct {
	store     *jsonfile.Store[entity.QueuedOrder]
	customers ports.CustomerRepository
	events    orderlog.Repository // nil-safe: auditing skipped if nil
}

// NewOrderQueue wires the queue store with the customer repository it reads
// during placement. events may be nil, in which case lifecycle transitions
// are not persisted to the audit log.
func NewOrderQueue(store *jsonfile.Store[entity.QueuedOrder], customers ports.CustomerRepository, events orderlog.Repository) *OrderQueue {
	return &OrderQueue{store: store, customers: customers, events: events}
}

func (q *OrderQueue) Place(ctx context.Context, input ports.PlaceOrderInput) (entity.Order, error) {
	if input.CustomerID == "" || len(input.Items) == 0 || input.Total <= 0 {
		return entity.Order{}, entity.Validationf("items, total and usuarioId are required")
	}

	customer, err := q.customers.FindByID(ctx, input.CustomerID)
	if err != nil {
		return entity.Order{}, err
	}
	if customer == nil {
		return entity.Order{}, entity.ErrCustomerNotFound
	}

	order := entity.Order{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		Items:      input.Items,
		Total:      input.Total,
		Date:       time.Now().UTC(),
		Status:     entity.OrderStatusPending,
	}

	// First durable view: the active queue, with the denormalized display
	// name for the staff screen.
	err = q.store.Update(func(queued []entity.QueuedOrder) ([]entity.QueuedOrder, error) {
		return append(queued, entity.QueuedOrder{Order: order, CustomerName: customer.Name}), nil
	})
	if err != nil {
		return entity.Order{}, err
	}

	// Second durable view: the customer's permanent history. When it fails
	// the queue entry is compensated away so the two views never disagree;
	// the order id is the idempotency key of the whole flow.
	if err := q.customers.AppendHistory(ctx, customer.ID, order); err != nil {
		q.record(ctx, orderlog.NewEntry(ctx, order.ID, customer.ID, orderlog.StatusHistoryWriteFailed, order.Total, err.Error()))
		if compErr := q.remove(order.ID); compErr != nil {
			slog.ErrorContext(ctx, "CRITICAL: failed to compensate queue entry after history write failure",
				"order_id", order.ID,
				"history_error", err,
				"compensation_error", compErr,
			)
		}
		return entity.Order{}, err
	}

	q.record(ctx, orderlog.NewEntry(ctx, order.ID, customer.ID, orderlog.StatusPlaced, order.Total, ""))
	return order, nil
}

func (q *OrderQueue) ListActive(ctx context.Context) ([]entity.QueuedOrder, error) {
	queued, err := q.store.Read()
	if err != nil {
		return nil, err
	}
	// Oldest first: the staff screen works the queue as a FIFO.
	slices.SortFunc(queued, func(a, b entity.QueuedOrder) int {
		return a.Date.Compare(b.Date)
	})
	return queued, nil
}

func (q *OrderQueue) Finalize(ctx context.Context, orderID string) error {
	var finalized entity.QueuedOrder
	err := q.store.Update(func(queued []entity.QueuedOrder) ([]entity.QueuedOrder, error) {
		kept := queued[:0]
		found := false
		for _, o := range queued {
			if o.ID == orderID {
				finalized = o
				found = true
				continue
			}
			kept = append(kept, o)
		}
		if !found {
			return nil, entity.ErrOrderNotFound
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	q.record(ctx, orderlog.NewEntry(ctx, orderID, finalized.CustomerID, orderlog.StatusFinalized, finalized.Total, ""))
	return nil
}

// remove drops an order from the queue without recording a transition.
// Used only to compensate a failed dual write.
func (q *OrderQueue) remove(orderID string) error {
	return q.store.Update(func(queued []entity.QueuedOrder) ([]entity.QueuedOrder, error) {
		kept := queued[:0]
		for _, o := range queued {
			if o.ID != orderID {
				kept = append(kept, o)
			}
		}
		return kept, nil
	})
}

func (q *OrderQueue) record(ctx context.Context, entry *orderlog.Entry) {
	if q.events == nil {
		return
	}
	if err := q.events.Save(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to save order event", "order_id", entry.OrderID, "status", entry.Status, "error", err)
	}
}
