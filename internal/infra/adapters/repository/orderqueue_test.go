package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpmattos/kiosk-totem/internal/core/domain/entity"
	"github.com/jpmattos/kiosk-totem/internal/core/ports"
	"github.com/jpmattos/kiosk-totem/internal/orderlog"
	"github.com/jpmattos/kiosk-totem/internal/storage/jsonfile"
)

type memoryOrderLog struct {
	entries []orderlog.Entry
}

func (m *memoryOrderLog) Save(ctx context.Context, entry *orderlog.Entry) error {
	m.entries = append(m.entries, *entry)
	return nil
}

// failingCustomers wraps a real repository but fails every history write,
// simulating the second half of the dual write going wrong.
type failingCustomers struct {
	ports.CustomerRepository
}

func (f *failingCustomers) AppendHistory(ctx context.Context, customerID string, order entity.Order) error {
	return assert.AnError
}

func newQueueFixture(t *testing.T) (*OrderQueue, *Customers, *jsonfile.Store[entity.QueuedOrder], *memoryOrderLog) {
	t.Helper()
	dir := t.TempDir()
	customers := NewCustomers(jsonfile.NewStore[entity.Customer](filepath.Join(dir, "usuarios.json")))
	queueStore := jsonfile.NewStore[entity.QueuedOrder](filepath.Join(dir, "pedidos.json"))
	events := &memoryOrderLog{}
	return NewOrderQueue(queueStore, customers, events), customers, queueStore, events
}

func registerAna(t *testing.T, customers *Customers) entity.Customer {
	t.Helper()
	created, err := customers.Register(context.Background(), ports.RegisterCustomerInput{CPF: "111", Name: "Ana", Phone: "999"})
	require.NoError(t, err)
	return created
}

func pastelOrder(customerID string) ports.PlaceOrderInput {
	return ports.PlaceOrderInput{
		CustomerID: customerID,
		Items:      []entity.OrderItem{{ID: "p1", Name: "Pastel", Price: 10, Quantity: 2}},
		Total:      20,
	}
}

func TestPlaceWritesQueueAndHistory(t *testing.T) {
	queue, customers, _, events := newQueueFixture(t)
	ctx := context.Background()
	ana := registerAna(t, customers)

	order, err := queue.Place(ctx, pastelOrder(ana.ID))
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	active, err := queue.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, order.ID, active[0].ID)
	assert.Equal(t, "Ana", active[0].CustomerName)

	history, err := customers.History(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
	assert.Equal(t, 20.0, history[0].Total)

	require.Len(t, events.entries, 1)
	assert.Equal(t, orderlog.StatusPlaced, events.entries[0].Status)
	assert.Equal(t, order.ID, events.entries[0].OrderID)
}

func TestPlaceValidation(t *testing.T) {
	queue, customers, _, _ := newQueueFixture(t)
	ctx := context.Background()
	ana := registerAna(t, customers)

	cases := map[string]ports.PlaceOrderInput{
		"missing customer": {Items: pastelOrder(ana.ID).Items, Total: 20},
		"missing items":    {CustomerID: ana.ID, Total: 20},
		"missing total":    {CustomerID: ana.ID, Items: pastelOrder(ana.ID).Items},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := queue.Place(ctx, input)
			var verr *entity.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestPlaceUnknownCustomerLeavesBothStoresUnchanged(t *testing.T) {
	queue, customers, _, _ := newQueueFixture(t)
	ctx := context.Background()
	ana := registerAna(t, customers)

	_, err := queue.Place(ctx, pastelOrder("missing"))
	assert.ErrorIs(t, err, entity.ErrCustomerNotFound)

	active, err := queue.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	history, err := customers.History(ctx, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestPlaceCompensatesQueueWhenHistoryWriteFails(t *testing.T) {
	dir := t.TempDir()
	customers := NewCustomers(jsonfile.NewStore[entity.Customer](filepath.Join(dir, "usuarios.json")))
	ana := registerAna(t, customers)

	events := &memoryOrderLog{}
	queueStore := jsonfile.NewStore[entity.QueuedOrder](filepath.Join(dir, "pedidos.json"))
	queue := NewOrderQueue(queueStore, &failingCustomers{CustomerRepository: customers}, events)

	_, err := queue.Place(context.Background(), pastelOrder(ana.ID))
	assert.ErrorIs(t, err, assert.AnError)

	// The queue entry written before the failure was compensated away.
	active, err := queue.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)

	require.Len(t, events.entries, 1)
	assert.Equal(t, orderlog.StatusHistoryWriteFailed, events.entries[0].Status)
	assert.NotEmpty(t, events.entries[0].Detail)
}

func TestListActiveSortsOldestFirst(t *testing.T) {
	queue, _, queueStore, _ := newQueueFixture(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	out := []entity.QueuedOrder{
		{Order: entity.Order{ID: "c", Date: base.Add(2 * time.Hour)}},
		{Order: entity.Order{ID: "a", Date: base}},
		{Order: entity.Order{ID: "b", Date: base.Add(time.Hour)}},
	}
	require.NoError(t, queueStore.Write(out))

	active, err := queue.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "b", active[1].ID)
	assert.Equal(t, "c", active[2].ID)
}

func TestFinalizeRemovesFromQueueOnly(t *testing.T) {
	queue, customers, _, events := newQueueFixture(t)
	ctx := context.Background()
	ana := registerAna(t, customers)

	order, err := queue.Place(ctx, pastelOrder(ana.ID))
	require.NoError(t, err)

	require.NoError(t, queue.Finalize(ctx, order.ID))

	active, err := queue.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	// History is immutable after finalize.
	history, err := customers.History(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)

	assert.ErrorIs(t, queue.Finalize(ctx, order.ID), entity.ErrOrderNotFound)

	require.Len(t, events.entries, 2)
	assert.Equal(t, orderlog.StatusFinalized, events.entries[1].Status)
}
