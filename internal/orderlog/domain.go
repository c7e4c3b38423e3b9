// Package orderlog defines a durable audit trail of order lifecycle
// transitions.
//
// The order flow writes two physical copies of every order (active queue +
// customer history) with no multi-file transaction. The log records each
// transition — including a failed history write after a successful queue
// write — so partial completions can be found after the fact instead of
// silently disappearing.
package orderlog

import "time"

// Status is the lifecycle transition being recorded.
type Status string

const (
	// StatusPlaced: both the queue write and the history write succeeded.
	StatusPlaced Status = "PLACED"

	// StatusHistoryWriteFailed: the queue write succeeded but the history
	// write did not; the queue entry was compensated away.
	StatusHistoryWriteFailed Status = "HISTORY_WRITE_FAILED"

	// StatusFinalized: staff removed the order from the active queue.
	StatusFinalized Status = "FINALIZED"
)

// Entry is a single row in the order_events table.
type Entry struct {
	// OrderID doubles as the idempotency key of the placement flow and lets
	// the log be joined with both durable views.
	OrderID string

	CustomerID string

	Status Status

	Total float64

	// Detail carries the error text on failure transitions, empty otherwise.
	Detail string

	// TraceID / SpanID come from the OTel span active when the entry was
	// written, so a log row links straight to the request trace.
	TraceID string
	SpanID  string

	CreatedAt time.Time
}
