package orderlog

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// NewEntry builds an Entry stamped with the current time and whatever OTel
// span is active in ctx. Without an active span (unit tests) the trace
// fields stay empty.
func NewEntry(ctx context.Context, orderID, customerID string, status Status, total float64, detail string) *Entry {
	entry := &Entry{
		OrderID:    orderID,
		CustomerID: customerID,
		Status:     status,
		Total:      total,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		entry.TraceID = sc.TraceID().String()
		entry.SpanID = sc.SpanID().String()
	}
	return entry
}
