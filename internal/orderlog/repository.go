package orderlog

import "context"

// Repository is the port for persisting order event entries. The order flow
// depends on this abstraction, not on SQLite directly, so tests can use an
// in-memory implementation.
type Repository interface {
	// Save appends a row; the table is an append-only audit log.
	Save(ctx context.Context, entry *Entry) error
}
