// Package sqlite provides a SQLite-backed implementation of
// orderlog.Repository.
//
// WAL mode is enabled on Open so readers never block writers: the order flow
// appends events while an operator query may be reading the same table.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jpmattos/kiosk-totem/internal/orderlog"

	// Register the pure-Go SQLite driver. modernc.org/sqlite avoids CGO so
	// the kiosk binary cross-compiles for whatever box sits inside the totem.
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup. The table is append-only:
// each row is an immutable event in an order's lifecycle.
const schema = `
CREATE TABLE IF NOT EXISTS order_events (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Business identifier. Not UNIQUE: one row per transition.
    order_id    TEXT    NOT NULL,

    customer_id TEXT    NOT NULL DEFAULT '',

    -- Lifecycle transition (PLACED / HISTORY_WRITE_FAILED / FINALIZED).
    status      TEXT    NOT NULL,

    total       REAL    NOT NULL DEFAULT 0,

    -- Error text on failure transitions, NULL otherwise.
    detail      TEXT,

    -- W3C trace identifiers from the active OTel span, when present.
    trace_id    TEXT    NOT NULL DEFAULT '',
    span_id     TEXT    NOT NULL DEFAULT '',

    -- RFC3339 stored as TEXT, the SQLite idiom.
    created_at  TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_order_events_order_id ON order_events(order_id, created_at);
CREATE INDEX IF NOT EXISTS idx_order_events_status   ON order_events(status);
`

// Repository is the SQLite implementation of orderlog.Repository.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save inserts a new order event. Safe for concurrent use.
func (r *Repository) Save(ctx context.Context, entry *orderlog.Entry) error {
	const q = `
		INSERT INTO order_events
			(order_id, customer_id, status, total, detail, trace_id, span_id, created_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.OrderID,
		entry.CustomerID,
		string(entry.Status),
		entry.Total,
		nullableString(entry.Detail),
		entry.TraceID,
		entry.SpanID,
		entry.CreatedAt.UTC().Format("2006-01-02T15:04:05.999999999Z"),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save order event for %q: %w", entry.OrderID, err)
	}
	return nil
}

// ListByOrder returns every recorded transition of one order, oldest first.
func (r *Repository) ListByOrder(ctx context.Context, orderID string) ([]orderlog.Entry, error) {
	const q = `
		SELECT order_id, customer_id, status, total, COALESCE(detail,''), trace_id, span_id, created_at
		FROM   order_events
		WHERE  order_id = ?
		ORDER  BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, q, orderID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list events for %q: %w", orderID, err)
	}
	defer rows.Close()

	var entries []orderlog.Entry
	for rows.Next() {
		var entry orderlog.Entry
		var createdAt string
		if err := rows.Scan(
			&entry.OrderID,
			&entry.CustomerID,
			&entry.Status,
			&entry.Total,
			&entry.Detail,
			&entry.TraceID,
			&entry.SpanID,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scan event for %q: %w", orderID, err)
		}
		entry.CreatedAt, err = parseRFC3339(createdAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// nullableString returns nil for empty strings so failure-free rows store
// NULL instead of empty TEXT.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
