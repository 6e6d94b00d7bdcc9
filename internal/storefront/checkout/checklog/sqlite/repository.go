// Package sqlite provides a SQLite-backed implementation of
// checklog.Repository.
//
// WAL mode is enabled on Open so readers never block writers: the request
// handler writes entries while an operator query may be reading.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/luxecuffs/storefront/internal/storefront/checkout/checklog"

	// Register the pure-Go SQLite driver. modernc.org/sqlite avoids CGO,
	// which keeps cross-compilation and Alpine images simple.
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup. The table is append-only:
// each row is an immutable event in a checkout's lifecycle.
const schema = `
CREATE TABLE IF NOT EXISTS checkout_logs (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Order ID. Not UNIQUE: one row per transition.
    order_id     TEXT NOT NULL,

    -- Lifecycle state at the time this row was written.
    status       TEXT NOT NULL,

    -- Pipeline step that just executed, when applicable.
    step         TEXT NOT NULL DEFAULT '',

    -- JSON checkout input, written once on the STARTED row, NULL after.
    payload      TEXT,

    -- JSON array of error strings from failure/compensation.
    errors       TEXT NOT NULL DEFAULT '[]',

    -- W3C trace/span IDs from the active OTel span.
    trace_id     TEXT NOT NULL DEFAULT '',
    span_id      TEXT NOT NULL DEFAULT '',

    -- RFC3339 timestamp stored as TEXT, the SQLite idiom.
    recorded_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_checkout_logs_order_id ON checkout_logs(order_id, recorded_at);
CREATE INDEX IF NOT EXISTS idx_checkout_logs_trace_id ON checkout_logs(trace_id);
`

// Repository is the SQLite implementation of checklog.Repository.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Repository, error) {
	// The pure-Go driver takes _pragma query parameters. WAL enables
	// concurrent readers; busy_timeout waits on locks instead of failing.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

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

// Save inserts a new entry. Safe for concurrent use.
func (r *Repository) Save(ctx context.Context, entry *checklog.Entry) error {
	const q = `
		INSERT INTO checkout_logs
			(order_id, status, step, payload, errors, trace_id, span_id, recorded_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.OrderID,
		string(entry.Status),
		entry.Step,
		nullableString(entry.Payload),
		entry.Errors,
		entry.TraceID,
		entry.SpanID,
		entry.RecordedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save checkout log for %q: %w", entry.OrderID, err)
	}
	return nil
}

// GetLatest returns the most recent entry for an order, for status queries.
func (r *Repository) GetLatest(ctx context.Context, orderID string) (*checklog.Entry, error) {
	const q = `
		SELECT order_id, status, step, COALESCE(payload,''), errors,
		       trace_id, span_id, recorded_at
		FROM   checkout_logs
		WHERE  order_id = ?
		ORDER  BY recorded_at DESC, id DESC
		LIMIT  1`

	row := r.db.QueryRowContext(ctx, q, orderID)

	var entry checklog.Entry
	var recordedAt string
	err := row.Scan(
		&entry.OrderID,
		&entry.Status,
		&entry.Step,
		&entry.Payload,
		&entry.Errors,
		&entry.TraceID,
		&entry.SpanID,
		&recordedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sqlite: no checkout log for %q", orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get latest for %q: %w", orderID, err)
	}

	entry.RecordedAt, err = parseTimestamp(recordedAt)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// nullableString maps empty strings to NULL so the payload column stays
// clean on non-STARTED rows.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
