package checklog

import "context"

// Repository is the port for persisting checkout log entries. The
// orchestrator depends on this abstraction, not on SQLite directly, so the
// implementation can be swapped for in-memory (tests) or a real database.
type Repository interface {
	// Save appends a new entry. The log is append-only; entries are never
	// updated or deleted.
	Save(ctx context.Context, entry *Entry) error
}
