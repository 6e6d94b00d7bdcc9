package sqlite

import (
	"fmt"
	"time"
)

const timeFormat = "2006-01-02T15:04:05.999999999Z"

// parseTimestamp parses the RFC3339 TEXT timestamps stored in SQLite,
// which has no native datetime type.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("sqlite: parse time %q: %w", s, err)
	}
	return t, nil
}
