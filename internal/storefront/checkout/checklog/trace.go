package checklog

import (
	"context"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// NewEntry builds an Entry stamped with the current time and, when ctx
// carries an active OpenTelemetry span, its trace and span IDs. In unit
// tests with no active span both IDs are empty strings.
func NewEntry(ctx context.Context, orderID string, status Status, step, payload string, errs []string) *Entry {
	entry := &Entry{
		OrderID:    orderID,
		Status:     status,
		Step:       step,
		Payload:    payload,
		Errors:     "[]",
		RecordedAt: time.Now().UTC(),
	}

	if len(errs) > 0 {
		if b, err := json.Marshal(errs); err == nil {
			entry.Errors = string(b)
		}
	}

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		entry.TraceID = sc.TraceID().String()
		entry.SpanID = sc.SpanID().String()
	}

	return entry
}
