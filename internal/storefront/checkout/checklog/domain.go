// Package checklog defines the append-only audit trail of the checkout
// pipeline and payment confirmations.
//
// Each entry is an immutable snapshot of one transition: pipeline started,
// a step completed, the pipeline finished or rolled back, or a payment was
// confirmed. The trail serves two purposes:
//
//  1. Observability: the latest row per order shows exactly where a
//     checkout is (or stalled), correlated with the distributed trace via
//     the trace_id field.
//
//  2. Audit: payment confirmations are recorded even when they repeat, so
//     duplicate confirmations are at least visible after the fact.
package checklog

import "time"

// Status is the lifecycle state captured by an entry.
type Status string

const (
	StatusStarted          Status = "STARTED"
	StatusStepDone         Status = "STEP_DONE"
	StatusCompleted        Status = "COMPLETED"
	StatusCompensating     Status = "COMPENSATING"
	StatusFailed           Status = "FAILED"
	StatusPaymentConfirmed Status = "PAYMENT_CONFIRMED"
)

// Entry is a single row in the checkout_logs table.
type Entry struct {
	// OrderID identifies the checkout this entry belongs to, so the log
	// can be joined with business data.
	OrderID string

	// Status is the lifecycle state at the time this entry was written.
	Status Status

	// Step is the name of the pipeline step that just executed or failed.
	// Empty for STARTED and COMPLETED rows; PAYMENT_CONFIRMED rows carry
	// the gateway payment reference here instead.
	Step string

	// Payload is the JSON-serialised checkout input, stored once on the
	// STARTED row.
	Payload string

	// Errors accumulates failure details as a JSON array of strings.
	Errors string

	// TraceID and SpanID are the W3C identifiers of the OpenTelemetry span
	// active when this entry was written, so a log row can be followed
	// into the full trace.
	TraceID string
	SpanID  string

	// RecordedAt is the wall-clock time of this entry.
	RecordedAt time.Time
}
