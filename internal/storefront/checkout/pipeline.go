package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/luxecuffs/storefront/internal/storefront/checkout/checklog"
)

// Step is a single unit of work in the checkout pipeline. Each step that
// mutates state must have a compensating action to undo its effect.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
	Compensate(ctx context.Context) error
}

// pipeline runs steps sequentially. When a step fails, the steps that
// already completed are compensated in reverse order and the original
// error is returned.
//
// Every transition is appended to the checkout log keyed by the order id,
// so the log can be joined with business data and correlated with the
// active trace. log may be nil, in which case transitions are not
// persisted.
type pipeline struct {
	orderID string
	steps   []Step
	log     checklog.Repository
}

func newPipeline(orderID string, steps []Step, log checklog.Repository) *pipeline {
	return &pipeline{orderID: orderID, steps: steps, log: log}
}

func (p *pipeline) run(ctx context.Context, payload string) error {
	p.record(ctx, checklog.StatusStarted, "", payload, nil)

	var done []Step
	for _, step := range p.steps {
		slog.InfoContext(ctx, "executing checkout step", "order_id", p.orderID, "step", step.Name())
		if err := step.Execute(ctx); err != nil {
			slog.ErrorContext(ctx, "checkout step failed, rolling back",
				"order_id", p.orderID, "step", step.Name(), "error", err)
			errs := p.rollback(ctx, done, fmt.Sprintf("step %s failed: %v", step.Name(), err))
			p.record(ctx, checklog.StatusFailed, step.Name(), "", errs)
			return err
		}
		done = append(done, step)
		p.record(ctx, checklog.StatusStepDone, step.Name(), "", nil)
	}

	p.record(ctx, checklog.StatusCompleted, "", "", nil)
	return nil
}

// rollback compensates completed steps LIFO and returns the accumulated
// error messages for the FAILED log row.
func (p *pipeline) rollback(ctx context.Context, done []Step, cause string) []string {
	errs := []string{cause}
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		slog.InfoContext(ctx, "compensating checkout step", "order_id", p.orderID, "step", step.Name())
		p.record(ctx, checklog.StatusCompensating, step.Name(), "", nil)
		if err := step.Compensate(ctx); err != nil {
			slog.ErrorContext(ctx, "CRITICAL: failed to compensate checkout step",
				"order_id", p.orderID, "step", step.Name(), "error", err)
			errs = append(errs, fmt.Sprintf("compensation of %s failed: %v", step.Name(), err))
		}
	}
	return errs
}

func (p *pipeline) record(ctx context.Context, status checklog.Status, step, payload string, errs []string) {
	if p.log == nil {
		return
	}
	entry := checklog.NewEntry(ctx, p.orderID, status, step, payload, errs)
	if err := p.log.Save(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to save checkout log entry",
			"order_id", p.orderID, "status", status, "error", err)
	}
}
