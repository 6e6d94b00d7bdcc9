package checkout

import (
	"context"
	"log/slog"

	"github.com/luxecuffs/storefront/internal/storefront/checkout/checklog"
	"github.com/luxecuffs/storefront/internal/storefront/domain"
)

// ConfirmPayment transitions an order from pending to paid, records the
// gateway payment reference, and dispatches both notification emails.
//
// This is the only mutation path for payment status. The call is not
// idempotent: confirming twice re-applies the same status and re-sends
// both emails; every confirmation is appended to the checkout log so
// duplicates are visible.
func (o *Orchestrator) ConfirmPayment(ctx context.Context, orderID, paymentRef string) (*Receipt, error) {
	order, err := o.store.UpdateOrderPaymentStatus(orderID, domain.PaymentPaid, paymentRef)
	if err != nil {
		return nil, err
	}

	items, err := o.resolveItems(orderID)
	if err != nil {
		return nil, err
	}

	o.recordConfirmation(ctx, orderID, paymentRef)

	slog.InfoContext(ctx, "payment confirmed", "order_id", orderID, "payment_ref", paymentRef)

	// Fire-and-forget: a mail outage must not fail the confirmation that
	// is already committed. The dispatcher logs and swallows send errors.
	if o.dispatcher != nil {
		o.dispatcher.DispatchOrderEmails(ctx, order, items)
	}

	return &Receipt{Order: order, Items: items}, nil
}

// resolveItems joins an order's items with their products.
func (o *Orchestrator) resolveItems(orderID string) ([]domain.ResolvedItem, error) {
	items := o.store.GetOrderItems(orderID)
	resolved := make([]domain.ResolvedItem, len(items))
	for i, item := range items {
		product, err := o.store.GetProduct(item.ProductID)
		if err != nil {
			return nil, err
		}
		resolved[i] = domain.ResolvedItem{OrderItem: item, Product: product}
	}
	return resolved, nil
}

func (o *Orchestrator) recordConfirmation(ctx context.Context, orderID, paymentRef string) {
	if o.log == nil {
		return
	}
	entry := checklog.NewEntry(ctx, orderID, checklog.StatusPaymentConfirmed, paymentRef, "", nil)
	if err := o.log.Save(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to record payment confirmation",
			"order_id", orderID, "error", err)
	}
}
