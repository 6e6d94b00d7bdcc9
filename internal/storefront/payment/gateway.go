// Package payment defines the narrow interface to the card-payment
// provider and its implementations: a Stripe REST client and an in-process
// fake for development and tests.
package payment

import "context"

// Intent is a gateway-side reservation of a charge. The client secret is
// handed to the browser to complete the payment.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway is the port the checkout orchestrator depends on. AmountCents is
// the charge in the smallest currency unit; metadata is attached to the
// intent for later reconciliation (e.g. the order id).
type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64, metadata map[string]string) (Intent, error)
}
