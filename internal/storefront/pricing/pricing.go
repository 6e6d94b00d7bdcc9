// Package pricing computes the monetary breakdown of a checkout: subtotal,
// flat shipping, flat-rate tax, and grand total.
//
// All arithmetic is done on fixed-point decimals with no intermediate
// rounding; callers round only when formatting for output.
package pricing

import "github.com/shopspring/decimal"

var (
	// Shipping is a flat rate regardless of weight, destination, or size.
	Shipping = decimal.RequireFromString("15.00")

	// TaxRate is a single flat rate; no jurisdiction logic.
	TaxRate = decimal.RequireFromString("0.08")
)

// Line is one (unit price, quantity) pair. Quantities must already be
// validated as positive by the caller.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Quote is the computed breakdown. Total = Subtotal + Shipping + Tax holds
// exactly on the decimal values.
type Quote struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Calculate prices the given lines. It is a pure function with no error
// conditions.
func Calculate(lines []Line) Quote {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	tax := subtotal.Mul(TaxRate)
	return Quote{
		Subtotal: subtotal,
		Shipping: Shipping,
		Tax:      tax,
		Total:    subtotal.Add(Shipping).Add(tax),
	}
}
