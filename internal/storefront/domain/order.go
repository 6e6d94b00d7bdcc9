package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Order is created once per checkout submission. PaymentStatus is the only
// field mutated after creation, and only through the confirmation handler.
type Order struct {
	ID                string
	CustomerFirstName string
	CustomerLastName  string
	CustomerEmail     string
	CustomerPhone     string
	ShippingStreet    string
	ShippingCity      string
	ShippingState     string
	ShippingZipCode   string
	Subtotal          decimal.Decimal
	Shipping          decimal.Decimal
	Tax               decimal.Decimal
	Total             decimal.Decimal
	PaymentStatus     PaymentStatus
	PaymentIntentID   string
	CreatedAt         time.Time
}

// OrderItem is one line of an order. Price is the product's unit price
// captured at the instant the order was placed. Never mutated or deleted.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

// LineTotal returns Price × Quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ResolvedItem is an order item joined with its product for display
// and for email rendering.
type ResolvedItem struct {
	OrderItem
	Product Product
}
