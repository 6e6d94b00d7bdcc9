package mail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxecuffs/storefront/internal/storefront/domain"
)

func sampleOrder() (domain.Order, []domain.ResolvedItem) {
	order := domain.Order{
		ID:                "ord-00000000-abcd-1234",
		CustomerFirstName: "Ada",
		CustomerLastName:  "Lovelace",
		CustomerEmail:     "ada@example.com",
		CustomerPhone:     "555-1815",
		ShippingStreet:    "12 Analytical Way",
		ShippingCity:      "London",
		ShippingState:     "LN",
		ShippingZipCode:   "18150",
		Subtotal:          decimal.RequireFromString("598.00"),
		Shipping:          decimal.RequireFromString("15.00"),
		Tax:               decimal.RequireFromString("47.84"),
		Total:             decimal.RequireFromString("660.84"),
		PaymentStatus:     domain.PaymentPaid,
		CreatedAt:         time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC),
	}
	items := []domain.ResolvedItem{
		{
			OrderItem: domain.OrderItem{
				ID:        "item-1",
				OrderID:   order.ID,
				ProductID: "prod-1",
				Quantity:  2,
				Price:     decimal.RequireFromString("299.00"),
			},
			Product: domain.Product{ID: "prod-1", Name: "Classic Gold Heritage"},
		},
	}
	return order, items
}

func TestDispatchOrderEmails(t *testing.T) {
	mailbox := NewCapture()
	d := NewDispatcher(mailbox, "noreply@luxecuffs.com", "admin@luxecuffs.com")
	order, items := sampleOrder()

	d.DispatchOrderEmails(context.Background(), order, items)

	sent := mailbox.Sent()
	require.Len(t, sent, 2)

	operator := sent[0]
	assert.Equal(t, "admin@luxecuffs.com", operator.To)
	assert.Equal(t, "noreply@luxecuffs.com", operator.From)
	assert.Equal(t, "New Order #bcd-1234 - $660.84", operator.Subject)
	assert.Contains(t, operator.HTML, "Ada Lovelace")
	assert.Contains(t, operator.HTML, "Classic Gold Heritage")
	assert.Contains(t, operator.HTML, "$299.00")
	assert.Contains(t, operator.HTML, "$598.00")
	assert.Contains(t, operator.HTML, "March 14, 2025")
	assert.Contains(t, operator.HTML, order.ID)

	customer := sent[1]
	assert.Equal(t, "ada@example.com", customer.To)
	assert.Equal(t, "Order Confirmation #bcd-1234 - LuxeCuffs", customer.Subject)
	assert.Contains(t, customer.HTML, "Dear Ada,")
	assert.Contains(t, customer.HTML, "$660.84")
	assert.Contains(t, customer.HTML, "12 Analytical Way")
}

func TestDispatchOrderEmailsSurvivesSendFailure(t *testing.T) {
	mailbox := NewCapture()
	mailbox.Fail = errors.New("smtp down")
	d := NewDispatcher(mailbox, "noreply@luxecuffs.com", "admin@luxecuffs.com")
	order, items := sampleOrder()

	// Must not panic or propagate; confirmation flow continues regardless.
	d.DispatchOrderEmails(context.Background(), order, items)
	assert.Empty(t, mailbox.Sent())
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "bcd-1234", shortID("ord-00000000-abcd-1234"))
	assert.Equal(t, "tiny", shortID("tiny"))
}
