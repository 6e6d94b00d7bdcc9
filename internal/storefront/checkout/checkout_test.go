package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxecuffs/storefront/internal/storefront/checkout/checklog"
	"github.com/luxecuffs/storefront/internal/storefront/domain"
	"github.com/luxecuffs/storefront/internal/storefront/mail"
	"github.com/luxecuffs/storefront/internal/storefront/payment"
	"github.com/luxecuffs/storefront/internal/storefront/store"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fixture struct {
	store        *store.Memory
	gateway      *payment.FakeGateway
	mailbox      *mail.Capture
	log          *checklog.Memory
	orchestrator *Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:   store.NewMemory(),
		gateway: payment.NewFakeGateway(),
		mailbox: mail.NewCapture(),
		log:     checklog.NewMemory(),
	}
	dispatcher := mail.NewDispatcher(f.mailbox, "noreply@luxecuffs.com", "admin@luxecuffs.com")
	f.orchestrator = NewOrchestrator(f.store, f.gateway, dispatcher, f.log)
	return f
}

func (f *fixture) addProduct(t *testing.T, name, price string, stock int) domain.Product {
	t.Helper()
	p, err := f.store.CreateProduct(domain.Product{
		Name:        name,
		Description: name,
		Price:       d(price),
		ImageURL:    "https://example.com/img",
		Material:    "Gold",
		Stock:       stock,
	})
	require.NoError(t, err)
	return p
}

func validInfo() CustomerInfo {
	return CustomerInfo{
		FirstName: "James",
		LastName:  "Bond",
		Email:     "james@example.com",
		Phone:     "555-0007",
		Street:    "1 Secret St",
		City:      "London",
		State:     "LN",
		ZipCode:   "00700",
	}
}

func TestSubmitCheckoutHappyPath(t *testing.T) {
	f := newFixture(t)
	a := f.addProduct(t, "Classic Gold Heritage", "100.00", 10)
	b := f.addProduct(t, "Modern Silver Edge", "50.00", 5)

	receipt, err := f.orchestrator.SubmitCheckout(context.Background(), validInfo(), []LineItem{
		{ProductID: a.ID, Quantity: 2},
		{ProductID: b.ID, Quantity: 1},
	})
	require.NoError(t, err)

	assert.True(t, receipt.Order.Subtotal.Equal(d("250.00")))
	assert.True(t, receipt.Order.Shipping.Equal(d("15.00")))
	assert.True(t, receipt.Order.Tax.Equal(d("20.00")))
	assert.True(t, receipt.Order.Total.Equal(d("285.00")))
	assert.Equal(t, domain.PaymentPending, receipt.Order.PaymentStatus)

	require.Len(t, receipt.Items, 2)
	assert.Equal(t, a.ID, receipt.Items[0].ProductID)
	assert.True(t, receipt.Items[0].Price.Equal(d("100.00")))
	assert.Equal(t, "Classic Gold Heritage", receipt.Items[0].Product.Name)

	// Order and items are persisted.
	stored, err := f.store.GetOrder(receipt.Order.ID)
	require.NoError(t, err)
	assert.True(t, stored.Total.Equal(d("285.00")))
	assert.Len(t, f.store.GetOrderItems(receipt.Order.ID), 2)

	// Stock was decremented by the reservation step.
	got, _ := f.store.GetProduct(a.ID)
	assert.Equal(t, 8, got.Stock)
	got, _ = f.store.GetProduct(b.ID)
	assert.Equal(t, 4, got.Stock)

	// The audit log recorded every transition.
	statuses := loggedStatuses(f.log)
	assert.Equal(t, []checklog.Status{
		checklog.StatusStarted,
		checklog.StatusStepDone,
		checklog.StatusStepDone,
		checklog.StatusCompleted,
	}, statuses)
}

func TestSubmitCheckoutValidation(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "Classic", "100.00", 10)

	info := validInfo()
	info.FirstName = ""
	info.Email = "not-an-email"

	_, err := f.orchestrator.SubmitCheckout(context.Background(), info, []LineItem{
		{ProductID: p.ID, Quantity: 1},
	})

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "customerFirstName")
	assert.Contains(t, validation.Fields, "customerEmail")

	// Hard stop: nothing was created or reserved.
	assert.Empty(t, f.store.GetAllOrders())
	got, _ := f.store.GetProduct(p.ID)
	assert.Equal(t, 10, got.Stock)
	assert.Empty(t, f.log.Entries())
}

func TestSubmitCheckoutRejectsBadLines(t *testing.T) {
	f := newFixture(t)

	for _, lines := range [][]LineItem{
		nil,
		{{ProductID: "", Quantity: 1}},
		{{ProductID: "p", Quantity: 0}},
		{{ProductID: "p", Quantity: -2}},
	} {
		_, err := f.orchestrator.SubmitCheckout(context.Background(), validInfo(), lines)
		var validation *domain.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Contains(t, validation.Fields, "items")
	}
}

func TestSubmitCheckoutUnknownProduct(t *testing.T) {
	f := newFixture(t)

	_, err := f.orchestrator.SubmitCheckout(context.Background(), validInfo(), []LineItem{
		{ProductID: "missing", Quantity: 1},
	})

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Empty(t, f.store.GetAllOrders())
}

func TestSubmitCheckoutInsufficientStock(t *testing.T) {
	f := newFixture(t)
	plenty := f.addProduct(t, "Plenty", "100.00", 10)
	scarce := f.addProduct(t, "Scarce", "50.00", 1)

	_, err := f.orchestrator.SubmitCheckout(context.Background(), validInfo(), []LineItem{
		{ProductID: plenty.ID, Quantity: 2},
		{ProductID: scarce.ID, Quantity: 3},
	})

	var outOfStock *domain.InsufficientStockError
	require.ErrorAs(t, err, &outOfStock)
	assert.Equal(t, "Scarce", outOfStock.ProductName)

	// No order persisted, stock untouched.
	assert.Empty(t, f.store.GetAllOrders())
	got, _ := f.store.GetProduct(plenty.ID)
	assert.Equal(t, 10, got.Stock)
	got, _ = f.store.GetProduct(scarce.ID)
	assert.Equal(t, 1, got.Stock)

	statuses := loggedStatuses(f.log)
	assert.Equal(t, []checklog.Status{checklog.StatusStarted, checklog.StatusFailed}, statuses)
}

func TestSubmitCheckoutUsesStoredPrices(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "Classic", "299.00", 10)

	receipt, err := f.orchestrator.SubmitCheckout(context.Background(), validInfo(), []LineItem{
		{ProductID: p.ID, Quantity: 1},
	})
	require.NoError(t, err)

	// Pricing came from the store, and raising the price afterwards
	// leaves the captured item price alone.
	assert.True(t, receipt.Order.Subtotal.Equal(d("299.00")))

	raised := d("999.00")
	_, err = f.store.UpdateProduct(p.ID, domain.ProductPatch{Price: &raised})
	require.NoError(t, err)

	items := f.store.GetOrderItems(receipt.Order.ID)
	require.Len(t, items, 1)
	assert.True(t, items[0].Price.Equal(d("299.00")))
}

func TestCreatePaymentIntent(t *testing.T) {
	f := newFixture(t)

	intent, err := f.orchestrator.CreatePaymentIntent(context.Background(), d("285.00"), "order-1")
	require.NoError(t, err)
	assert.NotEmpty(t, intent.ClientSecret)

	created := f.gateway.Created()
	require.Len(t, created, 1)
	assert.Equal(t, int64(28500), created[0].AmountCents)
	assert.Equal(t, "order-1", created[0].Metadata["orderId"])
}

func TestCreatePaymentIntentRejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t)

	for _, amount := range []string{"0", "-10.00"} {
		_, err := f.orchestrator.CreatePaymentIntent(context.Background(), d(amount), "")
		var gatewayErr *domain.GatewayError
		require.ErrorAs(t, err, &gatewayErr)
	}
	assert.Empty(t, f.gateway.Created(), "gateway never called")
}

func TestCreatePaymentIntentGatewayFailure(t *testing.T) {
	f := newFixture(t)
	f.gateway.Fail = &domain.GatewayError{Reason: "card network down"}

	_, err := f.orchestrator.CreatePaymentIntent(context.Background(), d("10.00"), "")

	var gatewayErr *domain.GatewayError
	assert.True(t, errors.As(err, &gatewayErr))
}

func loggedStatuses(log *checklog.Memory) []checklog.Status {
	entries := log.Entries()
	out := make([]checklog.Status, len(entries))
	for i, e := range entries {
		out[i] = e.Status
	}
	return out
}
