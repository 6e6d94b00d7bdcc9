// Package checkout implements the order checkout pipeline: validation,
// stock reservation, price computation, order persistence, payment-intent
// creation, and payment confirmation.
package checkout

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luxecuffs/storefront/internal/storefront/checkout/checklog"
	"github.com/luxecuffs/storefront/internal/storefront/domain"
	mailpkg "github.com/luxecuffs/storefront/internal/storefront/mail"
	"github.com/luxecuffs/storefront/internal/storefront/payment"
	"github.com/luxecuffs/storefront/internal/storefront/pricing"
	"github.com/luxecuffs/storefront/internal/storefront/store"
)

// CustomerInfo is the validated customer and shipping input of a checkout.
type CustomerInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Street    string
	City      string
	State     string
	ZipCode   string
}

// LineItem is one requested (product, quantity) pair. The unit price is
// always taken from the record store, never from the client.
type LineItem struct {
	ProductID string
	Quantity  int
}

// Receipt is the result of a successful checkout or confirmation: the
// order plus its items joined with their products.
type Receipt struct {
	Order domain.Order
	Items []domain.ResolvedItem
}

// Orchestrator drives the checkout pipeline and the payment confirmation
// flow against its injected collaborators.
type Orchestrator struct {
	store      store.Store
	gateway    payment.Gateway
	dispatcher *mailpkg.Dispatcher
	log        checklog.Repository // nil-safe: transitions are not persisted if nil
}

func NewOrchestrator(s store.Store, g payment.Gateway, d *mailpkg.Dispatcher, log checklog.Repository) *Orchestrator {
	return &Orchestrator{store: s, gateway: g, dispatcher: d, log: log}
}

// SubmitCheckout validates the input, reserves stock, prices the order at
// the products' stored prices, and persists the order with status pending
// plus one item per line. On any failure no order is persisted and stock
// is left exactly as it was.
func (o *Orchestrator) SubmitCheckout(ctx context.Context, info CustomerInfo, lines []LineItem) (*Receipt, error) {
	if err := validate(info, lines); err != nil {
		return nil, err
	}

	// Resolve each product up front: absence is fatal before anything is
	// mutated, and pricing needs the stored unit prices.
	products := make([]domain.Product, len(lines))
	priceLines := make([]pricing.Line, len(lines))
	stockLines := make([]store.StockLine, len(lines))
	for i, line := range lines {
		p, err := o.store.GetProduct(line.ProductID)
		if err != nil {
			return nil, err
		}
		products[i] = p
		priceLines[i] = pricing.Line{UnitPrice: p.Price, Quantity: line.Quantity}
		stockLines[i] = store.StockLine{ProductID: line.ProductID, Quantity: line.Quantity}
	}

	quote := pricing.Calculate(priceLines)

	orderID := uuid.NewString()
	draft := domain.Order{
		ID:                orderID,
		CustomerFirstName: info.FirstName,
		CustomerLastName:  info.LastName,
		CustomerEmail:     info.Email,
		CustomerPhone:     info.Phone,
		ShippingStreet:    info.Street,
		ShippingCity:      info.City,
		ShippingState:     info.State,
		ShippingZipCode:   info.ZipCode,
		Subtotal:          quote.Subtotal,
		Shipping:          quote.Shipping,
		Tax:               quote.Tax,
		Total:             quote.Total,
		PaymentStatus:     domain.PaymentPending,
	}

	items := make([]domain.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = domain.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     products[i].Price, // snapshot, not a reference
		}
	}

	reserve := newReserveStockStep(o.store, stockLines)
	persist := newPersistOrderStep(o.store, draft, items)

	if err := newPipeline(orderID, []Step{reserve, persist}, o.log).run(ctx, checkoutPayload(info, lines)); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "checkout completed",
		"order_id", persist.order.ID, "total", persist.order.Total.StringFixed(2))

	receipt := &Receipt{Order: persist.order, Items: make([]domain.ResolvedItem, len(persist.created))}
	for i, item := range persist.created {
		receipt.Items[i] = domain.ResolvedItem{OrderItem: item, Product: products[i]}
	}
	return receipt, nil
}

// CreatePaymentIntent asks the gateway to reserve a charge for the given
// amount. It is independent of order creation; orderID, when non-empty, is
// carried as intent metadata only.
func (o *Orchestrator) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, orderID string) (payment.Intent, error) {
	if !amount.IsPositive() {
		return payment.Intent{}, &domain.GatewayError{Reason: "amount must be positive"}
	}

	var metadata map[string]string
	if orderID != "" {
		metadata = map[string]string{"orderId": orderID}
	}

	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return o.gateway.CreateIntent(ctx, cents, metadata)
}

// validate checks that every customer/shipping field is present, the email
// is well-formed, and each line names a product with a positive quantity.
// It returns a ValidationError listing every offending field.
func validate(info CustomerInfo, lines []LineItem) error {
	var fields []string

	required := []struct{ name, value string }{
		{"customerFirstName", info.FirstName},
		{"customerLastName", info.LastName},
		{"customerEmail", info.Email},
		{"customerPhone", info.Phone},
		{"shippingStreet", info.Street},
		{"shippingCity", info.City},
		{"shippingState", info.State},
		{"shippingZipCode", info.ZipCode},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			fields = append(fields, f.name)
		}
	}

	if info.Email != "" {
		if _, err := mail.ParseAddress(info.Email); err != nil {
			fields = append(fields, "customerEmail")
		}
	}

	if len(lines) == 0 {
		fields = append(fields, "items")
	}
	for _, line := range lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			fields = append(fields, "items")
			break
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// checkoutPayload serialises the checkout input for the STARTED log row.
func checkoutPayload(info CustomerInfo, lines []LineItem) string {
	b, err := json.Marshal(struct {
		Customer CustomerInfo `json:"customer"`
		Lines    []LineItem   `json:"lines"`
	}{info, lines})
	if err != nil {
		return ""
	}
	return string(b)
}
