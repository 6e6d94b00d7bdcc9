package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/luxecuffs/storefront/internal/storefront/domain"
)

// Dispatcher renders and sends the two order emails: an operator-facing
// notification and a customer-facing confirmation.
type Dispatcher struct {
	mailer        Mailer
	from          string
	operatorEmail string
}

func NewDispatcher(mailer Mailer, from, operatorEmail string) *Dispatcher {
	return &Dispatcher{
		mailer:        mailer,
		from:          from,
		operatorEmail: operatorEmail,
	}
}

// DispatchOrderEmails sends both messages for a confirmed order. Send
// failures are logged and swallowed: the payment-status change has already
// been committed and must not be rolled back by a mail outage.
func (d *Dispatcher) DispatchOrderEmails(ctx context.Context, order domain.Order, items []domain.ResolvedItem) {
	data := buildEmailData(order, items)

	notification, err := render(operatorTmpl, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render operator notification", "order_id", order.ID, "error", err)
	} else if err := d.mailer.Send(ctx, Message{
		From:    d.from,
		To:      d.operatorEmail,
		Subject: fmt.Sprintf("New Order #%s - $%s", shortID(order.ID), data.Total),
		HTML:    notification,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send operator notification", "order_id", order.ID, "error", err)
	} else {
		slog.InfoContext(ctx, "order notification email sent", "order_id", order.ID)
	}

	confirmation, err := render(customerTmpl, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render customer confirmation", "order_id", order.ID, "error", err)
		return
	}
	if err := d.mailer.Send(ctx, Message{
		From:    d.from,
		To:      order.CustomerEmail,
		Subject: fmt.Sprintf("Order Confirmation #%s - LuxeCuffs", shortID(order.ID)),
		HTML:    confirmation,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send customer confirmation", "order_id", order.ID, "error", err)
		return
	}
	slog.InfoContext(ctx, "order confirmation email sent", "order_id", order.ID, "to", order.CustomerEmail)
}

func buildEmailData(order domain.Order, items []domain.ResolvedItem) orderEmailData {
	rows := make([]itemRow, len(items))
	for i, item := range items {
		rows[i] = itemRow{
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price.StringFixed(2),
			LineTotal: item.LineTotal().StringFixed(2),
		}
	}

	return orderEmailData{
		OrderID:           order.ID,
		OrderDate:         order.CreatedAt.Format("January 2, 2006"),
		PaymentStatus:     string(order.PaymentStatus),
		CustomerName:      order.CustomerFirstName + " " + order.CustomerLastName,
		CustomerFirstName: order.CustomerFirstName,
		CustomerEmail:     order.CustomerEmail,
		CustomerPhone:     order.CustomerPhone,
		ShippingStreet:    order.ShippingStreet,
		ShippingCity:      order.ShippingCity,
		ShippingState:     order.ShippingState,
		ShippingZip:       order.ShippingZipCode,
		Items:             rows,
		Subtotal:          order.Subtotal.StringFixed(2),
		Shipping:          order.Shipping.StringFixed(2),
		Tax:               order.Tax.StringFixed(2),
		Total:             order.Total.StringFixed(2),
	}
}

func render(tmpl *template.Template, data orderEmailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// shortID returns the last 8 characters of an order id, matching the
// subject-line convention.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
