package httpx

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/luxecuffs/storefront/internal/storefront/checkout"
)

// CreateOrder runs the checkout orchestrator: validation, stock
// reservation, pricing at stored prices, and persistence of the pending
// order with its items.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	info := checkout.CustomerInfo{
		FirstName: req.OrderData.CustomerFirstName,
		LastName:  req.OrderData.CustomerLastName,
		Email:     req.OrderData.CustomerEmail,
		Phone:     req.OrderData.CustomerPhone,
		Street:    req.OrderData.ShippingStreet,
		City:      req.OrderData.ShippingCity,
		State:     req.OrderData.ShippingState,
		ZipCode:   req.OrderData.ShippingZipCode,
	}
	lines := make([]checkout.LineItem, len(req.Items))
	for i, item := range req.Items {
		lines[i] = checkout.LineItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	receipt, err := h.orchestrator.SubmitCheckout(r.Context(), info, lines)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mapReceipt(receipt.Order, receipt.Items))
}

// CreatePaymentIntent exchanges an amount for a gateway client secret.
func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req PaymentIntentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Amount == "" {
		writeError(w, http.StatusBadRequest, "invalid_amount", "amount is required")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_amount", "amount must be a decimal string")
		return
	}
	if !amount.IsPositive() {
		writeError(w, http.StatusBadRequest, "invalid_amount", "amount must be positive")
		return
	}

	intent, err := h.orchestrator.CreatePaymentIntent(r.Context(), amount, req.OrderID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PaymentIntentResponse{ClientSecret: intent.ClientSecret})
}

// PaymentSuccess marks an order paid and triggers the notification emails.
func (h *Handler) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	var req PaymentSuccessRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.OrderID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "orderId is required")
		return
	}

	if _, err := h.orchestrator.ConfirmPayment(r.Context(), req.OrderID, req.PaymentIntentID); err != nil {
		writeDomainError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "payment success processed", "order_id", req.OrderID)
	writeJSON(w, http.StatusOK, PaymentSuccessResponse{Success: true})
}
