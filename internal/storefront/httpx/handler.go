// Package httpx exposes the storefront over HTTP with JSON bodies: the
// public catalog, the admin surface, and the checkout/payment flow.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/luxecuffs/storefront/internal/pkg/cache"
	"github.com/luxecuffs/storefront/internal/storefront/checkout"
	"github.com/luxecuffs/storefront/internal/storefront/domain"
	"github.com/luxecuffs/storefront/internal/storefront/store"
)

// Handler holds the dependencies the route handlers need.
type Handler struct {
	store        store.Store
	orchestrator *checkout.Orchestrator
	cache        cache.Cache // nil-safe: caching skipped if nil
}

// NewHandler wires the handler. cache may be nil, in which case catalog
// responses are computed fresh on every request.
func NewHandler(s store.Store, o *checkout.Orchestrator, c cache.Cache) *Handler {
	return &Handler{store: s, orchestrator: o, cache: c}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: msg})
}

// writeDomainError maps the error taxonomy onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		validation   *domain.ValidationError
		notFound     *domain.NotFoundError
		outOfStock   *domain.InsufficientStockError
		gatewayError *domain.GatewayError
	)
	switch {
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, "validation_error", validation.Error())
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, "not_found", notFound.Error())
	case errors.As(err, &outOfStock):
		writeError(w, http.StatusBadRequest, "insufficient_stock", outOfStock.Error())
	case errors.As(err, &gatewayError):
		writeError(w, http.StatusBadGateway, "gateway_error", gatewayError.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

// decodeJSON reads the request body into v; a false return means the 400
// has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}
