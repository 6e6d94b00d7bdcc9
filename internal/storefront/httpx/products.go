package httpx

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/luxecuffs/storefront/internal/storefront/domain"
	"github.com/luxecuffs/storefront/internal/storefront/store"
)

// catalogTTL bounds the staleness of cached catalog responses; admin
// writes also invalidate eagerly.
const catalogTTL = 60 * time.Second

// ListProducts serves the catalog with optional search or filter query
// parameters. The unfiltered listing is cached; parameterised queries are
// computed fresh.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	material := q.Get("material")
	minPrice := q.Get("minPrice")
	maxPrice := q.Get("maxPrice")

	switch {
	case search != "":
		writeJSON(w, http.StatusOK, mapProducts(h.store.SearchProducts(search)))

	case material != "" || minPrice != "" || maxPrice != "":
		filter := store.ProductFilter{Material: material}
		if minPrice != "" {
			d, err := decimal.NewFromString(minPrice)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_filter", "minPrice must be a decimal")
				return
			}
			filter.MinPrice = &d
		}
		if maxPrice != "" {
			d, err := decimal.NewFromString(maxPrice)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_filter", "maxPrice must be a decimal")
				return
			}
			filter.MaxPrice = &d
		}
		writeJSON(w, http.StatusOK, mapProducts(h.store.FilterProducts(filter)))

	default:
		h.serveCached(w, r, "all", func() any {
			return mapProducts(h.store.GetAllProducts())
		})
	}
}

// FeaturedProducts serves the featured subset, cached.
func (h *Handler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "featured", func() any {
		return mapProducts(h.store.GetFeaturedProducts())
	})
}

// GetProduct serves a single product, 404 if absent.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.GetProduct(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

// serveCached tries the catalog cache before computing the response body.
// Cache failures degrade to a fresh computation, never to an error.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, compute func() any) {
	if h.cache == nil {
		writeJSON(w, http.StatusOK, compute())
		return
	}

	cacheKey := h.cache.GenerateKey("products", key)
	if cached, err := h.cache.Get(r.Context(), cacheKey); err != nil {
		slog.WarnContext(r.Context(), "catalog cache read failed", "key", cacheKey, "error", err)
	} else if cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(cached))
		return
	}

	body := compute()
	writeJSON(w, http.StatusOK, body)

	if encoded, err := json.Marshal(body); err == nil {
		if err := h.cache.Set(r.Context(), cacheKey, encoded, catalogTTL); err != nil {
			slog.WarnContext(r.Context(), "catalog cache write failed", "key", cacheKey, "error", err)
		}
	}
}

// invalidateCatalog drops the cached catalog responses after an admin
// product write.
func (h *Handler) invalidateCatalog(ctx context.Context) {
	if h.cache == nil {
		return
	}
	keys := []string{
		h.cache.GenerateKey("products", "all"),
		h.cache.GenerateKey("products", "featured"),
	}
	if err := h.cache.Del(ctx, keys...); err != nil {
		slog.WarnContext(ctx, "catalog cache invalidation failed", "error", err)
	}
}

// parsePrice validates an incoming price string as a non-negative decimal.
func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, &domain.ValidationError{Fields: []string{"price"}}
	}
	return d, nil
}
