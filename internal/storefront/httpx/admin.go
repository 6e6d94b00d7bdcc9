package httpx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/luxecuffs/storefront/internal/storefront/domain"
)

// AdminLogin checks the submitted credentials against the stored user.
// No session token is issued; session state is the caller's concern.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "username and password are required")
		return
	}

	user, err := h.store.GetUserByUsername(req.Username)
	if err != nil || !user.IsAdmin ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
		return
	}

	slog.InfoContext(r.Context(), "admin login", "username", user.Username)
	writeJSON(w, http.StatusOK, LoginResponse{User: LoginUser{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}})
}

// CreateProduct adds a catalog entry.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"description", req.Description},
		{"price", req.Price},
		{"imageUrl", req.ImageURL},
		{"material", req.Material},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if req.Stock < 0 {
		missing = append(missing, "stock")
	}
	if len(missing) > 0 {
		writeDomainError(w, &domain.ValidationError{Fields: missing})
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_price", "price must be a non-negative decimal")
		return
	}

	p, err := h.store.CreateProduct(domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		ImageURL:    req.ImageURL,
		Material:    req.Material,
		Stock:       req.Stock,
		Featured:    req.Featured,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.invalidateCatalog(r.Context())
	writeJSON(w, http.StatusOK, mapProduct(p))
}

// UpdateProduct applies a partial update to a product.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patch := domain.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Material:    req.Material,
		Stock:       req.Stock,
		Featured:    req.Featured,
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_price", "price must be a non-negative decimal")
			return
		}
		patch.Price = &price
	}
	if req.Stock != nil && *req.Stock < 0 {
		writeError(w, http.StatusBadRequest, "invalid_stock", "stock must be non-negative")
		return
	}

	p, err := h.store.UpdateProduct(chi.URLParam(r, "id"), patch)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.invalidateCatalog(r.Context())
	writeJSON(w, http.StatusOK, mapProduct(p))
}

// DeleteProduct removes a product from the catalog.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteProduct(chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	h.invalidateCatalog(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// ListOrders serves all orders, newest first.
func (h *Handler) ListOrders(w http.ResponseWriter, _ *http.Request) {
	orders := h.store.GetAllOrders()
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = mapOrder(o)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetOrderDetail serves one order with its product-joined items.
func (h *Handler) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	order, err := h.store.GetOrder(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	items := h.store.GetOrderItems(id)
	resolved := make([]domain.ResolvedItem, len(items))
	for i, item := range items {
		product, err := h.store.GetProduct(item.ProductID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		resolved[i] = domain.ResolvedItem{OrderItem: item, Product: product}
	}

	writeJSON(w, http.StatusOK, mapReceipt(order, resolved))
}
