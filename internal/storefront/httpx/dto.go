package httpx

import (
	"time"

	"github.com/luxecuffs/storefront/internal/storefront/domain"
)

// Monetary values cross the wire as decimal strings with exactly two
// fraction digits; identifiers are opaque strings.

type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Material    string `json:"material"`
	Stock       int    `json:"stock"`
	Featured    bool   `json:"featured"`
	CreatedAt   string `json:"createdAt"`
}

type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Material    string `json:"material"`
	Stock       int    `json:"stock"`
	Featured    bool   `json:"featured"`
}

// UpdateProductRequest is a partial update; absent fields stay unchanged.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	ImageURL    *string `json:"imageUrl"`
	Material    *string `json:"material"`
	Stock       *int    `json:"stock"`
	Featured    *bool   `json:"featured"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User LoginUser `json:"user"`
}

type LoginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type PaymentIntentRequest struct {
	Amount  string `json:"amount"`
	OrderID string `json:"orderId,omitempty"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type CreateOrderRequest struct {
	OrderData OrderDataDTO   `json:"orderData"`
	Items     []OrderLineDTO `json:"items"`
}

type OrderDataDTO struct {
	CustomerFirstName string `json:"customerFirstName"`
	CustomerLastName  string `json:"customerLastName"`
	CustomerEmail     string `json:"customerEmail"`
	CustomerPhone     string `json:"customerPhone"`
	ShippingStreet    string `json:"shippingStreet"`
	ShippingCity      string `json:"shippingCity"`
	ShippingState     string `json:"shippingState"`
	ShippingZipCode   string `json:"shippingZipCode"`
}

type OrderLineDTO struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type PaymentSuccessRequest struct {
	OrderID         string `json:"orderId"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type PaymentSuccessResponse struct {
	Success bool `json:"success"`
}

type OrderResponse struct {
	ID                string `json:"id"`
	CustomerFirstName string `json:"customerFirstName"`
	CustomerLastName  string `json:"customerLastName"`
	CustomerEmail     string `json:"customerEmail"`
	CustomerPhone     string `json:"customerPhone"`
	ShippingStreet    string `json:"shippingStreet"`
	ShippingCity      string `json:"shippingCity"`
	ShippingState     string `json:"shippingState"`
	ShippingZipCode   string `json:"shippingZipCode"`
	Subtotal          string `json:"subtotal"`
	Shipping          string `json:"shipping"`
	Tax               string `json:"tax"`
	Total             string `json:"total"`
	PaymentStatus     string `json:"paymentStatus"`
	PaymentIntentID   string `json:"paymentIntentId,omitempty"`
	CreatedAt         string `json:"createdAt"`
}

type OrderItemResponse struct {
	ID        string `json:"id"`
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// ResolvedItemResponse is an order item joined with its product.
type ResolvedItemResponse struct {
	OrderItemResponse
	Product ProductResponse `json:"product"`
}

type ReceiptResponse struct {
	Order OrderResponse          `json:"order"`
	Items []ResolvedItemResponse `json:"items"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// --- mapping ---

func mapProduct(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		ImageURL:    p.ImageURL,
		Material:    p.Material,
		Stock:       p.Stock,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func mapProducts(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = mapProduct(p)
	}
	return out
}

func mapOrder(o domain.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		CustomerFirstName: o.CustomerFirstName,
		CustomerLastName:  o.CustomerLastName,
		CustomerEmail:     o.CustomerEmail,
		CustomerPhone:     o.CustomerPhone,
		ShippingStreet:    o.ShippingStreet,
		ShippingCity:      o.ShippingCity,
		ShippingState:     o.ShippingState,
		ShippingZipCode:   o.ShippingZipCode,
		Subtotal:          o.Subtotal.StringFixed(2),
		Shipping:          o.Shipping.StringFixed(2),
		Tax:               o.Tax.StringFixed(2),
		Total:             o.Total.StringFixed(2),
		PaymentStatus:     string(o.PaymentStatus),
		PaymentIntentID:   o.PaymentIntentID,
		CreatedAt:         o.CreatedAt.Format(time.RFC3339),
	}
}

func mapOrderItem(item domain.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price.StringFixed(2),
	}
}

func mapReceipt(order domain.Order, items []domain.ResolvedItem) ReceiptResponse {
	out := ReceiptResponse{
		Order: mapOrder(order),
		Items: make([]ResolvedItemResponse, len(items)),
	}
	for i, item := range items {
		out.Items[i] = ResolvedItemResponse{
			OrderItemResponse: mapOrderItem(item.OrderItem),
			Product:           mapProduct(item.Product),
		}
	}
	return out
}
