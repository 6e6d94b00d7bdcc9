// Package store holds the record store: keyed in-memory collections of
// products, orders, order items, and users. Every read returns a copy, so
// no result is invalidated by a later write.
package store

import (
	"github.com/shopspring/decimal"

	"github.com/luxecuffs/storefront/internal/storefront/domain"
)

// ProductFilter is a conjunctive filter; zero-valued criteria are no-ops.
type ProductFilter struct {
	Material string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// StockLine is a (product, quantity) pair used for reservation.
type StockLine struct {
	ProductID string
	Quantity  int
}

// Store is the port the orchestrator and HTTP layer depend on.
// The in-memory implementation lives in this package; tests may substitute
// their own.
type Store interface {
	// Users
	GetUser(id string) (domain.User, error)
	GetUserByUsername(username string) (domain.User, error)
	CreateUser(user domain.User) (domain.User, error)

	// Products
	GetAllProducts() []domain.Product
	GetProduct(id string) (domain.Product, error)
	GetFeaturedProducts() []domain.Product
	CreateProduct(p domain.Product) (domain.Product, error)
	UpdateProduct(id string, patch domain.ProductPatch) (domain.Product, error)
	DeleteProduct(id string) error
	SearchProducts(query string) []domain.Product
	FilterProducts(f ProductFilter) []domain.Product

	// Stock reservation. ReserveStock decrements every line or none;
	// RestoreStock is its inverse, used by pipeline compensation.
	ReserveStock(lines []StockLine) error
	RestoreStock(lines []StockLine)

	// Orders
	CreateOrder(o domain.Order) (domain.Order, error)
	GetOrder(id string) (domain.Order, error)
	GetAllOrders() []domain.Order
	UpdateOrderPaymentStatus(id string, status domain.PaymentStatus, paymentIntentID string) (domain.Order, error)

	// Order items
	CreateOrderItem(item domain.OrderItem) (domain.OrderItem, error)
	GetOrderItems(orderID string) []domain.OrderItem
}
