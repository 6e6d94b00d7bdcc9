package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luxecuffs/storefront/internal/storefront/domain"
)

// Ensure Memory implements the port at compile time.
var _ Store = (*Memory)(nil)

// Memory is the in-memory implementation of Store, guarded by a single
// RWMutex. Reads copy values out of the maps before returning them.
type Memory struct {
	mu         sync.RWMutex
	users      map[string]domain.User
	products   map[string]domain.Product
	orders     map[string]domain.Order
	orderItems map[string]domain.OrderItem
}

func NewMemory() *Memory {
	return &Memory{
		users:      make(map[string]domain.User),
		products:   make(map[string]domain.Product),
		orders:     make(map[string]domain.Order),
		orderItems: make(map[string]domain.OrderItem),
	}
}

// --- Users ---

func (m *Memory) GetUser(id string) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return domain.User{}, &domain.NotFoundError{Kind: "user", ID: id}
	}
	return u, nil
}

func (m *Memory) GetUserByUsername(username string) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, &domain.NotFoundError{Kind: "user", ID: username}
}

func (m *Memory) CreateUser(user domain.User) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = uuid.NewString()
	m.users[user.ID] = user
	return user, nil
}

// --- Products ---

func (m *Memory) GetAllProducts() []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	sortNewestFirst(out, func(p domain.Product) time.Time { return p.CreatedAt })
	return out
}

func (m *Memory) GetProduct(id string) (domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return domain.Product{}, &domain.NotFoundError{Kind: "product", ID: id}
	}
	return p, nil
}

func (m *Memory) GetFeaturedProducts() []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.Product
	for _, p := range m.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	sortNewestFirst(out, func(p domain.Product) time.Time { return p.CreatedAt })
	return out
}

func (m *Memory) CreateProduct(p domain.Product) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	m.products[p.ID] = p
	return p, nil
}

func (m *Memory) UpdateProduct(id string, patch domain.ProductPatch) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return domain.Product{}, &domain.NotFoundError{Kind: "product", ID: id}
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Material != nil {
		p.Material = *patch.Material
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	m.products[id] = p
	return p, nil
}

func (m *Memory) DeleteProduct(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return &domain.NotFoundError{Kind: "product", ID: id}
	}
	delete(m.products, id)
	return nil
}

func (m *Memory) SearchProducts(query string) []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(query)
	var out []domain.Product
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Material), q) {
			out = append(out, p)
		}
	}
	return out
}

func (m *Memory) FilterProducts(f ProductFilter) []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.Product
	for _, p := range m.products {
		if f.Material != "" && p.Material != f.Material {
			continue
		}
		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// --- Stock ---

// ReserveStock checks every line before decrementing any, so a failed call
// leaves stock untouched. The mutex makes the check-and-decrement atomic
// against concurrent checkouts.
func (m *Memory) ReserveStock(lines []StockLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, line := range lines {
		p, ok := m.products[line.ProductID]
		if !ok {
			return &domain.NotFoundError{Kind: "product", ID: line.ProductID}
		}
		if line.Quantity > p.Stock {
			return &domain.InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Requested:   line.Quantity,
				Available:   p.Stock,
			}
		}
	}

	for _, line := range lines {
		p := m.products[line.ProductID]
		p.Stock -= line.Quantity
		m.products[line.ProductID] = p
	}
	return nil
}

// RestoreStock adds the quantities back. Products deleted since the
// reservation are skipped; there is nothing left to restore onto.
func (m *Memory) RestoreStock(lines []StockLine) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, line := range lines {
		p, ok := m.products[line.ProductID]
		if !ok {
			continue
		}
		p.Stock += line.Quantity
		m.products[line.ProductID] = p
	}
}

// --- Orders ---

func (m *Memory) CreateOrder(o domain.Order) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// The orchestrator mints the order id up front so the checkout log can
	// be keyed by it before the order row exists.
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = domain.PaymentPending
	}
	o.CreatedAt = time.Now().UTC()
	m.orders[o.ID] = o
	return o, nil
}

func (m *Memory) GetOrder(id string) (domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.orders[id]
	if !ok {
		return domain.Order{}, &domain.NotFoundError{Kind: "order", ID: id}
	}
	return o, nil
}

func (m *Memory) GetAllOrders() []domain.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	sortNewestFirst(out, func(o domain.Order) time.Time { return o.CreatedAt })
	return out
}

func (m *Memory) UpdateOrderPaymentStatus(id string, status domain.PaymentStatus, paymentIntentID string) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[id]
	if !ok {
		return domain.Order{}, &domain.NotFoundError{Kind: "order", ID: id}
	}
	o.PaymentStatus = status
	if paymentIntentID != "" {
		o.PaymentIntentID = paymentIntentID
	}
	m.orders[id] = o
	return o, nil
}

// --- Order items ---

func (m *Memory) CreateOrderItem(item domain.OrderItem) (domain.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item.ID = uuid.NewString()
	m.orderItems[item.ID] = item
	return item, nil
}

func (m *Memory) GetOrderItems(orderID string) []domain.OrderItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.OrderItem
	for _, item := range m.orderItems {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out
}

func sortNewestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.Slice(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}
