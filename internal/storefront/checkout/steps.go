package checkout

import (
	"context"
	"fmt"

	"github.com/luxecuffs/storefront/internal/storefront/domain"
	"github.com/luxecuffs/storefront/internal/storefront/store"
)

// --- reserveStockStep ---

// reserveStockStep decrements stock for every line, all or nothing. Its
// compensation restores the exact quantities, so a failure later in the
// pipeline leaves stock as it was before the checkout.
type reserveStockStep struct {
	store    store.Store
	lines    []store.StockLine
	reserved bool
}

func newReserveStockStep(s store.Store, lines []store.StockLine) *reserveStockStep {
	return &reserveStockStep{store: s, lines: lines}
}

func (s *reserveStockStep) Name() string { return "Reserve_Stock_Step" }

func (s *reserveStockStep) Execute(context.Context) error {
	if err := s.store.ReserveStock(s.lines); err != nil {
		return err
	}
	s.reserved = true
	return nil
}

func (s *reserveStockStep) Compensate(context.Context) error {
	if !s.reserved {
		return nil
	}
	s.store.RestoreStock(s.lines)
	return nil
}

// --- persistOrderStep ---

// persistOrderStep writes the pending order and its line items. The
// created order and items are captured for the caller.
type persistOrderStep struct {
	store store.Store
	draft domain.Order
	items []domain.OrderItem

	// Set by Execute.
	order   domain.Order
	created []domain.OrderItem
}

func newPersistOrderStep(s store.Store, draft domain.Order, items []domain.OrderItem) *persistOrderStep {
	return &persistOrderStep{store: s, draft: draft, items: items}
}

func (s *persistOrderStep) Name() string { return "Persist_Order_Step" }

func (s *persistOrderStep) Execute(context.Context) error {
	order, err := s.store.CreateOrder(s.draft)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	s.order = order

	s.created = make([]domain.OrderItem, 0, len(s.items))
	for _, item := range s.items {
		item.OrderID = order.ID
		created, err := s.store.CreateOrderItem(item)
		if err != nil {
			return fmt.Errorf("create order item for product %s: %w", item.ProductID, err)
		}
		s.created = append(s.created, created)
	}
	return nil
}

func (s *persistOrderStep) Compensate(context.Context) error {
	// Last step in the pipeline; nothing downstream can fail after it.
	return nil
}
