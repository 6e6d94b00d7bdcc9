package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed or missing checkout input. The caller
// can resubmit with the offending fields fixed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

// NotFoundError signals that a referenced entity does not exist.
type NotFoundError struct {
	Kind string // "product", "order", "user"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InsufficientStockError is a business-rule violation: the requested
// quantity exceeds the product's available stock.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

// GatewayError signals that the payment provider rejected or failed a
// request. The order, if any, stays pending.
type GatewayError struct {
	Reason string
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment gateway: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("payment gateway: %s", e.Reason)
}

func (e *GatewayError) Unwrap() error { return e.Err }
