package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry for a single item the store sells.
// Price is a fixed-point decimal; it is copied, never referenced, into
// order items so historical orders survive later price changes.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Material    string
	Stock       int
	Featured    bool
	CreatedAt   time.Time
}

// ProductPatch carries a partial product update. Nil fields are left
// untouched, matching the PUT /api/admin/products/{id} contract.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	ImageURL    *string
	Material    *string
	Stock       *int
	Featured    *bool
}
