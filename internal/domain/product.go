package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is owned by the remote inventory API; this client never mutates
// product data, it only proposes sales against it. SalePrice travels as
// exact decimal text on the wire, never as a float.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Description  string          `json:"description,omitempty"`
	CurrentStock int             `json:"currentStock"`
	SalePrice    decimal.Decimal `json:"salePrice"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Sellable reports whether the product may appear in a catalog snapshot.
// Stock is authoritative only at snapshot time; the server re-validates.
func (p Product) Sellable() bool {
	return p.IsActive && p.CurrentStock > 0
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
