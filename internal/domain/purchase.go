package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder records restocking: the admin buys quantity units at
// CostPrice and sets the new SalePrice; the server increments stock.
type PurchaseOrder struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId"`
	Quantity      int             `json:"quantity"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	Supplier      string          `json:"supplier,omitempty"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
	CreatedBy     string          `json:"createdBy"`
	CreatedAt     time.Time       `json:"createdAt"`
	Product       *Product        `json:"product,omitempty"`
}
