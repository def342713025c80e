package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemInput is what the client proposes to the sales API: identifiers
// and quantities only. Prices are intentionally absent, the server owns
// them and the matching stock decrement.
type SaleItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type SaleItem struct {
	ID          string          `json:"id"`
	SaleID      string          `json:"saleId"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type Sale struct {
	ID          string          `json:"id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	SellerID    string          `json:"sellerId"`
	SellerName  string          `json:"sellerName"`
	SaleDate    time.Time       `json:"saleDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	Items       []SaleItem      `json:"items"`
}

type ReportSummary struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalSales  int             `json:"totalSales"`
	TotalItems  int             `json:"totalItems"`
}

// SalesReport aggregates one day of sales, as returned by
// GET /sales/report?date=YYYY-MM-DD.
type SalesReport struct {
	Date    string        `json:"date"`
	Summary ReportSummary `json:"summary"`
	Sales   []Sale        `json:"sales"`
}
