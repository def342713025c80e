package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

type CreatePurchaseInput struct {
	ProductID     string          `json:"productId"`
	Quantity      int             `json:"quantity"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Supplier      string          `json:"supplier,omitempty"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
	PurchaseDate  string          `json:"purchaseDate"`
}

func (c *Client) ListPurchases(ctx context.Context) ([]domain.PurchaseOrder, error) {
	var purchases []domain.PurchaseOrder
	if err := c.do(ctx, http.MethodGet, "/purchases", nil, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

// CreatePurchase registers a restock; the server increments stock and
// updates the product's sale price.
func (c *Client) CreatePurchase(ctx context.Context, in CreatePurchaseInput) (domain.PurchaseOrder, error) {
	var purchase domain.PurchaseOrder
	if err := c.do(ctx, http.MethodPost, "/purchases", in, &purchase); err != nil {
		return domain.PurchaseOrder{}, err
	}
	return purchase, nil
}
