package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

type createSaleRequest struct {
	Items []domain.SaleItemInput `json:"items"`
}

// CreateSale submits one batched sale. Only product ids and quantities go
// over the wire; the server re-validates stock and prices the sale.
func (c *Client) CreateSale(ctx context.Context, items []domain.SaleItemInput) (domain.Sale, error) {
	var sale domain.Sale
	if err := c.do(ctx, http.MethodPost, "/sales", createSaleRequest{Items: items}, &sale); err != nil {
		return domain.Sale{}, err
	}
	return sale, nil
}

func (c *Client) ListSales(ctx context.Context) ([]domain.Sale, error) {
	var sales []domain.Sale
	if err := c.do(ctx, http.MethodGet, "/sales", nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// ListMySales returns only the sales registered by the current seller.
func (c *Client) ListMySales(ctx context.Context) ([]domain.Sale, error) {
	var sales []domain.Sale
	if err := c.do(ctx, http.MethodGet, "/sales/my-sales", nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// SalesReport fetches the daily report; date is YYYY-MM-DD.
func (c *Client) SalesReport(ctx context.Context, date string) (domain.SalesReport, error) {
	var report domain.SalesReport
	path := "/sales/report?date=" + url.QueryEscape(date)
	if err := c.do(ctx, http.MethodGet, path, nil, &report); err != nil {
		return domain.SalesReport{}, err
	}
	return report, nil
}
