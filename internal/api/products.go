package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

type CreateProductInput struct {
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description,omitempty"`
	SalePrice   decimal.Decimal `json:"salePrice"`
}

type UpdateProductInput struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	SalePrice   *decimal.Decimal `json:"salePrice,omitempty"`
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, nil, &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

func (c *Client) CreateProduct(ctx context.Context, in CreateProductInput) (domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodPost, "/products", in, &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+id, in, &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

// DeleteProduct deactivates the product server-side; it stops appearing in
// catalog snapshots but stays referenced by historical sales.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+id, nil, nil)
}
