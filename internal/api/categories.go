package api

import (
	"context"
	"net/http"

	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	var category domain.Category
	if err := c.do(ctx, http.MethodGet, "/categories/"+id, nil, &category); err != nil {
		return domain.Category{}, err
	}
	return category, nil
}

func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (domain.Category, error) {
	var category domain.Category
	if err := c.do(ctx, http.MethodPost, "/categories", in, &category); err != nil {
		return domain.Category{}, err
	}
	return category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in CategoryInput) (domain.Category, error) {
	var category domain.Category
	if err := c.do(ctx, http.MethodPut, "/categories/"+id, in, &category); err != nil {
		return domain.Category{}, err
	}
	return category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+id, nil, nil)
}
