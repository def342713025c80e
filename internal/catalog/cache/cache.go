package cache

import (
	"context"
	"errors"

	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

// SnapshotCache holds the last catalog snapshot so several terminals in
// one store can share a load. Cache failures are advisory; the loader
// falls through to the API.
type SnapshotCache interface {
	Get(ctx context.Context) ([]domain.Product, error)
	Set(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
