// Package catalog produces the snapshot of sellable products the sell
// page works against. A snapshot is immutable per load: stock counts in
// it are authoritative only at load time and the server re-checks at sale
// creation.
package catalog

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/pablonunez10/genex-store-inventory-front/internal/catalog/cache"
	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

const cacheSetTimeout = time.Second

// ProductLister is the slice of the products API this package needs.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type Loader struct {
	products ProductLister
	cache    cache.SnapshotCache // nil disables caching
	logger   *zap.Logger
	sfg      singleflight.Group // collapses concurrent loads of the same snapshot
}

type LoaderOption func(*Loader)

func WithCache(c cache.SnapshotCache) LoaderOption {
	return func(l *Loader) { l.cache = c }
}

func NewLoader(products ProductLister, logger *zap.Logger, opts ...LoaderOption) *Loader {
	l := &Loader{
		products: products,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Snapshot returns the current sellable products: active with stock on
// hand. A load failure is logged and yields an empty snapshot; callers
// must read empty as "nothing purchasable", not as confirmed absence.
func (l *Loader) Snapshot(ctx context.Context) []domain.Product {
	v, err, _ := l.sfg.Do("snapshot", func() (interface{}, error) {
		if l.cache != nil {
			cached, errGet := l.cache.Get(ctx)
			if errGet == nil {
				return cached, nil
			}
			if !errors.Is(errGet, cache.ErrCacheMiss) {
				l.logger.Warn("catalog cache get failed", zap.Error(errGet))
			}
		}

		listed, errList := l.products.ListProducts(ctx)
		if errList != nil {
			return nil, errList
		}

		snapshot := Sellable(listed)

		if l.cache != nil {
			go func() {
				ctxSet, cancel := context.WithTimeout(context.Background(), cacheSetTimeout)
				defer cancel()
				if errSet := l.cache.Set(ctxSet, snapshot); errSet != nil {
					l.logger.Warn("catalog cache set failed", zap.Error(errSet))
				}
			}()
		}

		return snapshot, nil
	})
	if err != nil {
		l.logger.Error("catalog load failed", zap.Error(err))
		return []domain.Product{}
	}

	return v.([]domain.Product)
}

// Sellable filters out inactive and out-of-stock products.
func Sellable(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Sellable() {
			out = append(out, p)
		}
	}
	return out
}
