package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client), mr
}

func sampleSnapshot() []domain.Product {
	return []domain.Product{
		{
			ID:           "p1",
			Name:         "Widget",
			SKU:          "W1",
			SalePrice:    decimal.NewFromInt(1000),
			CurrentStock: 5,
			IsActive:     true,
		},
	}
}

func TestGet_Success(t *testing.T) {
	cache, mr := setupTestRedis(t)

	data, err := json.Marshal(sampleSnapshot())
	require.NoError(t, err)
	require.NoError(t, mr.Set(snapshotKey, string(data)))

	products, err := cache.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "W1", products[0].SKU)
	assert.Equal(t, "1000", products[0].SalePrice.String())
}

func TestGet_CacheMiss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	products, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, products)
}

func TestGet_InvalidJSON(t *testing.T) {
	cache, mr := setupTestRedis(t)
	require.NoError(t, mr.Set(snapshotKey, "not-json"))

	_, err := cache.Get(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestSet_RoundTrip(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, sampleSnapshot()))
	assert.True(t, mr.Exists(snapshotKey))

	products, err := cache.Get(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
}

func TestSet_AppliesTTL(t *testing.T) {
	cache, mr := setupTestRedis(t)

	require.NoError(t, cache.Set(context.Background(), sampleSnapshot()))

	ttl := mr.TTL(snapshotKey)
	assert.GreaterOrEqual(t, ttl, cache.baseTTL)
}

func TestInvalidate(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, sampleSnapshot()))
	require.NoError(t, cache.Invalidate(ctx))

	assert.False(t, mr.Exists(snapshotKey))

	_, err := cache.Get(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}
