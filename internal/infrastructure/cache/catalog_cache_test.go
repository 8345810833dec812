package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cataloghub/backend/internal/domain/catalog"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCatalogCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCatalogCacheWithClient(client, 5*time.Minute), mr
}

func TestRedisCatalogCache_GetSet(t *testing.T) {
	t.Run("returns ErrCacheMiss when empty", func(t *testing.T) {
		cache, _ := newTestCache(t)

		products, err := cache.Get(context.Background())

		assert.ErrorIs(t, err, ErrCacheMiss)
		assert.Nil(t, products)
	})

	t.Run("round-trips a snapshot", func(t *testing.T) {
		cache, _ := newTestCache(t)
		ctx := context.Background()

		snapshot := []catalog.CanonicalProduct{
			catalog.NewCanonicalProduct(catalog.VendorA, "A-001", "Kopi Hitam", 13500, catalog.StockStatusAvailable),
			catalog.NewCanonicalProduct(catalog.VendorC, "C-001", "Soup (Recommended)", 1100, catalog.StockStatusOutOfStock),
		}

		require.NoError(t, cache.Set(ctx, snapshot))

		got, err := cache.Get(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "A-001", got[0].ProductCode)
		assert.Equal(t, int64(13500), got[0].Price)
		assert.Equal(t, catalog.StockStatusOutOfStock, got[1].StockStatus)
	})

	t.Run("snapshot expires after TTL", func(t *testing.T) {
		cache, mr := newTestCache(t)
		ctx := context.Background()

		require.NoError(t, cache.Set(ctx, []catalog.CanonicalProduct{
			catalog.NewCanonicalProduct(catalog.VendorB, "B-001", "Roti Bakar", 9000, catalog.StockStatusAvailable),
		}))

		mr.FastForward(6 * time.Minute)

		_, err := cache.Get(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}

func TestRedisCatalogCache_Invalidate(t *testing.T) {
	t.Run("drops the cached snapshot", func(t *testing.T) {
		cache, _ := newTestCache(t)
		ctx := context.Background()

		require.NoError(t, cache.Set(ctx, []catalog.CanonicalProduct{
			catalog.NewCanonicalProduct(catalog.VendorA, "A-001", "Kopi Hitam", 13500, catalog.StockStatusAvailable),
		}))

		require.NoError(t, cache.Invalidate(ctx))

		_, err := cache.Get(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("invalidating an empty cache is a no-op", func(t *testing.T) {
		cache, _ := newTestCache(t)

		assert.NoError(t, cache.Invalidate(context.Background()))
	})
}
