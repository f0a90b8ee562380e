package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tastetrail/internal/config"
)

type testRecipe struct {
	Title    string
	Servings int
}

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache
}

func TestSetAndGet(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	want := testRecipe{Title: "Pad Thai", Servings: 2}
	require.NoError(t, cache.Set(ctx, RecipesKey, want, time.Minute))

	var got testRecipe
	found, err := cache.Get(ctx, RecipesKey, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}

func TestGet_MissingKey(t *testing.T) {
	cache := setupTestCache(t)

	var got testRecipe
	found, err := cache.Get(context.Background(), "recipes:unknown", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, RecipesKey, testRecipe{Title: "Borscht"}, time.Minute))
	require.NoError(t, cache.Invalidate(ctx, RecipesKey))

	var got testRecipe
	found, err := cache.Get(ctx, RecipesKey, &got)
	require.NoError(t, err)
	assert.False(t, found)
}
