package cache

import (
	"context"
	"testing"
	"time"

	"github.com/saleslens/pipeline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	product := &domain.Product{ID: 1, Title: "Widget", Category: "tools"}
	err := c.Set(ctx, "product:1", product, time.Minute)
	require.NoError(t, err)

	value, err := c.Get(ctx, "product:1")
	require.NoError(t, err)

	got, ok := value.(*domain.Product)
	require.True(t, ok)
	assert.Equal(t, "Widget", got.Title)
	assert.Equal(t, "tools", got.Category)
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	value, err := c.Get(ctx, "missing")

	assert.Nil(t, value)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", 10*time.Millisecond))

	time.Sleep(20 * time.Millisecond)

	value, err := c.Get(ctx, "key")
	assert.Nil(t, value)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))
	require.NoError(t, c.Delete(ctx, "key"))

	_, err := c.Get(ctx, "key")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_Exists(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	exists, err := c.Exists(ctx, "key")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))

	exists, err = c.Exists(ctx, "key")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "b", 2, time.Minute))
	assert.Equal(t, 2, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}
