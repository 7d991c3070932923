package services

import (
	"context"
	"github-summarizer-api/internal/pkg/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheService_SetGetDelete(t *testing.T) {
	mr, cache := newMiniredisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "readme:a/b", "hello", time.Minute))

	raw, err := cache.Get(ctx, "readme:a/b")
	require.NoError(t, err)
	assert.Equal(t, `"hello"`, raw)

	mr.FastForward(2 * time.Minute)
	_, err = cache.Get(ctx, "readme:a/b")
	assert.True(t, errors.Is(err, errors.ErrCacheMiss))

	require.NoError(t, cache.Set(ctx, "readme:c/d", map[string]string{"k": "v"}, 0))
	require.NoError(t, cache.Delete(ctx, "readme:c/d"))
	_, err = cache.Get(ctx, "readme:c/d")
	assert.True(t, errors.Is(err, errors.ErrCacheMiss))
}

func TestRedisCacheService_ErrorIsNotMiss(t *testing.T) {
	mr, cache := newMiniredisCache(t)
	mr.SetError("LOADING")

	_, err := cache.Get(context.Background(), "readme:a/b")
	assert.True(t, errors.Is(err, errors.ErrCacheError))
	assert.False(t, errors.Is(err, errors.ErrCacheMiss))
}

func TestRedisCacheService_SetUnmarshalable(t *testing.T) {
	_, cache := newMiniredisCache(t)
	err := cache.Set(context.Background(), "bad", make(chan int), time.Minute)
	assert.Error(t, err)
}
