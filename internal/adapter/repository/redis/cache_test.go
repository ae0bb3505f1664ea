package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := startRedis(t)

	cache := NewCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "fiscal_year:fy-1", []byte(`{"ID":"fy-1"}`), time.Minute))

	val, err := cache.Get(ctx, "fiscal_year:fy-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ID":"fy-1"}`, string(val))

	assert.True(t, mr.Exists("fiscledger:cache:fiscal_year:fy-1"))
}

func TestCacheMissReturnsNil(t *testing.T) {
	client, _ := startRedis(t)

	val, err := NewCache(client).Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheExpiry(t *testing.T) {
	client, mr := startRedis(t)

	cache := NewCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	mr.FastForward(2 * time.Minute)

	val, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheDelete(t *testing.T) {
	client, _ := startRedis(t)

	cache := NewCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "foo", []byte("bar"), time.Minute))
	require.NoError(t, cache.Delete(ctx, "foo"))

	val, err := cache.Get(ctx, "foo")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheGetError(t *testing.T) {
	client, mr := startRedis(t)

	mr.Close()

	_, err := NewCache(client).Get(context.Background(), "foo")
	assert.Error(t, err)
}
