package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute)

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	c.Set(ctx, "k", []byte("v"), time.Minute)
	v, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), v)
	assert.Equal(t, 1, c.store.ItemCount())

	c.Set(ctx, "short", []byte("x"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	_, ok = c.Get(ctx, "short")
	assert.False(t, ok)
}

func TestRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(ctx, "redis://"+mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	c := NewRedis(client)

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	c.Set(ctx, "k", []byte("v"), time.Hour)
	v, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), v)
	assert.True(t, mr.Exists(keyPrefix+"k"))

	mr.FastForward(2 * time.Hour)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestRedisUnavailableIsAMiss(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	c := NewRedis(client)

	mr.Close()

	c.Set(ctx, "k", []byte("v"), time.Minute)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "://nope", "", 0)
	assert.Error(t, err)
}
