package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/holyfit/holyfit-api/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := &Client{
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient("redis://"+mr.Addr(), logger.Nop())
	require.NoError(t, err)
	defer client.Close()
	assert.NoError(t, client.Ping(context.Background()))

	_, err = NewClient("://bad", logger.Nop())
	assert.Error(t, err)
}

func TestClient_SetGet(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "key", "value", time.Minute))

	val, err := client.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", val)

	_, err = client.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestClient_JSON(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	type payload struct {
		Tier  string `json:"tier"`
		Count int    `json:"count"`
	}

	require.NoError(t, client.SetJSON(ctx, "json", payload{Tier: "pro", Count: 2}, time.Minute))

	var got payload
	require.NoError(t, client.GetJSON(ctx, "json", &got))
	assert.Equal(t, payload{Tier: "pro", Count: 2}, got)

	assert.ErrorIs(t, client.GetJSON(ctx, "absent", &got), ErrMiss)

	require.NoError(t, client.Set(ctx, "garbage", "{not json", 0))
	assert.Error(t, client.GetJSON(ctx, "garbage", &got))
}

func TestClient_DeleteAndExists(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "a", "1", 0))
	exists, err := client.Exists(ctx, "a")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, client.Delete(ctx, "a"))
	exists, err = client.Exists(ctx, "a")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClient_DeletePattern(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()

	for _, key := range []string{"view:s1:diet", "view:s1:workout", "view:s2:diet"} {
		require.NoError(t, client.Set(ctx, key, "x", 0))
	}

	deleted, err := client.DeletePattern(ctx, "view:s1:*")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.False(t, mr.Exists("view:s1:diet"))
	assert.True(t, mr.Exists("view:s2:diet"))
}

func TestClient_TTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "ttl", "x", time.Hour))
	ttl, err := client.TTL(ctx, "ttl")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	mr.FastForward(2 * time.Hour)
	assert.False(t, mr.Exists("ttl"))
}
