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

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	// Create miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)

	// Create Redis client
	opts := &redis.Options{
		Addr: mr.Addr(),
	}
	redisClient := redis.NewClient(opts)

	client := &Client{
		Redis: redisClient,
	}

	return client, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	// Set a value
	err := client.Set(ctx, "test:key1", "value1", 1*time.Hour)
	require.NoError(t, err)

	// Get the value
	val, err := client.Get(ctx, "test:key1")
	require.NoError(t, err)
	assert.Equal(t, "value1", val)
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	// Set values
	_ = client.Set(ctx, "test:key1", "value1", 1*time.Hour)
	_ = client.Set(ctx, "test:key2", "value2", 1*time.Hour)

	// Delete one key
	err := client.Delete(ctx, "test:key1")
	require.NoError(t, err)

	// Verify deletion
	_, err = client.Get(ctx, "test:key1")
	assert.Error(t, err) // Should be redis.Nil error

	// Other key should still exist
	val, err := client.Get(ctx, "test:key2")
	require.NoError(t, err)
	assert.Equal(t, "value2", val)
}

func TestClient_Exists(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	// Key doesn't exist
	exists, err := client.Exists(ctx, "test:nonexistent")
	require.NoError(t, err)
	assert.False(t, exists)

	// Set key
	_ = client.Set(ctx, "test:exists", "value", 1*time.Hour)

	// Key exists
	exists, err = client.Exists(ctx, "test:exists")
	require.NoError(t, err)
	assert.True(t, exists)
}

type runSummary struct {
	Status   string `json:"status"`
	Inserted int    `json:"inserted"`
	Updated  int    `json:"updated"`
	Skipped  int    `json:"skipped"`
}

func TestClient_LastSyncRunRoundTrip(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	in := runSummary{Status: "completed", Inserted: 5, Updated: 2, Skipped: 1}
	err := client.SetLastSyncRun(ctx, in, 1*time.Hour)
	require.NoError(t, err)

	var out runSummary
	err = client.GetLastSyncRun(ctx, &out)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestClient_GetLastSyncRun_Empty(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	var out runSummary
	err := client.GetLastSyncRun(context.Background(), &out)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestClient_TTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	// Set key with 10 second expiration
	_ = client.Set(ctx, "test:ttl", "value", 10*time.Second)

	// Check TTL
	ttl, err := client.TTL(ctx, "test:ttl")
	require.NoError(t, err)
	assert.Greater(t, ttl.Seconds(), 9.0) // Should be close to 10s
	assert.LessOrEqual(t, ttl.Seconds(), 10.0)
}

func TestClient_Expire(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	// Set key with 1 hour expiration
	_ = client.Set(ctx, "test:expire", "value", 1*time.Hour)

	// Change expiration to 5 seconds
	err := client.Expire(ctx, "test:expire", 5*time.Second)
	require.NoError(t, err)

	// Verify new TTL
	ttl, err := client.TTL(ctx, "test:expire")
	require.NoError(t, err)
	assert.Greater(t, ttl.Seconds(), 4.0)
	assert.LessOrEqual(t, ttl.Seconds(), 5.0)
}
