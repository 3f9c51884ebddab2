package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisClientForTest(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not reachable at %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisDashboardCache_RoundTrip(t *testing.T) {
	client := redisClientForTest(t)
	cache := NewRedisDashboardCache(client, "acme:test:dashboard:")

	ctx := context.Background()
	sponsorID := uuid.New()
	t.Cleanup(func() { _ = cache.Delete(ctx, sponsorID) })

	got, err := cache.Get(ctx, sponsorID)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, cache.Set(ctx, newDashboard(sponsorID), time.Minute))

	got, err = cache.Get(ctx, sponsorID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sponsorID, got.SponsorID)
	assert.Equal(t, 3, got.TotalNumInvoicesWithLink)

	ttl, err := client.TTL(ctx, "acme:test:dashboard:"+sponsorID.String()).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, cache.Delete(ctx, sponsorID))
	got, err = cache.Get(ctx, sponsorID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisDashboardCache_DefaultPrefix(t *testing.T) {
	cache := NewRedisDashboardCache(nil, "")
	id := uuid.MustParse("7b1e7a0a-3c1f-4d0e-9a43-1f8f2f6b7c11")
	assert.Equal(t, "acme:dashboard:7b1e7a0a-3c1f-4d0e-9a43-1f8f2f6b7c11", cache.key(id))
}
