package cache

import (
	"context"
	"testing"
	"time"

	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboard(sponsorID uuid.UUID) *sponsorship.Dashboard {
	return &sponsorship.Dashboard{
		SponsorID:                sponsorID,
		TotalNumInvoicesWithLink: 3,
		ComputedAt:               time.Now().UTC(),
	}
}

func TestInMemoryDashboardCache_GetSet(t *testing.T) {
	cache := NewInMemoryDashboardCache()
	defer cache.Close()

	ctx := context.Background()
	sponsorID := uuid.New()

	// Miss
	got, err := cache.Get(ctx, sponsorID)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, cache.Set(ctx, newDashboard(sponsorID), time.Minute))

	got, err = cache.Get(ctx, sponsorID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sponsorID, got.SponsorID)
	assert.Equal(t, 3, got.TotalNumInvoicesWithLink)

	hits, misses := cache.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestInMemoryDashboardCache_SetNil(t *testing.T) {
	cache := NewInMemoryDashboardCache()
	defer cache.Close()

	assert.NoError(t, cache.Set(context.Background(), nil, time.Minute))
}

func TestInMemoryDashboardCache_Delete(t *testing.T) {
	cache := NewInMemoryDashboardCache()
	defer cache.Close()

	ctx := context.Background()
	sponsorID := uuid.New()
	require.NoError(t, cache.Set(ctx, newDashboard(sponsorID), time.Minute))

	require.NoError(t, cache.Delete(ctx, sponsorID))

	got, err := cache.Get(ctx, sponsorID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting a missing key is fine
	assert.NoError(t, cache.Delete(ctx, uuid.New()))
}

func TestInMemoryDashboardCache_Expiry(t *testing.T) {
	cache := NewInMemoryDashboardCache()
	defer cache.Close()

	ctx := context.Background()
	sponsorID := uuid.New()
	require.NoError(t, cache.Set(ctx, newDashboard(sponsorID), 10*time.Millisecond))

	time.Sleep(30 * time.Millisecond)

	got, err := cache.Get(ctx, sponsorID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInMemoryDashboardCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewInMemoryDashboardCache()
	defer cache.Close()

	ctx := context.Background()
	sponsorID := uuid.New()
	require.NoError(t, cache.Set(ctx, newDashboard(sponsorID), 0))

	cache.sweep(time.Now().Add(24 * time.Hour))

	got, err := cache.Get(ctx, sponsorID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestInMemoryDashboardCache_Sweep(t *testing.T) {
	cache := NewInMemoryDashboardCache(WithCleanupInterval(time.Hour))
	defer cache.Close()

	ctx := context.Background()
	expired := uuid.New()
	live := uuid.New()
	require.NoError(t, cache.Set(ctx, newDashboard(expired), time.Millisecond))
	require.NoError(t, cache.Set(ctx, newDashboard(live), time.Hour))

	cache.sweep(time.Now().Add(time.Minute))

	_, ok := cache.entries.Load(expired)
	assert.False(t, ok)
	_, ok = cache.entries.Load(live)
	assert.True(t, ok)
}

func TestInMemoryDashboardCache_CloseTwice(t *testing.T) {
	cache := NewInMemoryDashboardCache()
	assert.NoError(t, cache.Close())
	assert.NoError(t, cache.Close())
}
