package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultDashboardKeyPrefix = "acme:dashboard:"

// RedisDashboardCache stores dashboards as JSON, one key per sponsor
type RedisDashboardCache struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisDashboardCache creates a cache over an existing client
func NewRedisDashboardCache(client redis.UniversalClient, keyPrefix string) *RedisDashboardCache {
	if keyPrefix == "" {
		keyPrefix = defaultDashboardKeyPrefix
	}
	return &RedisDashboardCache{client: client, keyPrefix: keyPrefix}
}

func (c *RedisDashboardCache) key(sponsorID uuid.UUID) string {
	return c.keyPrefix + sponsorID.String()
}

// Get returns nil, nil on a miss
func (c *RedisDashboardCache) Get(ctx context.Context, sponsorID uuid.UUID) (*sponsorship.Dashboard, error) {
	data, err := c.client.Get(ctx, c.key(sponsorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dashboard cache: %w", err)
	}

	var d sponsorship.Dashboard
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode cached dashboard: %w", err)
	}
	return &d, nil
}

// Set stores the dashboard under its sponsor id
func (c *RedisDashboardCache) Set(ctx context.Context, d *sponsorship.Dashboard, ttl time.Duration) error {
	if d == nil {
		return nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode dashboard: %w", err)
	}
	if err := c.client.Set(ctx, c.key(d.SponsorID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write dashboard cache: %w", err)
	}
	return nil
}

// Delete drops the sponsor's dashboard
func (c *RedisDashboardCache) Delete(ctx context.Context, sponsorID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(sponsorID)).Err(); err != nil {
		return fmt.Errorf("failed to delete dashboard cache: %w", err)
	}
	return nil
}

var _ sponsorship.DashboardCache = (*RedisDashboardCache)(nil)
