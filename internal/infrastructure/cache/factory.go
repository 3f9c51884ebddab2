package cache

import (
	"fmt"
	"io"

	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/acme/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DashboardCacheFactory picks the dashboard cache backend from configuration
type DashboardCacheFactory struct {
	redisConfig           config.RedisConfig
	client                *redis.Client
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// FactoryOption is a functional option for configuring the factory
type FactoryOption func(*DashboardCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *DashboardCacheFactory) {
		f.logger = logger
	}
}

// WithRedisClient reuses an already connected client instead of dialing again
func WithRedisClient(client *redis.Client) FactoryOption {
	return func(f *DashboardCacheFactory) {
		f.client = client
	}
}

// WithInMemoryFallback controls whether an unreachable Redis degrades to the
// in-memory cache. Default is true.
func WithInMemoryFallback(allow bool) FactoryOption {
	return func(f *DashboardCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewDashboardCacheFactory creates a new factory
func NewDashboardCacheFactory(cfg config.RedisConfig, opts ...FactoryOption) *DashboardCacheFactory {
	f := &DashboardCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns the Redis cache when Redis is enabled and reachable,
// otherwise the in-memory cache if fallback is allowed.
func (f *DashboardCacheFactory) Create() (sponsorship.DashboardCache, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("Redis disabled, using in-memory dashboard cache")
		return NewInMemoryDashboardCache(WithCacheLogger(f.logger)), nil
	}

	client := f.client
	if client == nil {
		var err error
		client, err = NewRedisClient(f.redisConfig)
		if err != nil {
			if !f.allowInMemoryFallback {
				return nil, fmt.Errorf("redis required for dashboard cache but unavailable: %w", err)
			}
			f.logger.Warn("Redis unavailable, falling back to in-memory dashboard cache; instances will not share dashboards",
				zap.Error(err),
			)
			return NewInMemoryDashboardCache(WithCacheLogger(f.logger)), nil
		}
	}

	f.logger.Info("Using Redis dashboard cache", zap.String("addr", f.redisConfig.Addr()))
	return NewRedisDashboardCache(client, ""), nil
}

// Close releases whatever the cache holds on its own, such as the in-memory
// sweeper. The Redis cache shares its client and has nothing to release.
func Close(c sponsorship.DashboardCache) error {
	if closer, ok := c.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
