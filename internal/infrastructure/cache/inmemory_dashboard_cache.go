package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultCleanupInterval = 30 * time.Second

type dashboardEntry struct {
	value     *sponsorship.Dashboard
	expiresAt time.Time
}

func (e *dashboardEntry) isExpired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// InMemoryDashboardCache keeps dashboards in process memory. Instances do not
// share state, so it only suits single-instance deployments and tests.
type InMemoryDashboardCache struct {
	entries  sync.Map // uuid.UUID -> *dashboardEntry
	logger   *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once

	hits   atomic.Int64
	misses atomic.Int64
}

// InMemoryDashboardCacheOption configures the cache
type InMemoryDashboardCacheOption func(*InMemoryDashboardCache)

// WithCleanupInterval sets how often expired entries are swept
func WithCleanupInterval(d time.Duration) InMemoryDashboardCacheOption {
	return func(c *InMemoryDashboardCache) {
		c.interval = d
	}
}

// WithCacheLogger sets the logger
func WithCacheLogger(logger *zap.Logger) InMemoryDashboardCacheOption {
	return func(c *InMemoryDashboardCache) {
		c.logger = logger
	}
}

// NewInMemoryDashboardCache creates the cache and starts its sweeper; call Close to stop it
func NewInMemoryDashboardCache(opts ...InMemoryDashboardCacheOption) *InMemoryDashboardCache {
	c := &InMemoryDashboardCache{
		logger:   zap.NewNop(),
		interval: defaultCleanupInterval,
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.cleanupLoop()
	return c
}

// Get returns nil, nil on a miss or an expired entry
func (c *InMemoryDashboardCache) Get(_ context.Context, sponsorID uuid.UUID) (*sponsorship.Dashboard, error) {
	v, ok := c.entries.Load(sponsorID)
	if !ok {
		c.misses.Add(1)
		return nil, nil
	}
	entry := v.(*dashboardEntry)
	if entry.isExpired(time.Now()) {
		c.entries.Delete(sponsorID)
		c.misses.Add(1)
		return nil, nil
	}
	c.hits.Add(1)
	return entry.value, nil
}

// Set stores the dashboard; a non-positive ttl never expires
func (c *InMemoryDashboardCache) Set(_ context.Context, d *sponsorship.Dashboard, ttl time.Duration) error {
	if d == nil {
		return nil
	}
	entry := &dashboardEntry{value: d}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.entries.Store(d.SponsorID, entry)
	return nil
}

// Delete drops the sponsor's dashboard
func (c *InMemoryDashboardCache) Delete(_ context.Context, sponsorID uuid.UUID) error {
	c.entries.Delete(sponsorID)
	return nil
}

// Stats returns the hit and miss counters
func (c *InMemoryDashboardCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Close stops the sweeper
func (c *InMemoryDashboardCache) Close() error {
	c.stopOnce.Do(func() { close(c.stopCh) })
	return nil
}

func (c *InMemoryDashboardCache) cleanupLoop() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stopCh:
			return
		case now := <-ticker.C:
			c.sweep(now)
		}
	}
}

func (c *InMemoryDashboardCache) sweep(now time.Time) {
	removed := 0
	c.entries.Range(func(key, value any) bool {
		if value.(*dashboardEntry).isExpired(now) {
			c.entries.Delete(key)
			removed++
		}
		return true
	})
	if removed > 0 {
		c.logger.Debug("Swept expired dashboards", zap.Int("removed", removed))
	}
}

var _ sponsorship.DashboardCache = (*InMemoryDashboardCache)(nil)
