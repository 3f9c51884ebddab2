package sponsor

import (
	"context"
	"fmt"
	"time"

	"github.com/acme/backend/internal/application/form"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/acme/backend/internal/domain/system"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultDashboardTTL is used when no TTL is configured
const DefaultDashboardTTL = 5 * time.Minute

// DashboardService computes and caches sponsor dashboards
type DashboardService struct {
	sponsorships sponsorship.SponsorshipRepository
	invoices     sponsorship.InvoiceRepository
	settings     system.ConfigurationRepository
	profiles     identity.RoleProfileRepository
	cache        sponsorship.DashboardCache
	ttl          time.Duration
	logger       *zap.Logger
}

// DashboardServiceOption configures a DashboardService
type DashboardServiceOption func(*DashboardService)

// WithDashboardCache caches computed dashboards for ttl
func WithDashboardCache(cache sponsorship.DashboardCache, ttl time.Duration) DashboardServiceOption {
	return func(s *DashboardService) {
		s.cache = cache
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	sponsorships sponsorship.SponsorshipRepository,
	invoices sponsorship.InvoiceRepository,
	settings system.ConfigurationRepository,
	profiles identity.RoleProfileRepository,
	logger *zap.Logger,
	opts ...DashboardServiceOption,
) *DashboardService {
	s := &DashboardService{
		sponsorships: sponsorships,
		invoices:     invoices,
		settings:     settings,
		profiles:     profiles,
		ttl:          DefaultDashboardTTL,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Show returns the calling sponsor's dashboard
func (s *DashboardService) Show(ctx context.Context, req form.Request) (*DashboardResponse, error) {
	sponsorID, ok := req.Principal.RoleID(identity.RoleSponsor)
	if !ok {
		return nil, shared.ErrForbidden
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, sponsorID)
		if err != nil {
			s.logger.Warn("Dashboard cache read failed", zap.String("sponsor_id", sponsorID.String()), zap.Error(err))
		}
		if cached != nil {
			return s.withCurrentCurrencies(ctx, cached)
		}
	}

	d, err := s.Refresh(ctx, sponsorID)
	if err != nil {
		return nil, err
	}
	return ToDashboardResponse(d), nil
}

// withCurrentCurrencies answers a cached dashboard with the accepted currencies
// read now, since configuration changes do not touch the cache
func (s *DashboardService) withCurrentCurrencies(ctx context.Context, cached *sponsorship.Dashboard) (*DashboardResponse, error) {
	cfg, err := s.settings.Find(ctx)
	if err != nil {
		return nil, err
	}
	d := *cached
	d.SupportedCurrencies = cfg.Currencies()
	return ToDashboardResponse(&d), nil
}

// Refresh recomputes the sponsor's dashboard and stores it in the cache
func (s *DashboardService) Refresh(ctx context.Context, sponsorID uuid.UUID) (*sponsorship.Dashboard, error) {
	d, err := s.compute(ctx, sponsorID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, d, s.ttl); err != nil {
			s.logger.Warn("Dashboard cache write failed", zap.String("sponsor_id", sponsorID.String()), zap.Error(err))
		}
	}
	return d, nil
}

// Invalidate drops the sponsor's cached dashboard
func (s *DashboardService) Invalidate(ctx context.Context, sponsorID uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, sponsorID)
}

// WarmAll recomputes every sponsor's dashboard. It returns how many were refreshed.
func (s *DashboardService) WarmAll(ctx context.Context) (int, error) {
	ids, err := s.profiles.FindAllSponsorIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list sponsors: %w", err)
	}
	warmed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return warmed, err
		}
		if _, err := s.Refresh(ctx, id); err != nil {
			s.logger.Warn("Failed to warm dashboard", zap.String("sponsor_id", id.String()), zap.Error(err))
			continue
		}
		warmed++
	}
	return warmed, nil
}

func (s *DashboardService) compute(ctx context.Context, sponsorID uuid.UUID) (*sponsorship.Dashboard, error) {
	sponsorships, err := s.sponsorships.FindPublishedBySponsor(ctx, sponsorID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.FindAllBySponsor(ctx, sponsorID)
	if err != nil {
		return nil, err
	}
	cfg, err := s.settings.Find(ctx)
	if err != nil {
		return nil, err
	}
	return sponsorship.BuildDashboard(sponsorID, sponsorships, invoices, cfg.Currencies()), nil
}
