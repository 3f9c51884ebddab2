package sponsor

import (
	"context"
	"fmt"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/sponsorship"
	"go.uber.org/zap"
)

// DashboardInvalidationHandler drops a sponsor's cached dashboard whenever
// one of their sponsorships or invoices changes
type DashboardInvalidationHandler struct {
	dashboards *DashboardService
	logger     *zap.Logger
}

// NewDashboardInvalidationHandler creates a new handler
func NewDashboardInvalidationHandler(dashboards *DashboardService, logger *zap.Logger) *DashboardInvalidationHandler {
	return &DashboardInvalidationHandler{dashboards: dashboards, logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *DashboardInvalidationHandler) EventTypes() []string {
	return []string{
		sponsorship.EventTypeSponsorshipPublished,
		sponsorship.EventTypeInvoiceCreated,
		sponsorship.EventTypeInvoicePublished,
	}
}

// Handle invalidates the dashboard of the event's sponsor
func (h *DashboardInvalidationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	scoped, ok := event.(sponsorship.SponsorScopedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %s: not sponsor scoped", event.EventType())
	}

	if err := h.dashboards.Invalidate(ctx, scoped.Sponsor()); err != nil {
		return fmt.Errorf("failed to invalidate dashboard: %w", err)
	}
	h.logger.Debug("Sponsor dashboard invalidated",
		zap.String("sponsor_id", scoped.Sponsor().String()),
		zap.String("event_type", event.EventType()),
	)
	return nil
}

var _ shared.EventHandler = (*DashboardInvalidationHandler)(nil)
