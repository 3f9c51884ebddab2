package telemetry

import (
	"context"
	"time"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/sponsorship"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BusinessMetrics counts sponsorship activity. It subscribes to the event bus
// for document events and is called directly by the bus and the scheduler for
// dispatch and warm-up outcomes.
type BusinessMetrics struct {
	logger *zap.Logger

	documentsPublished *Counter
	invoicesCreated    *Counter
	amountPublished    metric.Float64Counter
	handlerOutcomes    *Counter
	dashboardWarms     *Counter
	dashboardWarmTime  *Histogram
}

// NewBusinessMetrics creates the instruments on meter.
func NewBusinessMetrics(meter metric.Meter, logger *zap.Logger) (*BusinessMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	bm := &BusinessMetrics{logger: logger}

	var err error
	if bm.documentsPublished, err = NewCounter(meter, "acme.documents.published", "Sponsorships and invoices taken out of draft mode", "{document}"); err != nil {
		return nil, err
	}
	if bm.invoicesCreated, err = NewCounter(meter, "acme.invoices.created", "Invoices registered by sponsors", "{invoice}"); err != nil {
		return nil, err
	}
	if bm.amountPublished, err = meter.Float64Counter("acme.documents.published.amount",
		metric.WithDescription("Money published, by document kind and currency"),
	); err != nil {
		return nil, err
	}
	if bm.handlerOutcomes, err = NewCounter(meter, "acme.event_handler.dispatches", "Event handler invocations by outcome", "{dispatch}"); err != nil {
		return nil, err
	}
	if bm.dashboardWarms, err = NewCounter(meter, "acme.dashboard.warmed", "Sponsor dashboards recomputed by the warm-up job", "{dashboard}"); err != nil {
		return nil, err
	}
	if bm.dashboardWarmTime, err = NewHistogram(meter, "acme.dashboard.warm.duration", "Duration of a dashboard warm-up run", "s",
		0.05, 0.1, 0.5, 1, 5, 15, 60); err != nil {
		return nil, err
	}
	return bm, nil
}

// EventTypes returns the event types this handler is interested in
func (bm *BusinessMetrics) EventTypes() []string {
	return []string{
		sponsorship.EventTypeSponsorshipPublished,
		sponsorship.EventTypeInvoiceCreated,
		sponsorship.EventTypeInvoicePublished,
	}
}

// Handle records a document event
func (bm *BusinessMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *sponsorship.SponsorshipPublishedEvent:
		bm.recordPublished(ctx, "sponsorship", e.Amount.Currency().String(), e.Amount.Amount().InexactFloat64())
	case *sponsorship.InvoicePublishedEvent:
		bm.recordPublished(ctx, "invoice", e.Quantity.Currency().String(), e.Quantity.Amount().InexactFloat64())
	case *sponsorship.InvoiceCreatedEvent:
		bm.invoicesCreated.Inc(ctx)
	default:
		bm.logger.Debug("Ignoring event", zap.String("event_type", event.EventType()))
	}
	return nil
}

func (bm *BusinessMetrics) recordPublished(ctx context.Context, kind, currency string, amount float64) {
	attrs := []attribute.KeyValue{
		attribute.String("kind", kind),
		attribute.String("currency", currency),
	}
	bm.documentsPublished.Inc(ctx, attrs...)
	bm.amountPublished.Add(ctx, amount, metric.WithAttributes(attrs...))
}

// ObserveDispatch matches event.DispatchObserver.
func (bm *BusinessMetrics) ObserveDispatch(eventType string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	bm.handlerOutcomes.Inc(context.Background(),
		attribute.String("event_type", eventType),
		attribute.String("outcome", outcome),
	)
}

// RecordDashboardWarm records one warm-up run.
func (bm *BusinessMetrics) RecordDashboardWarm(ctx context.Context, warmed int, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	bm.dashboardWarms.Add(ctx, int64(warmed))
	bm.dashboardWarmTime.RecordDuration(ctx, elapsed, attribute.String("status", status))
}

var _ shared.EventHandler = (*BusinessMetrics)(nil)
