package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func newTestBusinessMetrics(t *testing.T) (*BusinessMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	bm, err := NewBusinessMetrics(provider.Meter("test"), zap.NewNop())
	require.NoError(t, err)
	return bm, reader
}

func TestNewBusinessMetrics_NilMeter(t *testing.T) {
	_, err := NewBusinessMetrics(nil, nil)
	assert.ErrorIs(t, err, ErrMeterNil)
}

func TestBusinessMetrics_Handle(t *testing.T) {
	bm, reader := newTestBusinessMetrics(t)
	ctx := context.Background()
	sponsorID := uuid.New()

	events := []shared.DomainEvent{
		&sponsorship.SponsorshipPublishedEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(sponsorship.EventTypeSponsorshipPublished, sponsorship.AggregateTypeSponsorship, uuid.New()),
			SponsorID:       sponsorID,
			Amount:          valueobject.MustMoney("1000", valueobject.EUR),
		},
		&sponsorship.InvoicePublishedEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(sponsorship.EventTypeInvoicePublished, sponsorship.AggregateTypeInvoice, uuid.New()),
			SponsorID:       sponsorID,
			Quantity:        valueobject.MustMoney("250.50", valueobject.EUR),
		},
		&sponsorship.InvoiceCreatedEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(sponsorship.EventTypeInvoiceCreated, sponsorship.AggregateTypeInvoice, uuid.New()),
			SponsorID:       sponsorID,
		},
	}
	for _, ev := range events {
		require.NoError(t, bm.Handle(ctx, ev))
	}

	rm := collect(t, reader)

	published, ok := findMetric(rm, "acme.documents.published")
	require.True(t, ok)
	sum := published.Data.(metricdata.Sum[int64])
	assert.Len(t, sum.DataPoints, 2)

	amount, ok := findMetric(rm, "acme.documents.published.amount")
	require.True(t, ok)
	var total float64
	for _, dp := range amount.Data.(metricdata.Sum[float64]).DataPoints {
		cur, _ := dp.Attributes.Value(attribute.Key("currency"))
		assert.Equal(t, "EUR", cur.AsString())
		total += dp.Value
	}
	assert.InDelta(t, 1250.50, total, 0.001)

	created, ok := findMetric(rm, "acme.invoices.created")
	require.True(t, ok)
	assert.Equal(t, int64(1), created.Data.(metricdata.Sum[int64]).DataPoints[0].Value)
}

func TestBusinessMetrics_ObserveDispatch(t *testing.T) {
	bm, reader := newTestBusinessMetrics(t)

	bm.ObserveDispatch(sponsorship.EventTypeInvoiceCreated, nil)
	bm.ObserveDispatch(sponsorship.EventTypeInvoiceCreated, nil)
	bm.ObserveDispatch(sponsorship.EventTypeInvoiceCreated, errors.New("boom"))

	m, ok := findMetric(collect(t, reader), "acme.event_handler.dispatches")
	require.True(t, ok)
	byOutcome := map[string]int64{}
	for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
		outcome, _ := dp.Attributes.Value(attribute.Key("outcome"))
		byOutcome[outcome.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{"success": 2, "failure": 1}, byOutcome)
}

func TestBusinessMetrics_RecordDashboardWarm(t *testing.T) {
	bm, reader := newTestBusinessMetrics(t)

	bm.RecordDashboardWarm(context.Background(), 4, 300*time.Millisecond, nil)

	rm := collect(t, reader)
	warmed, ok := findMetric(rm, "acme.dashboard.warmed")
	require.True(t, ok)
	assert.Equal(t, int64(4), warmed.Data.(metricdata.Sum[int64]).DataPoints[0].Value)

	duration, ok := findMetric(rm, "acme.dashboard.warm.duration")
	require.True(t, ok)
	hist := duration.Data.(metricdata.Histogram[float64])
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
}

func TestNewMeterProvider(t *testing.T) {
	ctx := context.Background()

	disabled, err := NewMeterProvider(ctx, Config{}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, disabled.IsEnabled())
	assert.NoError(t, disabled.Shutdown(ctx))

	reader := sdkmetric.NewManualReader()
	mp, err := NewMeterProvider(ctx, Config{Enabled: true, ServiceName: "acme-test"}, zap.NewNop(), WithMetricReader(reader))
	require.NoError(t, err)
	require.True(t, mp.IsEnabled())

	counter, err := NewCounter(mp.Meter("test"), "acme.test.count", "test", "1")
	require.NoError(t, err)
	counter.Inc(ctx)

	m, ok := findMetric(collect(t, reader), "acme.test.count")
	require.True(t, ok)
	assert.Equal(t, int64(1), m.Data.(metricdata.Sum[int64]).DataPoints[0].Value)
	assert.NoError(t, mp.Shutdown(ctx))
}
