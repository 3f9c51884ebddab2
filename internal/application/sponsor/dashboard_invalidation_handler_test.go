package sponsor

import (
	"context"
	"errors"
	"testing"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type unrelatedEvent struct {
	shared.BaseDomainEvent
}

func TestDashboardInvalidationHandler_Handle(t *testing.T) {
	ctx := context.Background()
	sponsorID := uuid.New()

	events := []shared.DomainEvent{
		&sponsorship.SponsorshipPublishedEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(sponsorship.EventTypeSponsorshipPublished, sponsorship.AggregateTypeSponsorship, uuid.New()),
			SponsorID:       sponsorID,
		},
		&sponsorship.InvoiceCreatedEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(sponsorship.EventTypeInvoiceCreated, sponsorship.AggregateTypeInvoice, uuid.New()),
			SponsorID:       sponsorID,
		},
		&sponsorship.InvoicePublishedEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(sponsorship.EventTypeInvoicePublished, sponsorship.AggregateTypeInvoice, uuid.New()),
			SponsorID:       sponsorID,
		},
	}

	for _, ev := range events {
		t.Run(ev.EventType(), func(t *testing.T) {
			f := newDashboardFixture(t)
			f.cache.On("Delete", mock.Anything, sponsorID).Return(nil).Once()
			h := NewDashboardInvalidationHandler(f.service, zap.NewNop())

			assert.Contains(t, h.EventTypes(), ev.EventType())
			require.NoError(t, h.Handle(ctx, ev))
			f.cache.AssertExpectations(t)
		})
	}
}

func TestDashboardInvalidationHandler_RejectsUnscopedEvent(t *testing.T) {
	f := newDashboardFixture(t)
	h := NewDashboardInvalidationHandler(f.service, zap.NewNop())

	ev := &unrelatedEvent{BaseDomainEvent: shared.NewBaseDomainEvent("Other", "Other", uuid.New())}
	err := h.Handle(context.Background(), ev)

	assert.ErrorContains(t, err, "not sponsor scoped")
	f.cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDashboardInvalidationHandler_CacheFailure(t *testing.T) {
	f := newDashboardFixture(t)
	sponsorID := uuid.New()
	f.cache.On("Delete", mock.Anything, sponsorID).Return(errors.New("redis down"))
	h := NewDashboardInvalidationHandler(f.service, zap.NewNop())

	ev := &sponsorship.InvoiceCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(sponsorship.EventTypeInvoiceCreated, sponsorship.AggregateTypeInvoice, uuid.New()),
		SponsorID:       sponsorID,
	}
	err := h.Handle(context.Background(), ev)

	assert.ErrorContains(t, err, "redis down")
}
