package sponsorship

import (
	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeSponsorship = "Sponsorship"
	AggregateTypeInvoice     = "Invoice"
)

// Event type constants
const (
	EventTypeSponsorshipPublished = "SponsorshipPublished"
	EventTypeInvoiceCreated       = "InvoiceCreated"
	EventTypeInvoicePublished     = "InvoicePublished"
)

// SponsorScopedEvent is implemented by events that change a sponsor's dashboard
type SponsorScopedEvent interface {
	shared.DomainEvent
	Sponsor() uuid.UUID
}

// SponsorshipPublishedEvent is published when a sponsorship leaves draft mode
type SponsorshipPublishedEvent struct {
	shared.BaseDomainEvent
	Code      string            `json:"code"`
	SponsorID uuid.UUID         `json:"sponsor_id"`
	Amount    valueobject.Money `json:"amount"`
}

// NewSponsorshipPublishedEvent creates a new SponsorshipPublishedEvent
func NewSponsorshipPublishedEvent(s *Sponsorship) *SponsorshipPublishedEvent {
	return &SponsorshipPublishedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSponsorshipPublished, AggregateTypeSponsorship, s.ID),
		Code:            s.Code,
		SponsorID:       s.SponsorID,
		Amount:          s.Amount,
	}
}

// Sponsor returns the owning sponsor
func (e *SponsorshipPublishedEvent) Sponsor() uuid.UUID { return e.SponsorID }

// InvoiceCreatedEvent is published when a sponsor registers an invoice
type InvoiceCreatedEvent struct {
	shared.BaseDomainEvent
	Code          string    `json:"code"`
	SponsorshipID uuid.UUID `json:"sponsorship_id"`
	SponsorID     uuid.UUID `json:"sponsor_id"`
}

// NewInvoiceCreatedEvent creates a new InvoiceCreatedEvent
func NewInvoiceCreatedEvent(i *Invoice, sponsorID uuid.UUID) *InvoiceCreatedEvent {
	return &InvoiceCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceCreated, AggregateTypeInvoice, i.ID),
		Code:            i.Code,
		SponsorshipID:   i.SponsorshipID,
		SponsorID:       sponsorID,
	}
}

// Sponsor returns the owning sponsor
func (e *InvoiceCreatedEvent) Sponsor() uuid.UUID { return e.SponsorID }

// InvoicePublishedEvent is published when an invoice leaves draft mode
type InvoicePublishedEvent struct {
	shared.BaseDomainEvent
	Code          string            `json:"code"`
	SponsorshipID uuid.UUID         `json:"sponsorship_id"`
	SponsorID     uuid.UUID         `json:"sponsor_id"`
	Quantity      valueobject.Money `json:"quantity"`
}

// NewInvoicePublishedEvent creates a new InvoicePublishedEvent
func NewInvoicePublishedEvent(i *Invoice, sponsorID uuid.UUID) *InvoicePublishedEvent {
	return &InvoicePublishedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoicePublished, AggregateTypeInvoice, i.ID),
		Code:            i.Code,
		SponsorshipID:   i.SponsorshipID,
		SponsorID:       sponsorID,
		Quantity:        i.Quantity,
	}
}

// Sponsor returns the owning sponsor
func (e *InvoicePublishedEvent) Sponsor() uuid.UUID { return e.SponsorID }
