package sponsorship

import (
	"time"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MinimumDueInterval is how far the due date must be from registration, in months
const MinimumDueInterval = 1

// Invoice bills part of a sponsorship. Tax is a percentage in [0, 100].
type Invoice struct {
	shared.DraftAggregateRoot
	Code             string
	RegistrationTime time.Time
	DueDate          time.Time
	Quantity         valueobject.Money
	Tax              decimal.Decimal
	Link             string
	SponsorshipID    uuid.UUID
}

// InvoiceFields holds the sponsor-editable attributes of an invoice
type InvoiceFields struct {
	Code             string
	RegistrationTime time.Time
	DueDate          time.Time
	Quantity         valueobject.Money
	Tax              decimal.Decimal
	Link             string
}

// NewInvoice creates an empty draft invoice for the sponsorship
func NewInvoice(sponsorshipID uuid.UUID) *Invoice {
	return &Invoice{
		DraftAggregateRoot: shared.NewDraftAggregateRoot(),
		SponsorshipID:      sponsorshipID,
	}
}

// Bind copies the editable fields onto the invoice
func (i *Invoice) Bind(f InvoiceFields) {
	i.Code = f.Code
	i.RegistrationTime = f.RegistrationTime
	i.DueDate = f.DueDate
	i.Quantity = f.Quantity
	i.Tax = f.Tax
	i.Link = f.Link
}

// TotalAmount is quantity plus tax, in the quantity's currency
func (i *Invoice) TotalAmount() valueobject.Money {
	if i.Quantity.IsEmpty() {
		return i.Quantity
	}
	total, _ := i.Quantity.Add(i.Quantity.Percentage(i.Tax))
	return total.Round(2)
}

// HasValidDueDate is true when the due date is at least one month after registration
func (i *Invoice) HasValidDueDate() bool {
	if i.RegistrationTime.IsZero() || i.DueDate.IsZero() {
		return true
	}
	return !i.DueDate.Before(i.RegistrationTime.AddDate(0, MinimumDueInterval, 0))
}

// HasPositiveQuantity reports whether the quantity is strictly greater than zero
func (i *Invoice) HasPositiveQuantity() bool {
	return !i.Quantity.IsEmpty() && i.Quantity.IsPositive()
}

// HasLink reports whether the invoice carries a link
func (i *Invoice) HasLink() bool {
	return i.Link != ""
}

// TaxAtMost reports whether the tax percentage is at most pct
func (i *Invoice) TaxAtMost(pct decimal.Decimal) bool {
	return i.Tax.LessThanOrEqual(pct)
}

// MarkCreated queues the creation event; sponsorID identifies the dashboard to refresh
func (i *Invoice) MarkCreated(sponsorID uuid.UUID) {
	i.AddDomainEvent(NewInvoiceCreatedEvent(i, sponsorID))
}

// Publish freezes the invoice
func (i *Invoice) Publish(sponsorID uuid.UUID) error {
	if err := i.MarkPublished(); err != nil {
		return err
	}
	i.AddDomainEvent(NewInvoicePublishedEvent(i, sponsorID))
	return nil
}
