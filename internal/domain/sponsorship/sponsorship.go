package sponsorship

import (
	"time"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Type distinguishes money sponsorships from in-kind ones
type Type string

const (
	TypeFinancial Type = "FINANCIAL"
	TypeInKind    Type = "IN_KIND"
)

// IsValid reports whether the sponsorship type is known
func (t Type) IsValid() bool {
	return t == TypeFinancial || t == TypeInKind
}

// Sponsorship is a sponsor's commitment to a project. It is the master of its invoices.
type Sponsorship struct {
	shared.DraftAggregateRoot
	Code      string
	Moment    time.Time
	StartDate time.Time
	EndDate   time.Time
	Amount    valueobject.Money
	Type      Type
	Email     string
	Link      string
	SponsorID uuid.UUID
	ProjectID uuid.UUID
}

// NewSponsorship creates a draft sponsorship owned by the sponsor
func NewSponsorship(sponsorID, projectID uuid.UUID, code string, amount valueobject.Money, sponsorshipType Type) (*Sponsorship, error) {
	if !sponsorshipType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown sponsorship type")
	}
	if amount.IsEmpty() || !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Sponsorship amount must be positive")
	}
	now := time.Now()
	return &Sponsorship{
		DraftAggregateRoot: shared.NewDraftAggregateRoot(),
		Code:               code,
		Moment:             now,
		StartDate:          now.AddDate(0, 1, 0),
		EndDate:            now.AddDate(0, 2, 0),
		Amount:             amount,
		Type:               sponsorshipType,
		SponsorID:          sponsorID,
		ProjectID:          projectID,
	}, nil
}

// IsOwnedBy reports whether the sponsorship belongs to the sponsor
func (s *Sponsorship) IsOwnedBy(sponsorID uuid.UUID) bool {
	return sponsorID != uuid.Nil && s.SponsorID == sponsorID
}

// IsVisibleTo is true for published sponsorships and for the owner's drafts
func (s *Sponsorship) IsVisibleTo(sponsorID uuid.UUID) bool {
	return s.IsPublished() || s.IsOwnedBy(sponsorID)
}

// AcceptsInvoicesFrom is true when the sponsor may add or edit invoices
func (s *Sponsorship) AcceptsInvoicesFrom(sponsorID uuid.UUID) bool {
	return s.IsDraft() && s.IsOwnedBy(sponsorID)
}

// Publish freezes the sponsorship
func (s *Sponsorship) Publish() error {
	if err := s.MarkPublished(); err != nil {
		return err
	}
	s.AddDomainEvent(NewSponsorshipPublishedEvent(s))
	return nil
}
