package sponsorship

import (
	"context"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SponsorshipRepository defines persistence for sponsorships.
// Finders return shared.ErrNotFound when nothing matches.
type SponsorshipRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Sponsorship, error)
	FindAllBySponsor(ctx context.Context, sponsorID uuid.UUID, filter shared.Filter) ([]Sponsorship, error)
	CountBySponsor(ctx context.Context, sponsorID uuid.UUID, filter shared.Filter) (int64, error)
	FindPublishedBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]Sponsorship, error)
	Save(ctx context.Context, sponsorship *Sponsorship) error
}

// InvoiceRepository defines persistence for invoices
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindByCode(ctx context.Context, code string) (*Invoice, error)
	// FindAllBySponsorship returns the invoices of one sponsorship ordered by code
	FindAllBySponsorship(ctx context.Context, sponsorshipID uuid.UUID) ([]Invoice, error)
	// FindAllBySponsor returns every invoice of every sponsorship the sponsor owns
	FindAllBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]Invoice, error)
	Save(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}
