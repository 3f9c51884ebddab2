package persistence

import (
	"context"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/acme/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSponsorshipRepository implements SponsorshipRepository using GORM
type GormSponsorshipRepository struct {
	db *gorm.DB
}

// NewGormSponsorshipRepository creates a new GormSponsorshipRepository
func NewGormSponsorshipRepository(db *gorm.DB) *GormSponsorshipRepository {
	return &GormSponsorshipRepository{db: db}
}

// FindByID finds a sponsorship by its ID
func (r *GormSponsorshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*sponsorship.Sponsorship, error) {
	var model models.SponsorshipModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindAllBySponsor returns one page of the sponsor's sponsorships
func (r *GormSponsorshipRepository) FindAllBySponsor(ctx context.Context, sponsorID uuid.UUID, filter shared.Filter) ([]sponsorship.Sponsorship, error) {
	var rows []models.SponsorshipModel
	query := applyListFilter(r.bySponsor(ctx, sponsorID), filter, SponsorshipSortFields, "code", "email")
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return sponsorshipsToDomain(rows), nil
}

// CountBySponsor counts the sponsor's sponsorships matching the search
func (r *GormSponsorshipRepository) CountBySponsor(ctx context.Context, sponsorID uuid.UUID, filter shared.Filter) (int64, error) {
	var total int64
	if err := applySearch(r.bySponsor(ctx, sponsorID), filter.Search, "code", "email").Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// FindPublishedBySponsor returns every published sponsorship of the sponsor, by code
func (r *GormSponsorshipRepository) FindPublishedBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]sponsorship.Sponsorship, error) {
	var rows []models.SponsorshipModel
	if err := r.bySponsor(ctx, sponsorID).
		Where("draft_mode = ?", false).
		Order("code ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return sponsorshipsToDomain(rows), nil
}

// Save inserts or updates the sponsorship
func (r *GormSponsorshipRepository) Save(ctx context.Context, s *sponsorship.Sponsorship) error {
	return r.db.WithContext(ctx).Save(models.SponsorshipModelFromDomain(s)).Error
}

func (r *GormSponsorshipRepository) bySponsor(ctx context.Context, sponsorID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.SponsorshipModel{}).Where("sponsor_id = ?", sponsorID)
}

func sponsorshipsToDomain(rows []models.SponsorshipModel) []sponsorship.Sponsorship {
	out := make([]sponsorship.Sponsorship, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*sponsorship.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindByCode finds an invoice by its unique code
func (r *GormInvoiceRepository) FindByCode(ctx context.Context, code string) (*sponsorship.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindAllBySponsorship returns the invoices of one sponsorship ordered by code
func (r *GormInvoiceRepository) FindAllBySponsorship(ctx context.Context, sponsorshipID uuid.UUID) ([]sponsorship.Invoice, error) {
	var rows []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("sponsorship_id = ?", sponsorshipID).
		Order("code ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return invoicesToDomain(rows), nil
}

// FindAllBySponsor returns every invoice of every sponsorship the sponsor owns
func (r *GormInvoiceRepository) FindAllBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]sponsorship.Invoice, error) {
	var rows []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN sponsorships ON sponsorships.id = invoices.sponsorship_id").
		Where("sponsorships.sponsor_id = ?", sponsorID).
		Order("invoices.code ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return invoicesToDomain(rows), nil
}

// Save inserts or updates the invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, i *sponsorship.Invoice) error {
	return saved(r.db.WithContext(ctx).Save(models.InvoiceModelFromDomain(i)).Error)
}

// Delete removes the invoice
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.InvoiceModel{}, "id = ?", id))
}

func invoicesToDomain(rows []models.InvoiceModel) []sponsorship.Invoice {
	out := make([]sponsorship.Invoice, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

var (
	_ sponsorship.SponsorshipRepository = (*GormSponsorshipRepository)(nil)
	_ sponsorship.InvoiceRepository     = (*GormInvoiceRepository)(nil)
)
