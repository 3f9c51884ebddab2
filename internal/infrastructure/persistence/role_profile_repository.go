package persistence

import (
	"context"

	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRoleProfileRepository implements RoleProfileRepository using GORM
type GormRoleProfileRepository struct {
	db *gorm.DB
}

// NewGormRoleProfileRepository creates a new GormRoleProfileRepository
func NewGormRoleProfileRepository(db *gorm.DB) *GormRoleProfileRepository {
	return &GormRoleProfileRepository{db: db}
}

// FindClientByID finds a client profile
func (r *GormRoleProfileRepository) FindClientByID(ctx context.Context, id uuid.UUID) (*identity.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindDeveloperByID finds a developer profile
func (r *GormRoleProfileRepository) FindDeveloperByID(ctx context.Context, id uuid.UUID) (*identity.Developer, error) {
	var model models.DeveloperModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindSponsorByID finds a sponsor profile
func (r *GormRoleProfileRepository) FindSponsorByID(ctx context.Context, id uuid.UUID) (*identity.Sponsor, error) {
	var model models.SponsorModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindAllSponsorIDs lists every sponsor profile id; the dashboard warm-up walks it
func (r *GormRoleProfileRepository) FindAllSponsorIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.SponsorModel{}).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// SaveClient inserts or updates a client profile
func (r *GormRoleProfileRepository) SaveClient(ctx context.Context, c *identity.Client) error {
	return r.db.WithContext(ctx).Save(models.ClientModelFromDomain(c)).Error
}

// SaveDeveloper inserts or updates a developer profile
func (r *GormRoleProfileRepository) SaveDeveloper(ctx context.Context, d *identity.Developer) error {
	return r.db.WithContext(ctx).Save(models.DeveloperModelFromDomain(d)).Error
}

// SaveSponsor inserts or updates a sponsor profile
func (r *GormRoleProfileRepository) SaveSponsor(ctx context.Context, s *identity.Sponsor) error {
	return r.db.WithContext(ctx).Save(models.SponsorModelFromDomain(s)).Error
}

// SaveAdministrator inserts or updates an administrator profile
func (r *GormRoleProfileRepository) SaveAdministrator(ctx context.Context, a *identity.Administrator) error {
	return r.db.WithContext(ctx).Save(models.AdministratorModelFromDomain(a)).Error
}

var _ identity.RoleProfileRepository = (*GormRoleProfileRepository)(nil)
