package persistence

import (
	"context"

	"github.com/acme/backend/internal/domain/system"
	"github.com/acme/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormConfigurationRepository implements system.ConfigurationRepository using GORM
type GormConfigurationRepository struct {
	db *gorm.DB
}

// NewGormConfigurationRepository creates a new GormConfigurationRepository
func NewGormConfigurationRepository(db *gorm.DB) *GormConfigurationRepository {
	return &GormConfigurationRepository{db: db}
}

// Find returns the oldest configuration row; there is only ever one
func (r *GormConfigurationRepository) Find(ctx context.Context) (*system.Configuration, error) {
	var model models.SystemConfigurationModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&model).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// Save inserts or updates the configuration
func (r *GormConfigurationRepository) Save(ctx context.Context, cfg *system.Configuration) error {
	return r.db.WithContext(ctx).Save(models.SystemConfigurationModelFromDomain(cfg)).Error
}

var _ system.ConfigurationRepository = (*GormConfigurationRepository)(nil)
