package persistence

import (
	"context"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/training"
	"github.com/acme/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTrainingModuleRepository implements TrainingModuleRepository using GORM
type GormTrainingModuleRepository struct {
	db *gorm.DB
}

// NewGormTrainingModuleRepository creates a new GormTrainingModuleRepository
func NewGormTrainingModuleRepository(db *gorm.DB) *GormTrainingModuleRepository {
	return &GormTrainingModuleRepository{db: db}
}

// FindByID finds a training module by its ID
func (r *GormTrainingModuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*training.TrainingModule, error) {
	var model models.TrainingModuleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindByCode finds a training module by its unique code
func (r *GormTrainingModuleRepository) FindByCode(ctx context.Context, code string) (*training.TrainingModule, error) {
	var model models.TrainingModuleModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindAllByDeveloper returns one page of the developer's modules
func (r *GormTrainingModuleRepository) FindAllByDeveloper(ctx context.Context, developerID uuid.UUID, filter shared.Filter) ([]training.TrainingModule, error) {
	var rows []models.TrainingModuleModel
	query := applyListFilter(r.byDeveloper(ctx, developerID), filter, TrainingModuleSortFields, "code", "details")
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	modules := make([]training.TrainingModule, len(rows))
	for i := range rows {
		modules[i] = *rows[i].ToDomain()
	}
	return modules, nil
}

// CountByDeveloper counts the developer's modules matching the search
func (r *GormTrainingModuleRepository) CountByDeveloper(ctx context.Context, developerID uuid.UUID, filter shared.Filter) (int64, error) {
	var total int64
	if err := applySearch(r.byDeveloper(ctx, developerID), filter.Search, "code", "details").Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Save inserts or updates the module
func (r *GormTrainingModuleRepository) Save(ctx context.Context, m *training.TrainingModule) error {
	return saved(r.db.WithContext(ctx).Save(models.TrainingModuleModelFromDomain(m)).Error)
}

// Delete removes the module
func (r *GormTrainingModuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.TrainingModuleModel{}, "id = ?", id))
}

func (r *GormTrainingModuleRepository) byDeveloper(ctx context.Context, developerID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.TrainingModuleModel{}).Where("developer_id = ?", developerID)
}

var _ training.TrainingModuleRepository = (*GormTrainingModuleRepository)(nil)
