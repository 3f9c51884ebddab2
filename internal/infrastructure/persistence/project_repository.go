package persistence

import (
	"context"

	"github.com/acme/backend/internal/domain/project"
	"github.com/acme/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProjectRepository implements ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindByID finds a project by its ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindByCode finds a project by its unique code
func (r *GormProjectRepository) FindByCode(ctx context.Context, code string) (*project.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindAll returns every project ordered by code
func (r *GormProjectRepository) FindAll(ctx context.Context) ([]project.Project, error) {
	return r.find(r.db.WithContext(ctx))
}

// FindAllPublished returns the published projects ordered by code
func (r *GormProjectRepository) FindAllPublished(ctx context.Context) ([]project.Project, error) {
	return r.find(r.db.WithContext(ctx).Where("draft_mode = ?", false))
}

// Save inserts or updates the project
func (r *GormProjectRepository) Save(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Save(models.ProjectModelFromDomain(p)).Error
}

func (r *GormProjectRepository) find(query *gorm.DB) ([]project.Project, error) {
	var rows []models.ProjectModel
	if err := query.Order("code ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	projects := make([]project.Project, len(rows))
	for i := range rows {
		projects[i] = *rows[i].ToDomain()
	}
	return projects, nil
}

var _ project.ProjectRepository = (*GormProjectRepository)(nil)
