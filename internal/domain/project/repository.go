package project

import (
	"context"

	"github.com/google/uuid"
)

// ProjectRepository is the read side used by the role services to build choices
type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	FindByCode(ctx context.Context, code string) (*Project, error)
	// FindAll returns every project ordered by code
	FindAll(ctx context.Context) ([]Project, error)
	FindAllPublished(ctx context.Context) ([]Project, error)
	Save(ctx context.Context, project *Project) error
}
