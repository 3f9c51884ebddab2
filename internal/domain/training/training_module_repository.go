package training

import (
	"context"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TrainingModuleRepository defines persistence for training modules.
// Finders return shared.ErrNotFound when nothing matches.
type TrainingModuleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TrainingModule, error)
	FindByCode(ctx context.Context, code string) (*TrainingModule, error)
	FindAllByDeveloper(ctx context.Context, developerID uuid.UUID, filter shared.Filter) ([]TrainingModule, error)
	CountByDeveloper(ctx context.Context, developerID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, module *TrainingModule) error
	Delete(ctx context.Context, id uuid.UUID) error
}
