package contract

import (
	"context"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ContractRepository defines persistence for contracts.
// Finders return shared.ErrNotFound when nothing matches.
type ContractRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Contract, error)
	FindByCode(ctx context.Context, code string) (*Contract, error)
	FindAllByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]Contract, error)
	CountByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, contract *Contract) error
	Delete(ctx context.Context, id uuid.UUID) error
}
