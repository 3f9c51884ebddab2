package persistence

import (
	"context"

	"github.com/acme/backend/internal/domain/contract"
	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContractRepository implements ContractRepository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// FindByID finds a contract by its ID
func (r *GormContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	var model models.ContractModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindByCode finds a contract by its unique code
func (r *GormContractRepository) FindByCode(ctx context.Context, code string) (*contract.Contract, error) {
	var model models.ContractModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindAllByClient returns one page of the client's contracts
func (r *GormContractRepository) FindAllByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]contract.Contract, error) {
	var rows []models.ContractModel
	query := applyListFilter(r.byClient(ctx, clientID), filter, ContractSortFields, contractSearchColumns...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	contracts := make([]contract.Contract, len(rows))
	for i := range rows {
		contracts[i] = *rows[i].ToDomain()
	}
	return contracts, nil
}

// CountByClient counts the client's contracts matching the search
func (r *GormContractRepository) CountByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) (int64, error) {
	var total int64
	if err := applySearch(r.byClient(ctx, clientID), filter.Search, contractSearchColumns...).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Save inserts or updates the contract
func (r *GormContractRepository) Save(ctx context.Context, c *contract.Contract) error {
	return saved(r.db.WithContext(ctx).Save(models.ContractModelFromDomain(c)).Error)
}

// Delete removes the contract
func (r *GormContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.ContractModel{}, "id = ?", id))
}

func (r *GormContractRepository) byClient(ctx context.Context, clientID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.ContractModel{}).Where("client_id = ?", clientID)
}

var contractSearchColumns = []string{"code", "provider_name", "customer_name"}

var _ contract.ContractRepository = (*GormContractRepository)(nil)
