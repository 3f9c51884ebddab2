package persistence

import (
	"context"
	"strings"

	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserAccountRepository implements UserAccountRepository using GORM.
// Role bindings live in their own table and are replaced on every save.
type GormUserAccountRepository struct {
	db *gorm.DB
}

// NewGormUserAccountRepository creates a new GormUserAccountRepository
func NewGormUserAccountRepository(db *gorm.DB) *GormUserAccountRepository {
	return &GormUserAccountRepository{db: db}
}

// FindByID finds an account by ID, role bindings included
func (r *GormUserAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.UserAccount, error) {
	var model models.UserAccountModel
	if err := r.db.WithContext(ctx).Preload("Roles").First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindByUsername finds an account by username, ignoring case
func (r *GormUserAccountRepository) FindByUsername(ctx context.Context, username string) (*identity.UserAccount, error) {
	var model models.UserAccountModel
	if err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("LOWER(username) = ?", strings.ToLower(username)).
		First(&model).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// ExistsByUsername checks if a username already exists
func (r *GormUserAccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserAccountModel{}).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save stores the account and replaces its role bindings in one transaction
func (r *GormUserAccountRepository) Save(ctx context.Context, account *identity.UserAccount) error {
	model := models.UserAccountModelFromDomain(account)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Roles").Save(model).Error; err != nil {
			return err
		}
		if err := tx.Where("user_account_id = ?", account.ID).Delete(&models.UserRoleBindingModel{}).Error; err != nil {
			return err
		}
		if len(model.Roles) == 0 {
			return nil
		}
		return tx.Create(&model.Roles).Error
	})
}

var _ identity.UserAccountRepository = (*GormUserAccountRepository)(nil)
