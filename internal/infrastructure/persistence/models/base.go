package models

import (
	"time"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// AggregateModel extends BaseModel with the aggregate version
type AggregateModel struct {
	BaseModel
	Version int `gorm:"not null"`
}

// FromDomainAggregateRoot populates AggregateModel from domain BaseAggregateRoot
func (m *AggregateModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Version = a.Version
}

// ToAggregateRoot rebuilds the domain BaseAggregateRoot
func (m *AggregateModel) ToAggregateRoot() shared.BaseAggregateRoot {
	return shared.BaseAggregateRoot{
		BaseEntity: m.BaseModel.ToDomain(),
		Version:    m.Version,
	}
}

// DraftAggregateModel adds the draft flag. There is no column default: a zero
// value must reach the INSERT so published rows can be written directly.
type DraftAggregateModel struct {
	AggregateModel
	DraftMode bool `gorm:"not null;index"`
}

// FromDomainDraftAggregateRoot populates DraftAggregateModel from the domain root
func (m *DraftAggregateModel) FromDomainDraftAggregateRoot(a shared.DraftAggregateRoot) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.DraftMode = a.DraftMode
}

// ToDraftAggregateRoot rebuilds the domain DraftAggregateRoot
func (m *DraftAggregateModel) ToDraftAggregateRoot() shared.DraftAggregateRoot {
	return shared.DraftAggregateRoot{
		BaseAggregateRoot: m.ToAggregateRoot(),
		DraftMode:         m.DraftMode,
	}
}

// MoneyColumns stores a valueobject.Money as an amount and a currency column.
// Embed it with an embeddedPrefix, e.g. `gorm:"embedded;embeddedPrefix:budget_"`.
type MoneyColumns struct {
	Amount   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Currency string          `gorm:"type:varchar(3);not null"`
}

// MoneyColumnsFrom splits a Money into its columns
func MoneyColumnsFrom(m valueobject.Money) MoneyColumns {
	return MoneyColumns{Amount: m.Amount(), Currency: string(m.Currency())}
}

// ToDomain rebuilds the Money; a blank currency yields the empty Money
func (c MoneyColumns) ToDomain() valueobject.Money {
	m, err := valueobject.NewMoney(c.Amount, valueobject.Currency(c.Currency))
	if err != nil {
		return valueobject.Money{}
	}
	return m
}
