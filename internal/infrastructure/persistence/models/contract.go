package models

import (
	"time"

	"github.com/acme/backend/internal/domain/contract"
	"github.com/google/uuid"
)

// ContractModel is the persistence model for the Contract aggregate
type ContractModel struct {
	DraftAggregateModel
	Code                string       `gorm:"type:varchar(10);not null;uniqueIndex"`
	InstantiationMoment time.Time    `gorm:"not null"`
	ProviderName        string       `gorm:"type:varchar(75);not null"`
	CustomerName        string       `gorm:"type:varchar(75);not null"`
	Goals               string       `gorm:"type:varchar(100);not null"`
	Budget              MoneyColumns `gorm:"embedded;embeddedPrefix:budget_"`
	ProjectID           uuid.UUID    `gorm:"type:uuid;not null;index"`
	ClientID            uuid.UUID    `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (ContractModel) TableName() string {
	return "contracts"
}

// ToDomain converts the model to a domain Contract
func (m *ContractModel) ToDomain() *contract.Contract {
	return &contract.Contract{
		DraftAggregateRoot:  m.ToDraftAggregateRoot(),
		Code:                m.Code,
		InstantiationMoment: m.InstantiationMoment,
		ProviderName:        m.ProviderName,
		CustomerName:        m.CustomerName,
		Goals:               m.Goals,
		Budget:              m.Budget.ToDomain(),
		ProjectID:           m.ProjectID,
		ClientID:            m.ClientID,
	}
}

// ContractModelFromDomain creates a persistence model from a domain Contract
func ContractModelFromDomain(c *contract.Contract) *ContractModel {
	m := &ContractModel{
		Code:                c.Code,
		InstantiationMoment: c.InstantiationMoment,
		ProviderName:        c.ProviderName,
		CustomerName:        c.CustomerName,
		Goals:               c.Goals,
		Budget:              MoneyColumnsFrom(c.Budget),
		ProjectID:           c.ProjectID,
		ClientID:            c.ClientID,
	}
	m.FromDomainDraftAggregateRoot(c.DraftAggregateRoot)
	return m
}
