package models

import (
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/acme/backend/internal/domain/system"
)

// SystemConfigurationModel is the persistence model for the single configuration row
type SystemConfigurationModel struct {
	AggregateModel
	SystemCurrency     string `gorm:"type:varchar(3);not null"`
	AcceptedCurrencies string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (SystemConfigurationModel) TableName() string {
	return "system_configurations"
}

// ToDomain converts the model to a domain Configuration
func (m *SystemConfigurationModel) ToDomain() *system.Configuration {
	return &system.Configuration{
		BaseAggregateRoot:  m.ToAggregateRoot(),
		SystemCurrency:     valueobject.Currency(m.SystemCurrency),
		AcceptedCurrencies: m.AcceptedCurrencies,
	}
}

// SystemConfigurationModelFromDomain creates a persistence model from a domain Configuration
func SystemConfigurationModelFromDomain(c *system.Configuration) *SystemConfigurationModel {
	m := &SystemConfigurationModel{
		SystemCurrency:     string(c.SystemCurrency),
		AcceptedCurrencies: c.AcceptedCurrencies,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}
