package models

import (
	"time"

	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SponsorshipModel is the persistence model for the Sponsorship aggregate
type SponsorshipModel struct {
	DraftAggregateModel
	Code      string           `gorm:"type:varchar(10);not null;uniqueIndex"`
	Moment    time.Time        `gorm:"not null"`
	StartDate time.Time        `gorm:"not null"`
	EndDate   time.Time        `gorm:"not null"`
	Amount    MoneyColumns     `gorm:"embedded;embeddedPrefix:amount_"`
	Type      sponsorship.Type `gorm:"type:varchar(20);not null"`
	Email     string           `gorm:"type:varchar(255)"`
	Link      string           `gorm:"type:varchar(255)"`
	SponsorID uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProjectID uuid.UUID        `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (SponsorshipModel) TableName() string {
	return "sponsorships"
}

// ToDomain converts the model to a domain Sponsorship
func (m *SponsorshipModel) ToDomain() *sponsorship.Sponsorship {
	return &sponsorship.Sponsorship{
		DraftAggregateRoot: m.ToDraftAggregateRoot(),
		Code:               m.Code,
		Moment:             m.Moment,
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		Amount:             m.Amount.ToDomain(),
		Type:               m.Type,
		Email:              m.Email,
		Link:               m.Link,
		SponsorID:          m.SponsorID,
		ProjectID:          m.ProjectID,
	}
}

// SponsorshipModelFromDomain creates a persistence model from a domain Sponsorship
func SponsorshipModelFromDomain(s *sponsorship.Sponsorship) *SponsorshipModel {
	m := &SponsorshipModel{
		Code:      s.Code,
		Moment:    s.Moment,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Amount:    MoneyColumnsFrom(s.Amount),
		Type:      s.Type,
		Email:     s.Email,
		Link:      s.Link,
		SponsorID: s.SponsorID,
		ProjectID: s.ProjectID,
	}
	m.FromDomainDraftAggregateRoot(s.DraftAggregateRoot)
	return m
}

// InvoiceModel is the persistence model for the Invoice aggregate
type InvoiceModel struct {
	DraftAggregateModel
	Code             string          `gorm:"type:varchar(12);not null;uniqueIndex"`
	RegistrationTime time.Time       `gorm:"not null"`
	DueDate          time.Time       `gorm:"not null"`
	Quantity         MoneyColumns    `gorm:"embedded;embeddedPrefix:quantity_"`
	Tax              decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Link             string          `gorm:"type:varchar(255)"`
	SponsorshipID    uuid.UUID       `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the model to a domain Invoice
func (m *InvoiceModel) ToDomain() *sponsorship.Invoice {
	return &sponsorship.Invoice{
		DraftAggregateRoot: m.ToDraftAggregateRoot(),
		Code:               m.Code,
		RegistrationTime:   m.RegistrationTime,
		DueDate:            m.DueDate,
		Quantity:           m.Quantity.ToDomain(),
		Tax:                m.Tax,
		Link:               m.Link,
		SponsorshipID:      m.SponsorshipID,
	}
}

// InvoiceModelFromDomain creates a persistence model from a domain Invoice
func InvoiceModelFromDomain(i *sponsorship.Invoice) *InvoiceModel {
	m := &InvoiceModel{
		Code:             i.Code,
		RegistrationTime: i.RegistrationTime,
		DueDate:          i.DueDate,
		Quantity:         MoneyColumnsFrom(i.Quantity),
		Tax:              i.Tax,
		Link:             i.Link,
		SponsorshipID:    i.SponsorshipID,
	}
	m.FromDomainDraftAggregateRoot(i.DraftAggregateRoot)
	return m
}
