package models

import (
	"github.com/acme/backend/internal/domain/project"
	"github.com/google/uuid"
)

// ProjectModel is the persistence model for the Project aggregate
type ProjectModel struct {
	DraftAggregateModel
	Code           string       `gorm:"type:varchar(8);not null;uniqueIndex"`
	Title          string       `gorm:"type:varchar(75);not null"`
	Abstract       string       `gorm:"type:varchar(100)"`
	HasFatalErrors bool         `gorm:"not null"`
	Cost           MoneyColumns `gorm:"embedded;embeddedPrefix:cost_"`
	Link           string       `gorm:"type:varchar(255)"`
	ManagerID      uuid.UUID    `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the model to a domain Project
func (m *ProjectModel) ToDomain() *project.Project {
	return &project.Project{
		DraftAggregateRoot: m.ToDraftAggregateRoot(),
		Code:               m.Code,
		Title:              m.Title,
		Abstract:           m.Abstract,
		HasFatalErrors:     m.HasFatalErrors,
		Cost:               m.Cost.ToDomain(),
		Link:               m.Link,
		ManagerID:          m.ManagerID,
	}
}

// ProjectModelFromDomain creates a persistence model from a domain Project
func ProjectModelFromDomain(p *project.Project) *ProjectModel {
	m := &ProjectModel{
		Code:           p.Code,
		Title:          p.Title,
		Abstract:       p.Abstract,
		HasFatalErrors: p.HasFatalErrors,
		Cost:           MoneyColumnsFrom(p.Cost),
		Link:           p.Link,
		ManagerID:      p.ManagerID,
	}
	m.FromDomainDraftAggregateRoot(p.DraftAggregateRoot)
	return m
}
