package models

import (
	"time"

	"github.com/acme/backend/internal/domain/training"
	"github.com/google/uuid"
)

// TrainingModuleModel is the persistence model for the TrainingModule aggregate
type TrainingModuleModel struct {
	DraftAggregateModel
	Code               string              `gorm:"type:varchar(8);not null;uniqueIndex"`
	CreationMoment     time.Time           `gorm:"not null"`
	Details            string              `gorm:"type:varchar(100);not null"`
	DifficultyLevel    training.Difficulty `gorm:"type:varchar(20);not null"`
	UpdateMoment       *time.Time
	Link               string    `gorm:"type:varchar(255)"`
	EstimatedTotalTime int       `gorm:"not null"`
	DeveloperID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProjectID          uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (TrainingModuleModel) TableName() string {
	return "training_modules"
}

// ToDomain converts the model to a domain TrainingModule
func (m *TrainingModuleModel) ToDomain() *training.TrainingModule {
	return &training.TrainingModule{
		DraftAggregateRoot: m.ToDraftAggregateRoot(),
		Code:               m.Code,
		CreationMoment:     m.CreationMoment,
		Details:            m.Details,
		DifficultyLevel:    m.DifficultyLevel,
		UpdateMoment:       m.UpdateMoment,
		Link:               m.Link,
		EstimatedTotalTime: m.EstimatedTotalTime,
		DeveloperID:        m.DeveloperID,
		ProjectID:          m.ProjectID,
	}
}

// TrainingModuleModelFromDomain creates a persistence model from a domain TrainingModule
func TrainingModuleModelFromDomain(t *training.TrainingModule) *TrainingModuleModel {
	m := &TrainingModuleModel{
		Code:               t.Code,
		CreationMoment:     t.CreationMoment,
		Details:            t.Details,
		DifficultyLevel:    t.DifficultyLevel,
		UpdateMoment:       t.UpdateMoment,
		Link:               t.Link,
		EstimatedTotalTime: t.EstimatedTotalTime,
		DeveloperID:        t.DeveloperID,
		ProjectID:          t.ProjectID,
	}
	m.FromDomainDraftAggregateRoot(t.DraftAggregateRoot)
	return m
}
