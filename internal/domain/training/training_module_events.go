package training

import (
	"github.com/acme/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant for TrainingModule
const AggregateTypeTrainingModule = "TrainingModule"

// Event type constants for TrainingModule
const (
	EventTypeTrainingModuleCreated   = "TrainingModuleCreated"
	EventTypeTrainingModulePublished = "TrainingModulePublished"
)

// TrainingModuleCreatedEvent is published when a developer registers a module
type TrainingModuleCreatedEvent struct {
	shared.BaseDomainEvent
	Code        string    `json:"code"`
	DeveloperID uuid.UUID `json:"developer_id"`
	ProjectID   uuid.UUID `json:"project_id"`
}

// NewTrainingModuleCreatedEvent creates a new TrainingModuleCreatedEvent
func NewTrainingModuleCreatedEvent(m *TrainingModule) *TrainingModuleCreatedEvent {
	return &TrainingModuleCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTrainingModuleCreated, AggregateTypeTrainingModule, m.ID),
		Code:            m.Code,
		DeveloperID:     m.DeveloperID,
		ProjectID:       m.ProjectID,
	}
}

// TrainingModulePublishedEvent is published when a module leaves draft mode
type TrainingModulePublishedEvent struct {
	shared.BaseDomainEvent
	Code        string    `json:"code"`
	DeveloperID uuid.UUID `json:"developer_id"`
}

// NewTrainingModulePublishedEvent creates a new TrainingModulePublishedEvent
func NewTrainingModulePublishedEvent(m *TrainingModule) *TrainingModulePublishedEvent {
	return &TrainingModulePublishedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTrainingModulePublished, AggregateTypeTrainingModule, m.ID),
		Code:            m.Code,
		DeveloperID:     m.DeveloperID,
	}
}
