package training

import (
	"time"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TrainingModule is a unit of training a developer publishes for a project
type TrainingModule struct {
	shared.DraftAggregateRoot
	Code               string
	CreationMoment     time.Time
	Details            string
	DifficultyLevel    Difficulty
	UpdateMoment       *time.Time
	Link               string
	EstimatedTotalTime int
	DeveloperID        uuid.UUID
	ProjectID          uuid.UUID
}

// Fields holds the developer-editable attributes of a training module
type Fields struct {
	Code               string
	CreationMoment     time.Time
	Details            string
	DifficultyLevel    Difficulty
	UpdateMoment       *time.Time
	Link               string
	EstimatedTotalTime int
	ProjectID          uuid.UUID
}

// NewTrainingModule creates an empty draft module owned by the developer
func NewTrainingModule(developerID uuid.UUID) *TrainingModule {
	return &TrainingModule{
		DraftAggregateRoot: shared.NewDraftAggregateRoot(),
		DeveloperID:        developerID,
	}
}

// Bind copies the editable fields onto the module
func (m *TrainingModule) Bind(f Fields) {
	m.Code = f.Code
	m.CreationMoment = f.CreationMoment
	m.Details = f.Details
	m.DifficultyLevel = f.DifficultyLevel
	m.UpdateMoment = f.UpdateMoment
	m.Link = f.Link
	m.EstimatedTotalTime = f.EstimatedTotalTime
	m.ProjectID = f.ProjectID
}

// IsOwnedBy reports whether the module belongs to the developer
func (m *TrainingModule) IsOwnedBy(developerID uuid.UUID) bool {
	return developerID != uuid.Nil && m.DeveloperID == developerID
}

// HasValidUpdateMoment is true unless both moments are set and the update
// moment is not strictly after the creation moment.
func (m *TrainingModule) HasValidUpdateMoment() bool {
	if m.UpdateMoment == nil || m.CreationMoment.IsZero() {
		return true
	}
	return m.UpdateMoment.After(m.CreationMoment)
}

// MarkCreated queues the creation event
func (m *TrainingModule) MarkCreated() {
	m.AddDomainEvent(NewTrainingModuleCreatedEvent(m))
}

// Publish freezes the module
func (m *TrainingModule) Publish() error {
	if err := m.MarkPublished(); err != nil {
		return err
	}
	m.AddDomainEvent(NewTrainingModulePublishedEvent(m))
	return nil
}
