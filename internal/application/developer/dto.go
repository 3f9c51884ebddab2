package developer

import (
	"time"

	"github.com/acme/backend/internal/application/form"
	"github.com/acme/backend/internal/domain/training"
	"github.com/google/uuid"
)

// TrainingModuleInput is the bound form of a training module
type TrainingModuleInput struct {
	Code               string     `json:"code" binding:"required,module_code"`
	CreationMoment     time.Time  `json:"creationMoment" binding:"required,past"`
	Details            string     `json:"details" binding:"required,max=100"`
	DifficultyLevel    string     `json:"difficultyLevel" binding:"required,oneof=BASIC INTERMEDIATE ADVANCED"`
	UpdateMoment       *time.Time `json:"updateMoment" binding:"omitempty,past"`
	Link               string     `json:"link" binding:"omitempty,url,max=255"`
	EstimatedTotalTime int        `json:"estimatedTotalTime" binding:"required,min=1"`
	Project            string     `json:"project"`
}

// TrainingModuleListFilter holds paging for list-mine
type TrainingModuleListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by" binding:"omitempty,oneof=code creation_moment difficulty_level created_at"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search" binding:"max=100"`
}

// TrainingModuleResponse is the unbound view of a training module
type TrainingModuleResponse struct {
	ID                 uuid.UUID          `json:"id"`
	Code               string             `json:"code"`
	CreationMoment     time.Time          `json:"creationMoment"`
	Details            string             `json:"details"`
	DifficultyLevel    string             `json:"difficultyLevel"`
	UpdateMoment       *time.Time         `json:"updateMoment,omitempty"`
	Link               string             `json:"link"`
	EstimatedTotalTime int                `json:"estimatedTotalTime"`
	DraftMode          bool               `json:"draftMode"`
	Difficulty         form.SelectChoices `json:"difficulty"`
	Project            string             `json:"project"`
	Projects           form.SelectChoices `json:"projects"`
	Version            int                `json:"version"`
}

// TrainingModuleListItem is one row of list-mine
type TrainingModuleListItem struct {
	ID                 uuid.UUID `json:"id"`
	Code               string    `json:"code"`
	CreationMoment     time.Time `json:"creationMoment"`
	DifficultyLevel    string    `json:"difficultyLevel"`
	EstimatedTotalTime int       `json:"estimatedTotalTime"`
	DraftMode          string    `json:"draftMode"`
}

func (in TrainingModuleInput) fields() training.Fields {
	level, _ := training.ParseDifficulty(in.DifficultyLevel)
	return training.Fields{
		Code:               in.Code,
		CreationMoment:     in.CreationMoment,
		Details:            in.Details,
		DifficultyLevel:    level,
		UpdateMoment:       in.UpdateMoment,
		Link:               in.Link,
		EstimatedTotalTime: in.EstimatedTotalTime,
		ProjectID:          form.ParseReference(in.Project),
	}
}

// ToTrainingModuleResponse unbinds a training module
func ToTrainingModuleResponse(m *training.TrainingModule, projects form.SelectChoices) *TrainingModuleResponse {
	return &TrainingModuleResponse{
		ID:                 m.ID,
		Code:               m.Code,
		CreationMoment:     m.CreationMoment,
		Details:            m.Details,
		DifficultyLevel:    string(m.DifficultyLevel),
		UpdateMoment:       m.UpdateMoment,
		Link:               m.Link,
		EstimatedTotalTime: m.EstimatedTotalTime,
		DraftMode:          m.DraftMode,
		Difficulty:         form.FromEnum(training.Difficulties, m.DifficultyLevel),
		Project:            projects.Selected().Key,
		Projects:           projects,
		Version:            m.Version,
	}
}
