package project

import (
	"regexp"
	"strings"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

var codePattern = regexp.MustCompile(`^[A-Z]{3}-\d{4}$`)

// Project is the unit of work contracts, training modules and sponsorships refer to
type Project struct {
	shared.DraftAggregateRoot
	Code           string
	Title          string
	Abstract       string
	HasFatalErrors bool
	Cost           valueobject.Money
	Link           string
	ManagerID      uuid.UUID
}

// NewProject creates a draft project
func NewProject(code, title string, cost valueobject.Money, managerID uuid.UUID) (*Project, error) {
	code = strings.TrimSpace(code)
	if !codePattern.MatchString(code) {
		return nil, shared.NewDomainError("INVALID_CODE", "Project code must match AAA-0000")
	}
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Project title cannot be empty")
	}
	if cost.IsEmpty() || cost.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Project cost must be zero or positive")
	}
	return &Project{
		DraftAggregateRoot: shared.NewDraftAggregateRoot(),
		Code:               code,
		Title:              title,
		Cost:               cost,
		ManagerID:          managerID,
	}, nil
}

// Publish makes the project visible; projects with fatal errors stay in draft
func (p *Project) Publish() error {
	if p.HasFatalErrors {
		return shared.NewDomainError("PROJECT_HAS_FATAL_ERRORS", "Projects with fatal errors cannot be published")
	}
	return p.MarkPublished()
}
