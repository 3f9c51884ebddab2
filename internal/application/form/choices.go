package form

import (
	"github.com/acme/backend/internal/domain/project"
	"github.com/google/uuid"
)

// ProjectChoices lists projects keyed by id and labelled by code
func ProjectChoices(projects []project.Project, selected uuid.UUID) SelectChoices {
	return FromEntities(projects,
		func(p project.Project) string { return p.ID.String() },
		func(p project.Project) string { return p.Code },
		func(p project.Project) bool { return selected != uuid.Nil && p.ID == selected },
	)
}

// ParseReference turns a choice key back into an id. The empty choice and
// malformed keys both resolve to uuid.Nil.
func ParseReference(key string) uuid.UUID {
	if key == "" || key == EmptyChoiceKey {
		return uuid.Nil
	}
	id, err := uuid.Parse(key)
	if err != nil {
		return uuid.Nil
	}
	return id
}
