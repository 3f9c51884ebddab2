package developer

import (
	"context"
	"errors"

	"github.com/acme/backend/internal/application/form"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/domain/project"
	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/training"
	"github.com/acme/backend/internal/infrastructure/i18n"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TrainingModuleService runs the developer-facing training module operations
type TrainingModuleService struct {
	modules  training.TrainingModuleRepository
	projects project.ProjectRepository
	events   shared.EventPublisher
	logger   *zap.Logger
}

// NewTrainingModuleService creates a new TrainingModuleService
func NewTrainingModuleService(
	modules training.TrainingModuleRepository,
	projects project.ProjectRepository,
	events shared.EventPublisher,
	logger *zap.Logger,
) *TrainingModuleService {
	return &TrainingModuleService{
		modules:  modules,
		projects: projects,
		events:   events,
		logger:   logger,
	}
}

// ListMine lists the training modules of the calling developer
func (s *TrainingModuleService) ListMine(ctx context.Context, req form.Request, filter TrainingModuleListFilter) ([]TrainingModuleListItem, int64, error) {
	developerID, ok := req.Principal.RoleID(identity.RoleDeveloper)
	if !ok {
		return nil, 0, shared.ErrForbidden
	}

	if filter.OrderBy == "" {
		filter.OrderBy = "code"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}.Normalize()

	modules, err := s.modules.FindAllByDeveloper(ctx, developerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.modules.CountByDeveloper(ctx, developerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	items := make([]TrainingModuleListItem, len(modules))
	for i := range modules {
		m := &modules[i]
		items[i] = TrainingModuleListItem{
			ID:                 m.ID,
			Code:               m.Code,
			CreationMoment:     m.CreationMoment,
			DifficultyLevel:    string(m.DifficultyLevel),
			EstimatedTotalTime: m.EstimatedTotalTime,
			DraftMode:          i18n.YesNo(req.Locale, m.DraftMode),
		}
	}
	return items, total, nil
}

// Show returns a training module owned by the calling developer
func (s *TrainingModuleService) Show(ctx context.Context, req form.Request, id uuid.UUID) (*TrainingModuleResponse, error) {
	m, err := s.loadOwned(ctx, req, id)
	if err != nil {
		return nil, err
	}
	return s.unbind(ctx, m)
}

// Create registers a new draft training module. Any developer may create one.
func (s *TrainingModuleService) Create(ctx context.Context, req form.Request, in TrainingModuleInput) (*TrainingModuleResponse, error) {
	developerID, ok := req.Principal.RoleID(identity.RoleDeveloper)
	if !ok {
		return nil, shared.ErrForbidden
	}

	m := training.NewTrainingModule(developerID)
	m.Bind(in.fields())

	if err := s.validate(ctx, m); err != nil {
		return nil, err
	}

	m.MarkCreated()
	if err := s.modules.Save(ctx, m); err != nil {
		return nil, form.OnDuplicate(err, "code", i18n.KeyTrainingModuleDuplicated)
	}
	s.publishEvents(ctx, m)

	s.logger.Info("Training module created",
		zap.String("training_module_id", m.ID.String()),
		zap.String("code", m.Code),
		zap.String("developer_id", developerID.String()))

	return s.unbind(ctx, m)
}

// Update edits a draft training module owned by the calling developer
func (s *TrainingModuleService) Update(ctx context.Context, req form.Request, id uuid.UUID, in TrainingModuleInput) (*TrainingModuleResponse, error) {
	m, err := s.loadEditable(ctx, req, id)
	if err != nil {
		return nil, err
	}

	m.Bind(in.fields())
	if err := s.validate(ctx, m); err != nil {
		return nil, err
	}
	m.IncrementVersion()

	if err := s.modules.Save(ctx, m); err != nil {
		return nil, form.OnDuplicate(err, "code", i18n.KeyTrainingModuleDuplicated)
	}

	s.logger.Info("Training module updated",
		zap.String("training_module_id", m.ID.String()),
		zap.String("code", m.Code))

	return s.unbind(ctx, m)
}

// Publish validates the submitted form one last time and leaves draft mode
func (s *TrainingModuleService) Publish(ctx context.Context, req form.Request, id uuid.UUID, in TrainingModuleInput) (*TrainingModuleResponse, error) {
	m, err := s.loadEditable(ctx, req, id)
	if err != nil {
		return nil, err
	}

	m.Bind(in.fields())
	if err := s.validate(ctx, m); err != nil {
		return nil, err
	}
	if err := m.Publish(); err != nil {
		return nil, err
	}

	if err := s.modules.Save(ctx, m); err != nil {
		return nil, form.OnDuplicate(err, "code", i18n.KeyTrainingModuleDuplicated)
	}
	s.publishEvents(ctx, m)

	s.logger.Info("Training module published",
		zap.String("training_module_id", m.ID.String()),
		zap.String("code", m.Code))

	return s.unbind(ctx, m)
}

// Delete removes a draft training module owned by the calling developer
func (s *TrainingModuleService) Delete(ctx context.Context, req form.Request, id uuid.UUID) error {
	m, err := s.loadEditable(ctx, req, id)
	if err != nil {
		return err
	}
	if err := s.modules.Delete(ctx, m.ID); err != nil {
		return err
	}
	s.logger.Info("Training module deleted", zap.String("training_module_id", m.ID.String()))
	return nil
}

// AuthoriseEdit fails with ErrForbidden unless the caller may change the module
func (s *TrainingModuleService) AuthoriseEdit(ctx context.Context, req form.Request, id uuid.UUID) error {
	_, err := s.loadEditable(ctx, req, id)
	return err
}

func (s *TrainingModuleService) loadOwned(ctx context.Context, req form.Request, id uuid.UUID) (*training.TrainingModule, error) {
	m, err := s.modules.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrForbidden
		}
		return nil, err
	}
	if !req.Principal.HasRole(identity.RoleDeveloper, m.DeveloperID) {
		return nil, shared.ErrForbidden
	}
	return m, nil
}

func (s *TrainingModuleService) loadEditable(ctx context.Context, req form.Request, id uuid.UUID) (*training.TrainingModule, error) {
	m, err := s.loadOwned(ctx, req, id)
	if err != nil {
		return nil, err
	}
	if !m.IsDraft() {
		return nil, shared.ErrForbidden
	}
	return m, nil
}

func (s *TrainingModuleService) validate(ctx context.Context, m *training.TrainingModule) error {
	errs := form.NewErrors()

	if !errs.HasErrors("code") {
		existing, err := s.modules.FindByCode(ctx, m.Code)
		switch {
		case errors.Is(err, shared.ErrNotFound):
		case err != nil:
			return err
		default:
			errs.State(existing.SameAs(m), "code", i18n.KeyTrainingModuleDuplicated)
		}
	}

	if !errs.HasErrors("updateMoment") {
		errs.State(m.HasValidUpdateMoment(), "updateMoment", i18n.KeyTrainingModuleUpdateDateInvalid)
	}

	if !errs.HasErrors("difficultyLevel") {
		errs.State(m.DifficultyLevel.IsValid(), "difficultyLevel", i18n.KeyInvalid)
	}

	if !errs.HasErrors("project") {
		errs.State(s.projectExists(ctx, m.ProjectID), "project", i18n.KeyTrainingModuleInvalidProject)
	}

	return errs.Err()
}

func (s *TrainingModuleService) projectExists(ctx context.Context, id uuid.UUID) bool {
	if id == uuid.Nil {
		return false
	}
	_, err := s.projects.FindByID(ctx, id)
	return err == nil
}

func (s *TrainingModuleService) unbind(ctx context.Context, m *training.TrainingModule) (*TrainingModuleResponse, error) {
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToTrainingModuleResponse(m, form.ProjectChoices(projects, m.ProjectID)), nil
}

func (s *TrainingModuleService) publishEvents(ctx context.Context, m *training.TrainingModule) {
	if err := shared.PublishAndClear(ctx, s.events, m); err != nil {
		s.logger.Warn("Failed to publish training module events",
			zap.String("training_module_id", m.ID.String()),
			zap.Error(err))
	}
}
