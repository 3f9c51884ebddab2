package developer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/acme/backend/internal/application/form"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/domain/project"
	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/acme/backend/internal/domain/training"
	"github.com/acme/backend/internal/infrastructure/i18n"
	"github.com/acme/backend/tests/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTrainingModuleService(t *testing.T) (*TrainingModuleService, *testutil.MockTrainingModuleRepository, *testutil.RecordingPublisher, *project.Project) {
	t.Helper()
	modules := new(testutil.MockTrainingModuleRepository)
	projects := new(testutil.MockProjectRepository)
	events := &testutil.RecordingPublisher{}

	p, err := project.NewProject("DEV-0001", "Onboarding", valueobject.MustMoney("500", valueobject.EUR), uuid.New())
	require.NoError(t, err)
	projects.On("FindAll", mock.Anything).Return([]project.Project{*p}, nil).Maybe()
	projects.On("FindByID", mock.Anything, p.ID).Return(p, nil).Maybe()

	return NewTrainingModuleService(modules, projects, events, zap.NewNop()), modules, events, p
}

func moduleInput(p *project.Project) TrainingModuleInput {
	return TrainingModuleInput{
		Code:               "TM-001",
		CreationMoment:     time.Now().Add(-72 * time.Hour),
		Details:            "Intro to the portal",
		DifficultyLevel:    "BASIC",
		Link:               "https://example.com/tm-001",
		EstimatedTotalTime: 4,
		Project:            p.ID.String(),
	}
}

func TestTrainingModuleService_Create(t *testing.T) {
	ctx := context.Background()
	req := testutil.RequestAs(identity.RoleDeveloper, "dev1")

	t.Run("creates a draft with difficulty and project choices", func(t *testing.T) {
		service, modules, events, p := setupTrainingModuleService(t)
		modules.On("FindByCode", ctx, "TM-001").Return(nil, shared.ErrNotFound)
		modules.On("Save", ctx, mock.AnythingOfType("*training.TrainingModule")).Return(nil)

		resp, err := service.Create(ctx, req, moduleInput(p))

		require.NoError(t, err)
		assert.True(t, resp.DraftMode)
		assert.Equal(t, "BASIC", resp.Difficulty.Selected().Key)
		assert.Len(t, resp.Difficulty.Choices, len(training.Difficulties)+1)
		assert.Equal(t, p.ID.String(), resp.Project)
		assert.Equal(t, []string{training.EventTypeTrainingModuleCreated}, events.Types())

		saved := modules.Calls[1].Arguments.Get(1).(*training.TrainingModule)
		assert.Equal(t, req.Principal.ActiveRoleID(), saved.DeveloperID)
	})

	t.Run("rejects an update moment before the creation moment", func(t *testing.T) {
		service, modules, _, p := setupTrainingModuleService(t)
		modules.On("FindByCode", ctx, "TM-001").Return(nil, shared.ErrNotFound)
		in := moduleInput(p)
		before := in.CreationMoment.Add(-time.Hour)
		in.UpdateMoment = &before

		_, err := service.Create(ctx, req, in)

		var verr *form.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.Has("updateMoment", i18n.KeyTrainingModuleUpdateDateInvalid))
		modules.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects an equal update moment", func(t *testing.T) {
		service, modules, _, p := setupTrainingModuleService(t)
		modules.On("FindByCode", ctx, "TM-001").Return(nil, shared.ErrNotFound)
		in := moduleInput(p)
		same := in.CreationMoment
		in.UpdateMoment = &same

		_, err := service.Create(ctx, req, in)

		var verr *form.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.Has("updateMoment", i18n.KeyTrainingModuleUpdateDateInvalid))
	})

	t.Run("rejects a duplicated code", func(t *testing.T) {
		service, modules, _, p := setupTrainingModuleService(t)
		other := training.NewTrainingModule(uuid.New())
		modules.On("FindByCode", ctx, "TM-001").Return(other, nil)

		_, err := service.Create(ctx, req, moduleInput(p))

		var verr *form.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.Has("code", i18n.KeyTrainingModuleDuplicated))
	})
}

func TestTrainingModuleService_Ownership(t *testing.T) {
	ctx := context.Background()
	req := testutil.RequestAs(identity.RoleDeveloper, "dev1")

	t.Run("hides another developer's module", func(t *testing.T) {
		service, modules, _, p := setupTrainingModuleService(t)
		m := training.NewTrainingModule(uuid.New())
		m.Bind(moduleInput(p).fields())
		modules.On("FindByID", ctx, m.ID).Return(m, nil)

		_, err := service.Show(ctx, req, m.ID)
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("refuses to edit a published module", func(t *testing.T) {
		service, modules, _, p := setupTrainingModuleService(t)
		m := training.NewTrainingModule(req.Principal.ActiveRoleID())
		m.Bind(moduleInput(p).fields())
		require.NoError(t, m.Publish())
		modules.On("FindByID", ctx, m.ID).Return(m, nil)

		_, err := service.Update(ctx, req, m.ID, moduleInput(p))
		assert.ErrorIs(t, err, shared.ErrForbidden)

		assert.ErrorIs(t, service.Delete(ctx, req, m.ID), shared.ErrForbidden)
	})
}

func TestTrainingModuleService_Publish(t *testing.T) {
	ctx := context.Background()
	req := testutil.RequestAs(identity.RoleDeveloper, "dev1")
	service, modules, events, p := setupTrainingModuleService(t)

	m := training.NewTrainingModule(req.Principal.ActiveRoleID())
	m.Bind(moduleInput(p).fields())
	modules.On("FindByID", ctx, m.ID).Return(m, nil)
	modules.On("FindByCode", ctx, "TM-001").Return(m, nil)
	modules.On("Save", ctx, m).Return(nil)

	resp, err := service.Publish(ctx, req, m.ID, moduleInput(p))

	require.NoError(t, err)
	assert.False(t, resp.DraftMode)
	assert.Equal(t, []string{training.EventTypeTrainingModulePublished}, events.Types())
}

func TestTrainingModuleService_ListMine(t *testing.T) {
	ctx := context.Background()
	req := testutil.RequestAs(identity.RoleDeveloper, "dev1")
	service, modules, _, p := setupTrainingModuleService(t)

	m := training.NewTrainingModule(req.Principal.ActiveRoleID())
	m.Bind(moduleInput(p).fields())
	modules.On("FindAllByDeveloper", ctx, req.Principal.ActiveRoleID(), mock.Anything).
		Return([]training.TrainingModule{*m}, nil)
	modules.On("CountByDeveloper", ctx, req.Principal.ActiveRoleID(), mock.Anything).
		Return(int64(1), nil)

	items, total, err := service.ListMine(ctx, req, TrainingModuleListFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Yes", items[0].DraftMode)
	assert.Equal(t, "BASIC", items[0].DifficultyLevel)
}
