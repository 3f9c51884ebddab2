package administrator

import (
	"context"
	"errors"
	"testing"

	"github.com/acme/backend/internal/application/form"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/acme/backend/internal/domain/system"
	"github.com/acme/backend/internal/infrastructure/i18n"
	"github.com/acme/backend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupService(t *testing.T) (*SystemConfigurationService, *testutil.MockConfigurationRepository, *system.Configuration) {
	t.Helper()
	repo := new(testutil.MockConfigurationRepository)
	cfg, err := system.NewConfiguration(valueobject.EUR, "EUR,USD,GBP")
	require.NoError(t, err)
	repo.On("Find", mock.Anything).Return(cfg, nil).Maybe()
	return NewSystemConfigurationService(repo, zap.NewNop()), repo, cfg
}

func TestSystemConfigurationService_Show(t *testing.T) {
	service, _, _ := setupService(t)

	for _, role := range []identity.RoleName{identity.RoleClient, identity.RoleDeveloper, identity.RoleSponsor, identity.RoleAdministrator} {
		resp, err := service.Show(context.Background(), testutil.RequestAs(role, "someone"))
		require.NoError(t, err, role)
		assert.Equal(t, "EUR", resp.SystemCurrency)
		assert.Equal(t, []string{"EUR", "USD", "GBP"}, resp.Currencies)
	}

	_, err := service.Show(context.Background(), form.Request{})
	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestSystemConfigurationService_Update(t *testing.T) {
	ctx := context.Background()
	admin := testutil.RequestAs(identity.RoleAdministrator, "admin")

	t.Run("replaces both settings", func(t *testing.T) {
		service, repo, cfg := setupService(t)
		repo.On("Save", ctx, cfg).Return(nil)

		resp, err := service.Update(ctx, admin, SystemConfigurationInput{SystemCurrency: "USD", AcceptedCurrencies: "USD, EUR"})

		require.NoError(t, err)
		assert.Equal(t, "USD", resp.SystemCurrency)
		assert.Equal(t, "USD,EUR", resp.AcceptedCurrencies)
		assert.Equal(t, 2, resp.Version)
		repo.AssertExpectations(t)
	})

	t.Run("system currency must be accepted", func(t *testing.T) {
		service, repo, _ := setupService(t)

		_, err := service.Update(ctx, admin, SystemConfigurationInput{SystemCurrency: "GBP", AcceptedCurrencies: "EUR,USD"})

		var verr *form.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.Has("systemCurrency", i18n.KeySystemCurrencyNotAccepted))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("codes must be three upper-case letters", func(t *testing.T) {
		service, _, _ := setupService(t)

		_, err := service.Update(ctx, admin, SystemConfigurationInput{SystemCurrency: "EUR", AcceptedCurrencies: "EUR,usd"})

		var verr *form.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.Has("acceptedCurrencies", i18n.KeyCurrencyCodeInvalid))
		assert.False(t, verr.Has("systemCurrency", i18n.KeySystemCurrencyNotAccepted))
	})

	t.Run("administrators only", func(t *testing.T) {
		service, _, _ := setupService(t)

		_, err := service.Update(ctx, testutil.RequestAs(identity.RoleSponsor, "sponsor1"), SystemConfigurationInput{SystemCurrency: "EUR", AcceptedCurrencies: "EUR"})
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})
}
