package handler

import (
	"net/http"
	"testing"

	"github.com/acme/backend/internal/application/administrator"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/acme/backend/internal/domain/system"
	"github.com/acme/backend/internal/infrastructure/i18n"
	"github.com/acme/backend/internal/interfaces/http/middleware"
	"github.com/acme/backend/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSystemConfigurationRouter(t *testing.T, role identity.RoleName) (*gin.Engine, *testutil.MockConfigurationRepository) {
	t.Helper()
	settings := new(testutil.MockConfigurationRepository)
	cfg, err := system.NewConfiguration(valueobject.EUR, "EUR,USD")
	require.NoError(t, err)
	settings.On("Find", mock.Anything).Return(cfg, nil).Maybe()

	h := NewSystemConfigurationHandler(administrator.NewSystemConfigurationService(settings, zap.NewNop()))

	router := gin.New()
	router.Use(middleware.Locale(), withPrincipal(testutil.PrincipalWith(role, "someone")))
	router.GET("/api/v1/system-configuration", h.Get)
	router.PUT("/api/v1/administrator/system-configuration",
		middleware.RequireRole(identity.RoleAdministrator), h.Update)
	return router, settings
}

func TestSystemConfigurationHandler_Get(t *testing.T) {
	for _, role := range []identity.RoleName{identity.RoleClient, identity.RoleSponsor, identity.RoleAdministrator} {
		t.Run(string(role), func(t *testing.T) {
			router, _ := newSystemConfigurationRouter(t, role)

			w := testutil.PerformRequest(t, router, http.MethodGet, "/api/v1/system-configuration", nil, nil)

			assert.Equal(t, http.StatusOK, w.Code)
			data := testutil.AssertSuccessResponse(t, w)["data"].(map[string]any)
			assert.Equal(t, "EUR", data["systemCurrency"])
			assert.Equal(t, []any{"EUR", "USD"}, data["currencies"])
		})
	}
}

func TestSystemConfigurationHandler_Update(t *testing.T) {
	t.Run("administrator updates", func(t *testing.T) {
		router, settings := newSystemConfigurationRouter(t, identity.RoleAdministrator)
		settings.On("Save", mock.Anything, mock.AnythingOfType("*system.Configuration")).Return(nil)

		w := testutil.PerformRequest(t, router, http.MethodPut, "/api/v1/administrator/system-configuration",
			administrator.SystemConfigurationInput{SystemCurrency: "USD", AcceptedCurrencies: "USD,GBP"}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := testutil.AssertSuccessResponse(t, w)["data"].(map[string]any)
		assert.Equal(t, "USD", data["systemCurrency"])
		assert.Equal(t, "USD,GBP", data["acceptedCurrencies"])
		settings.AssertExpectations(t)
	})

	t.Run("other roles are forbidden", func(t *testing.T) {
		router, settings := newSystemConfigurationRouter(t, identity.RoleDeveloper)

		w := testutil.PerformRequest(t, router, http.MethodPut, "/api/v1/administrator/system-configuration",
			administrator.SystemConfigurationInput{SystemCurrency: "USD", AcceptedCurrencies: "USD"}, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		settings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("system currency must be accepted", func(t *testing.T) {
		router, settings := newSystemConfigurationRouter(t, identity.RoleAdministrator)

		w := testutil.PerformRequest(t, router, http.MethodPut, "/api/v1/administrator/system-configuration",
			administrator.SystemConfigurationInput{SystemCurrency: "GBP", AcceptedCurrencies: "EUR,USD"}, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		errInfo := testutil.AssertErrorResponse(t, w, "VALIDATION_ERROR")
		detail := errInfo["details"].([]any)[0].(map[string]any)
		assert.Equal(t, "systemCurrency", detail["field"])
		assert.Equal(t, i18n.KeySystemCurrencyNotAccepted, detail["code"])
		settings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("malformed currency fails binding", func(t *testing.T) {
		router, _ := newSystemConfigurationRouter(t, identity.RoleAdministrator)

		w := testutil.PerformRequest(t, router, http.MethodPut, "/api/v1/administrator/system-configuration",
			map[string]string{"systemCurrency": "euro", "acceptedCurrencies": "EUR"}, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
