package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/acme/backend/internal/application/administrator"
	"github.com/acme/backend/internal/application/client"
	"github.com/acme/backend/internal/application/developer"
	identityapp "github.com/acme/backend/internal/application/identity"
	"github.com/acme/backend/internal/application/sponsor"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/domain/project"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/acme/backend/internal/infrastructure/auth"
	"github.com/acme/backend/internal/infrastructure/cache"
	"github.com/acme/backend/internal/infrastructure/config"
	"github.com/acme/backend/internal/infrastructure/event"
	"github.com/acme/backend/internal/infrastructure/persistence"
	"github.com/acme/backend/internal/interfaces/http/handler"
	"github.com/acme/backend/internal/interfaces/http/middleware"
	"github.com/acme/backend/internal/interfaces/http/router"
	"github.com/acme/backend/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// APITestServer is the HTTP API wired the way the server wires it, on a
// container database
type APITestServer struct {
	DB     *TestDB
	Engine *gin.Engine
}

// NewAPITestServer creates a server over a clean shared database
func NewAPITestServer(t *testing.T) *APITestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	require.NoError(t, middleware.SetupValidator())

	testDB := NewSharedTestDB(t)
	testDB.CleanTables()
	log := zap.NewNop()
	db := testDB.DB

	accounts := persistence.NewGormUserAccountRepository(db)
	profiles := persistence.NewGormRoleProfileRepository(db)
	projects := persistence.NewGormProjectRepository(db)
	contracts := persistence.NewGormContractRepository(db)
	modules := persistence.NewGormTrainingModuleRepository(db)
	sponsorships := persistence.NewGormSponsorshipRepository(db)
	invoices := persistence.NewGormInvoiceRepository(db)
	settings := persistence.NewGormConfigurationRepository(db)

	dashboardCache := cache.NewInMemoryDashboardCache()
	t.Cleanup(func() { _ = dashboardCache.Close() })

	bus := event.NewInMemoryEventBus(log)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "integration-secret-key-32-characters",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "acme-test",
		MaxRefreshCount:        3,
	})
	blacklist := auth.NewInMemoryTokenBlacklist()

	dashboards := sponsor.NewDashboardService(sponsorships, invoices, settings, profiles, log,
		sponsor.WithDashboardCache(dashboardCache, time.Hour))
	bus.Subscribe(sponsor.NewDashboardInvalidationHandler(dashboards, log))
	require.NoError(t, bus.Start(context.Background()))

	engine := gin.New()
	engine.Use(middleware.RequestID(), middleware.Locale())

	r := router.NewRouter(engine)
	r.Register(router.APIGroups(router.Handlers{
		Auth:                handler.NewAuthHandler(identityapp.NewAuthService(accounts, jwtService, blacklist, log)),
		System:              handler.NewSystemHandler("acme-backend", "test", nil),
		SystemConfiguration: handler.NewSystemConfigurationHandler(administrator.NewSystemConfigurationService(settings, log)),
		Contracts:           handler.NewContractHandler(client.NewContractService(contracts, projects, settings, bus, log)),
		TrainingModules:     handler.NewTrainingModuleHandler(developer.NewTrainingModuleService(modules, projects, bus, log)),
		Sponsorships: handler.NewSponsorshipHandler(
			sponsor.NewSponsorshipService(sponsorships, projects, settings, bus, log), dashboards),
		Invoices: handler.NewInvoiceHandler(sponsor.NewInvoiceService(invoices, sponsorships, settings, bus, log)),
	}, router.Guards{
		Authenticate: middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			JWTService:     jwtService,
			TokenBlacklist: blacklist,
			Logger:         log,
		}),
	})...)
	r.Setup()

	return &APITestServer{DB: testDB, Engine: engine}
}

// Login signs in an account created with TestDB.CreateAccount and returns the access token
func (s *APITestServer) Login(t *testing.T, username string) string {
	t.Helper()
	w := testutil.PerformRequest(t, s.Engine, http.MethodPost, "/api/v1/auth/login",
		map[string]any{"username": username, "password": username + "-password"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := testutil.AssertSuccessResponse(t, w)["data"].(map[string]any)
	return data["token"].(map[string]any)["access_token"].(string)
}

// Do performs an authenticated request
func (s *APITestServer) Do(t *testing.T, token, method, path string, body any) (int, map[string]any) {
	t.Helper()
	headers := map[string]string{}
	if token != "" {
		headers["Authorization"] = middleware.BearerPrefix + token
	}
	w := testutil.PerformRequest(t, s.Engine, method, path, body, headers)
	if w.Code == http.StatusNoContent {
		return w.Code, nil
	}
	return w.Code, testutil.JSONResponse(t, w)
}

func contractBody(p *project.Project) map[string]any {
	return map[string]any{
		"code":                "ACM-101",
		"instantiationMoment": time.Now().Add(-24 * time.Hour).UTC().Format(time.RFC3339),
		"providerName":        "Acme Provider",
		"customerName":        "Acme Customer",
		"goals":               "Deliver the portal",
		"budget":              map[string]any{"amount": "1500.00", "currency": "EUR"},
		"project":             p.ID.String(),
	}
}

func TestAPI_ClientContractLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	s := NewAPITestServer(t)
	s.DB.CreateAccount(identity.RoleClient, "client1")
	s.DB.CreateAccount(identity.RoleClient, "client2")
	s.DB.CreateAccount(identity.RoleSponsor, "sponsor1")
	p := s.DB.CreateProject("ACM-0100", false)

	token := s.Login(t, "client1")

	code, resp := s.Do(t, token, http.MethodPost, "/api/v1/client/contracts", contractBody(p))
	require.Equal(t, http.StatusCreated, code, resp)
	created := resp["data"].(map[string]any)
	id := created["id"].(string)
	assert.Equal(t, true, created["draftMode"])
	assert.Equal(t, p.ID.String(), created["project"])

	t.Run("listed as a draft", func(t *testing.T) {
		code, resp := s.Do(t, token, http.MethodGet, "/api/v1/client/contracts", nil)
		require.Equal(t, http.StatusOK, code)
		items := resp["data"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, "Yes", items[0].(map[string]any)["draftMode"])
	})

	t.Run("duplicated code is a field error", func(t *testing.T) {
		code, resp := s.Do(t, token, http.MethodPost, "/api/v1/client/contracts", contractBody(p))
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		details := resp["error"].(map[string]any)["details"].([]any)
		assert.Equal(t, "code", details[0].(map[string]any)["field"])
	})

	t.Run("other principals cannot see it", func(t *testing.T) {
		other := s.Login(t, "client2")
		code, _ := s.Do(t, other, http.MethodGet, "/api/v1/client/contracts/"+id, nil)
		assert.Equal(t, http.StatusForbidden, code)

		sponsorToken := s.Login(t, "sponsor1")
		code, _ = s.Do(t, sponsorToken, http.MethodGet, "/api/v1/client/contracts/"+id, nil)
		assert.Equal(t, http.StatusForbidden, code)

		code, _ = s.Do(t, "", http.MethodGet, "/api/v1/client/contracts/"+id, nil)
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("published contracts are frozen", func(t *testing.T) {
		code, resp := s.Do(t, token, http.MethodPost, "/api/v1/client/contracts/"+id+"/publish", contractBody(p))
		require.Equal(t, http.StatusOK, code, resp)
		assert.Equal(t, false, resp["data"].(map[string]any)["draftMode"])

		code, _ = s.Do(t, token, http.MethodPut, "/api/v1/client/contracts/"+id, contractBody(p))
		assert.Equal(t, http.StatusForbidden, code)
		code, _ = s.Do(t, token, http.MethodDelete, "/api/v1/client/contracts/"+id, nil)
		assert.Equal(t, http.StatusForbidden, code)
	})
}

func TestAPI_SponsorInvoicesAndDashboard(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	s := NewAPITestServer(t)
	account := s.DB.CreateAccount(identity.RoleSponsor, "sponsor1")
	p := s.DB.CreateProject("ACM-0200", false)

	sp, err := sponsorship.NewSponsorship(account.Roles[identity.RoleSponsor], p.ID, "SP-200",
		valueobject.MustMoney("5000", valueobject.EUR), sponsorship.TypeFinancial)
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormSponsorshipRepository(s.DB.DB).Save(context.Background(), sp))

	token := s.Login(t, "sponsor1")

	// an empty dashboard is computed and cached
	code, resp := s.Do(t, token, http.MethodGet, "/api/v1/sponsor/dashboard", nil)
	require.Equal(t, http.StatusOK, code, resp)
	dashboard := resp["data"].(map[string]any)
	assert.Equal(t, float64(0), dashboard["totalNumInvoicesWithLink"])
	assert.Equal(t, []any{"EUR", "USD", "GBP"}, dashboard["supportedCurrencies"])

	registered := time.Now().Add(-48 * time.Hour).UTC()
	invoice := map[string]any{
		"code":             "IN-2024-0200",
		"registrationTime": registered.Format(time.RFC3339),
		"dueDate":          registered.AddDate(0, 2, 0).Format(time.RFC3339),
		"quantity":         map[string]any{"amount": "400.00", "currency": "EUR"},
		"tax":              "21",
		"link":             "https://acme.test/invoices/200",
	}

	code, resp = s.Do(t, token, http.MethodPost, "/api/v1/sponsor/invoices?masterId="+sp.ID.String(), invoice)
	require.Equal(t, http.StatusCreated, code, resp)
	invoiceID := resp["data"].(map[string]any)["id"].(string)
	total := resp["data"].(map[string]any)["totalAmount"].(map[string]any)["amount"].(string)
	assert.True(t, decimal.RequireFromString(total).Equal(decimal.NewFromInt(484)), total)

	t.Run("due date too soon", func(t *testing.T) {
		early := map[string]any{}
		for k, v := range invoice {
			early[k] = v
		}
		early["code"] = "IN-2024-0201"
		early["dueDate"] = registered.AddDate(0, 0, 10).Format(time.RFC3339)

		code, resp := s.Do(t, token, http.MethodPost, "/api/v1/sponsor/invoices?masterId="+sp.ID.String(), early)
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		details := resp["error"].(map[string]any)["details"].([]any)
		assert.Equal(t, "dueDate", details[0].(map[string]any)["field"])
	})

	code, resp = s.Do(t, token, http.MethodPost, "/api/v1/sponsor/invoices/"+invoiceID+"/publish", invoice)
	require.Equal(t, http.StatusOK, code, resp)

	code, resp = s.Do(t, token, http.MethodPost, "/api/v1/sponsor/sponsorships/"+sp.ID.String()+"/publish", nil)
	require.Equal(t, http.StatusOK, code, resp)

	t.Run("publish events refresh the cached dashboard", func(t *testing.T) {
		code, resp := s.Do(t, token, http.MethodGet, "/api/v1/sponsor/dashboard", nil)
		require.Equal(t, http.StatusOK, code)
		dashboard := resp["data"].(map[string]any)

		assert.Equal(t, float64(1), dashboard["totalNumInvoicesWithLink"])
		assert.Equal(t, float64(1), dashboard["totalNumInvoicesWithTaxLessOrEqualTo21"])

		amounts := dashboard["sponsorshipAmounts"].([]any)
		require.Len(t, amounts, 1)
		assert.Equal(t, "EUR", amounts[0].(map[string]any)["currency"])
		assert.Equal(t, float64(1), amounts[0].(map[string]any)["count"])

		quantities := dashboard["invoiceQuantities"].([]any)
		require.Len(t, quantities, 1)
		assert.Equal(t, float64(1), quantities[0].(map[string]any)["count"])
	})

	t.Run("published sponsorships take no more invoices", func(t *testing.T) {
		more := map[string]any{}
		for k, v := range invoice {
			more[k] = v
		}
		more["code"] = "IN-2024-0202"
		code, _ := s.Do(t, token, http.MethodPost, "/api/v1/sponsor/invoices?masterId="+sp.ID.String(), more)
		assert.Equal(t, http.StatusForbidden, code)
	})
}

func TestAPI_SystemConfiguration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	s := NewAPITestServer(t)
	s.DB.CreateAccount(identity.RoleAdministrator, "administrator1")
	s.DB.CreateAccount(identity.RoleDeveloper, "developer1")

	admin := s.Login(t, "administrator1")
	dev := s.Login(t, "developer1")

	body := map[string]any{"systemCurrency": "USD", "acceptedCurrencies": "USD,EUR"}

	code, _ := s.Do(t, dev, http.MethodPut, "/api/v1/administrator/system-configuration", body)
	assert.Equal(t, http.StatusForbidden, code)

	code, resp := s.Do(t, admin, http.MethodPut, "/api/v1/administrator/system-configuration", body)
	require.Equal(t, http.StatusOK, code, resp)

	code, resp = s.Do(t, dev, http.MethodGet, "/api/v1/system-configuration", nil)
	require.Equal(t, http.StatusOK, code)
	data := resp["data"].(map[string]any)
	assert.Equal(t, "USD", data["systemCurrency"])
	assert.Equal(t, []any{"USD", "EUR"}, data["currencies"])

	// restore the row the migrations seed for the other tests
	code, _ = s.Do(t, admin, http.MethodPut, "/api/v1/administrator/system-configuration",
		map[string]any{"systemCurrency": "EUR", "acceptedCurrencies": "EUR,USD,GBP"})
	require.Equal(t, http.StatusOK, code)
}
