package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/infrastructure/auth"
	"github.com/acme/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-key-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	}
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(testJWTConfig())
}

func newTestTokenPair(t *testing.T, jwtService *auth.JWTService, roles map[identity.RoleName]uuid.UUID) (*auth.TokenPair, auth.GenerateTokenInput) {
	t.Helper()
	input := auth.GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "client1",
		Roles:    roles,
	}
	pair, err := jwtService.GenerateTokenPair(input)
	require.NoError(t, err)
	return pair, input
}

type failingBlacklist struct{}

func (failingBlacklist) AddToBlacklist(context.Context, string, time.Duration) error {
	return errors.New("redis down")
}

func (failingBlacklist) IsBlacklisted(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func serveWithAuth(mw gin.HandlerFunc, token string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.Use(mw)
	router.GET("/api/v1/test", handler)
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func okHandler(c *gin.Context) { c.Status(http.StatusOK) }

func TestJWTAuthMiddleware_ValidTokenStoresPrincipal(t *testing.T) {
	jwtService := newTestJWTService()
	clientID := uuid.New()
	pair, input := newTestTokenPair(t, jwtService, map[identity.RoleName]uuid.UUID{identity.RoleClient: clientID})

	var got bool
	rec := serveWithAuth(JWTAuthMiddleware(jwtService), BearerPrefix+pair.AccessToken, func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		require.True(t, ok)
		got = true
		assert.Equal(t, input.UserID, principal.UserID)
		assert.Equal(t, "client1", principal.Username)
		assert.Equal(t, clientID, principal.Roles[identity.RoleClient])
		assert.Empty(t, principal.ActiveRole)
		assert.Equal(t, input.UserID.String(), GetJWTUserID(c))
		assert.NotNil(t, GetJWTClaims(c))
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, got)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	rec := serveWithAuth(JWTAuthMiddleware(newTestJWTService()), "", okHandler)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"TOKEN_INVALID"`)
}

func TestJWTAuthMiddleware_NotBearer(t *testing.T) {
	rec := serveWithAuth(JWTAuthMiddleware(newTestJWTService()), "Basic dXNlcjpwYXNz", okHandler)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenExpiration = -time.Minute
	expired := auth.NewJWTService(cfg)
	pair, _ := newTestTokenPair(t, expired, nil)

	rec := serveWithAuth(JWTAuthMiddleware(newTestJWTService()), BearerPrefix+pair.AccessToken, okHandler)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"TOKEN_EXPIRED"`)
}

func TestJWTAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	jwtService := newTestJWTService()
	pair, _ := newTestTokenPair(t, jwtService, nil)

	rec := serveWithAuth(JWTAuthMiddleware(jwtService), BearerPrefix+pair.RefreshToken, okHandler)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_BlacklistedToken(t *testing.T) {
	jwtService := newTestJWTService()
	pair, _ := newTestTokenPair(t, jwtService, nil)
	claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	blacklist := auth.NewInMemoryTokenBlacklist()
	require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Minute))

	cfg := DefaultJWTConfig(jwtService)
	cfg.TokenBlacklist = blacklist
	rec := serveWithAuth(JWTAuthMiddlewareWithConfig(cfg), BearerPrefix+pair.AccessToken, okHandler)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"TOKEN_REVOKED"`)
}

func TestJWTAuthMiddleware_BlacklistErrorFailsOpen(t *testing.T) {
	jwtService := newTestJWTService()
	pair, _ := newTestTokenPair(t, jwtService, nil)

	cfg := DefaultJWTConfig(jwtService)
	cfg.TokenBlacklist = failingBlacklist{}
	rec := serveWithAuth(JWTAuthMiddlewareWithConfig(cfg), BearerPrefix+pair.AccessToken, okHandler)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMiddleware_SkipPaths(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuthMiddleware(newTestJWTService()))
	router.GET("/health", okHandler)
	router.GET("/swagger/*any", okHandler)

	for _, path := range []string{"/health", "/swagger/index.html"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestJWTAuthMiddleware_OnError(t *testing.T) {
	cfg := DefaultJWTConfig(newTestJWTService())
	var captured error
	cfg.OnError = func(c *gin.Context, err error) {
		captured = err
		c.AbortWithStatus(http.StatusTeapot)
	}

	rec := serveWithAuth(JWTAuthMiddlewareWithConfig(cfg), "", okHandler)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.ErrorIs(t, captured, auth.ErrInvalidToken)
}

func TestGetPrincipal_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetPrincipal(c)
	assert.False(t, ok)
	assert.Nil(t, GetJWTClaims(c))
	assert.Empty(t, GetJWTUserID(c))
}
