package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acme/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveSwagger(cfg config.SwaggerConfig, jwt gin.HandlerFunc, remoteAddr, authHeader string) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/swagger/*any", SwaggerProtection(cfg, jwt), okHandler)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSwaggerProtection_Disabled(t *testing.T) {
	w := serveSwagger(config.SwaggerConfig{Enabled: false}, nil, "127.0.0.1:1", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)
}

func TestSwaggerProtection_Open(t *testing.T) {
	w := serveSwagger(config.SwaggerConfig{Enabled: true}, nil, "203.0.113.9:1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSwaggerProtection_AllowList(t *testing.T) {
	cfg := config.SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.0/8", "192.168.1.5", "not-an-ip"}}

	assert.Equal(t, http.StatusOK, serveSwagger(cfg, nil, "10.1.2.3:1", "").Code)
	assert.Equal(t, http.StatusOK, serveSwagger(cfg, nil, "192.168.1.5:1", "").Code)
	assert.Equal(t, http.StatusForbidden, serveSwagger(cfg, nil, "192.168.1.6:1", "").Code)
}

func TestSwaggerProtection_RequireAuth(t *testing.T) {
	jwtService := newTestJWTService()
	jwt := JWTAuthMiddlewareWithConfig(JWTMiddlewareConfig{JWTService: jwtService})
	cfg := config.SwaggerConfig{Enabled: true, RequireAuth: true}

	assert.Equal(t, http.StatusUnauthorized, serveSwagger(cfg, jwt, "127.0.0.1:1", "").Code)

	pair, _ := newTestTokenPair(t, jwtService, nil)
	assert.Equal(t, http.StatusOK, serveSwagger(cfg, jwt, "127.0.0.1:1", BearerPrefix+pair.AccessToken).Code)
}

func TestIsIPAllowed(t *testing.T) {
	ips, nets := parseAllowList([]string{"::1", "172.16.0.0/12"})

	assert.True(t, isIPAllowed(net.ParseIP("::1"), ips, nets))
	assert.True(t, isIPAllowed(net.ParseIP("172.20.0.1"), ips, nets))
	assert.False(t, isIPAllowed(net.ParseIP("8.8.8.8"), ips, nets))
	assert.False(t, isIPAllowed(nil, ips, nets))
}
