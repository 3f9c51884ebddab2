package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/acme/backend/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func systemRouter(h *SystemHandler) *gin.Engine {
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/api/v1/system/info", h.GetSystemInfo)
	return router
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("all checks pass", func(t *testing.T) {
		h := NewSystemHandler("Acme Backend API", "1.0.0", map[string]Pinger{
			"database": PingFunc(func(context.Context) error { return nil }),
			"redis":    PingFunc(func(context.Context) error { return nil }),
		})

		w := testutil.PerformRequest(t, systemRouter(h), http.MethodGet, "/health", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := testutil.AssertSuccessResponse(t, w)["data"].(map[string]any)
		assert.Equal(t, "healthy", data["status"])
		assert.Equal(t, map[string]any{"database": "ok", "redis": "ok"}, data["checks"])
	})

	t.Run("one failing check turns the whole response unhealthy", func(t *testing.T) {
		h := NewSystemHandler("Acme Backend API", "1.0.0", map[string]Pinger{
			"database": PingFunc(func(context.Context) error { return nil }),
			"redis":    PingFunc(func(context.Context) error { return errors.New("connection refused") }),
		})

		w := testutil.PerformRequest(t, systemRouter(h), http.MethodGet, "/health", nil, nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		resp := testutil.JSONResponse(t, w)
		assert.Equal(t, false, resp["success"])
		data := resp["data"].(map[string]any)
		assert.Equal(t, "unhealthy", data["status"])
		assert.Equal(t, "error", data["checks"].(map[string]any)["redis"])
		assert.Equal(t, "ok", data["checks"].(map[string]any)["database"])
	})

	t.Run("no checks", func(t *testing.T) {
		w := testutil.PerformRequest(t, systemRouter(NewSystemHandler("api", "dev", nil)), http.MethodGet, "/health", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	h := NewSystemHandler("Acme Backend API", "1.2.3", nil)

	w := testutil.PerformRequest(t, systemRouter(h), http.MethodGet, "/api/v1/system/info", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := testutil.AssertSuccessResponse(t, w)["data"].(map[string]any)
	assert.Equal(t, "Acme Backend API", data["name"])
	assert.Equal(t, "1.2.3", data["version"])
	assert.NotEmpty(t, data["go_version"])
}
