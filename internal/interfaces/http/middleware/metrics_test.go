package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/acme/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetrics_RecordsByRoute(t *testing.T) {
	m := NewHTTPMetrics()

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/v1/client/contracts/:id", func(c *gin.Context) {
		c.Set(logger.GinActiveRoleKey, "client")
		c.String(http.StatusOK, "contract")
	})
	router.GET("/metrics", m.Handler())

	for _, id := range []string{"a", "b", "c"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/client/contracts/"+id, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, float64(3), testutil.ToFloat64(
		m.requests.WithLabelValues(http.MethodGet, "/api/v1/client/contracts/:id", "200", "client")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.requests.WithLabelValues(http.MethodGet, "unmatched", "404", "")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.inFlight))
}

func TestHTTPMetrics_Handler(t *testing.T) {
	m := NewHTTPMetrics()

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/ping", okHandler)
	router.GET("/metrics", m.Handler())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "acme_http_requests_total")
	assert.Contains(t, body, "acme_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}

func TestHTTPMetrics_RegisterDB(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := NewHTTPMetrics()
	require.NoError(t, m.RegisterDB(db, "acme"))
	assert.Error(t, m.RegisterDB(db, "acme"), "duplicate collector")

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() == "go_sql_open_connections" {
			found = true
		}
	}
	assert.True(t, found)
}
