package app

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/metrics"
	"github.com/adanyl0v/go-task-tracker/internal/repository"
	"github.com/adanyl0v/go-task-tracker/internal/services"
)

func TestLogProfiles(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logProfiles[config.EnvDev].level)
	assert.Equal(t, zerolog.InfoLevel, logProfiles[config.EnvProd].level)
	assert.Equal(t, zerolog.TraceLevel, logProfiles[config.EnvLocal].level)

	var out bytes.Buffer
	assert.Same(t, &out, logProfiles[config.EnvProd].writer(&out))
	assert.IsType(t, zerolog.ConsoleWriter{}, logProfiles[config.EnvLocal].writer(&out))
}

func TestNewHTTPServer(t *testing.T) {
	server := newHTTPServer(config.HTTPConfig{
		Host:         "127.0.0.1",
		Port:         "9090",
		ReadTimeout:  time.Second,
		WriteTimeout: 2 * time.Second,
	}, http.NotFoundHandler())

	assert.Equal(t, "127.0.0.1:9090", server.Addr)
	assert.Equal(t, time.Second, server.ReadTimeout)
	assert.Equal(t, 2*time.Second, server.WriteTimeout)
}

func newTestRouter(m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	globalLogger = zerolog.Nop()

	tasks := services.NewTaskService(zerolog.Nop(), repository.NewMemoryRepository(), m)
	return newRouter("/metrics", tasks, m, func() time.Time {
		return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	})
}

func TestNewRouter_ServesTasksAndMetrics(t *testing.T) {
	router := newTestRouter(metrics.New("tasktracker", false))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`{"empId": "E1"}`))
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(),
		`tasktracker_http_requests_total{method="POST",route="/api/v1/tasks",status="201"} 1`)
}

func TestNewRouter_WithoutMetrics(t *testing.T) {
	router := newTestRouter(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
