package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-control/internal/dto"
	"github.com/noah-isme/student-control/internal/models"
	"github.com/noah-isme/student-control/pkg/response"
)

func TestSystemRoutesHealth(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.get("/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	var healthy dto.HealthResponse
	decode(t, rec, &healthy)
	assert.Equal(t, dto.HealthStatusOK, healthy.Status)
	assert.Equal(t, dto.DatabaseConnected, healthy.Database)
	assert.NotNil(t, healthy.Timestamp)

	srv.store.down = true
	rec = srv.get("/api/health")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var unhealthy dto.HealthResponse
	decode(t, rec, &unhealthy)
	assert.Equal(t, dto.HealthStatusError, unhealthy.Status)
	assert.Equal(t, dto.DatabaseDisconnected, unhealthy.Database)
	assert.NotEmpty(t, unhealthy.Error)
}

func TestSystemRoutesTables(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.get("/api/tables")
	require.Equal(t, http.StatusOK, rec.Code)
	var tables []models.TableInfo
	decode(t, rec, &tables)
	assert.Len(t, tables, 3)
	assert.Contains(t, rec.Body.String(), `"table_name":"students"`)
}

func TestMetricsRoute(t *testing.T) {
	srv := newTestServer(t, false)
	srv.get("/api/courses")

	rec := srv.get("/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "goroutines_total")
}

func TestMetricsScrapeWithoutRegistry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/metrics", nil)

	NewMetricsHandler(nil).Scrape(c)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body response.ErrorBody
	decode(t, rec, &body)
	assert.Equal(t, "METRICS_DISABLED", body.Code)
}
