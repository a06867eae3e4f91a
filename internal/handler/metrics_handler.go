package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/student-control/pkg/errors"
	"github.com/noah-isme/student-control/pkg/response"
)

var errMetricsDisabled = appErrors.New("METRICS_DISABLED", http.StatusServiceUnavailable, "metrics collection is not enabled")

// MetricsHandler answers Prometheus scrapes of request, query and photo upload metrics.
type MetricsHandler struct {
	exposition http.Handler
}

// NewMetricsHandler wraps the exposition handler of a metrics registry.
func NewMetricsHandler(exposition http.Handler) *MetricsHandler {
	return &MetricsHandler{exposition: exposition}
}

// Scrape writes the current metric families in the Prometheus text format.
func (h *MetricsHandler) Scrape(c *gin.Context) {
	if h.exposition == nil {
		response.Error(c, errMetricsDisabled)
		return
	}
	h.exposition.ServeHTTP(c.Writer, c.Request)
}
