package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-control/internal/dto"
	"github.com/noah-isme/student-control/internal/models"
	"github.com/noah-isme/student-control/pkg/response"
)

type healthService interface {
	Check(ctx context.Context) dto.HealthResponse
	Tables(ctx context.Context) ([]models.TableInfo, error)
}

// SystemHandler exposes store diagnostics.
type SystemHandler struct {
	health healthService
}

// NewSystemHandler constructs SystemHandler.
func NewSystemHandler(health healthService) *SystemHandler {
	return &SystemHandler{health: health}
}

// Health godoc
// @Summary Store health
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 500 {object} dto.HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	result := h.health.Check(c.Request.Context())
	status := http.StatusOK
	if !result.Healthy() {
		status = http.StatusInternalServerError
	}
	response.JSON(c, status, result)
}

// Tables godoc
// @Summary List store tables
// @Tags System
// @Produce json
// @Success 200 {array} models.TableInfo
// @Router /tables [get]
func (h *SystemHandler) Tables(c *gin.Context) {
	tables, err := h.health.Tables(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tables)
}
