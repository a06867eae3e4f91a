package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-control/internal/dto"
	"github.com/noah-isme/student-control/pkg/response"
)

type reportService interface {
	StudentRoster(ctx context.Context, format dto.ReportFormat) (*dto.ReportFile, error)
}

// ReportHandler exposes roster exports.
type ReportHandler struct {
	reports reportService
}

// NewReportHandler constructs handler.
func NewReportHandler(reports reportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Students godoc
// @Summary Export student roster
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Router /reports/students [get]
func (h *ReportHandler) Students(c *gin.Context) {
	file, err := h.reports.StudentRoster(c.Request.Context(), dto.ReportFormat(c.Query("format")))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
