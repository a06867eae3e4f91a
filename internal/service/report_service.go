package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/noah-isme/student-control/internal/dto"
	"github.com/noah-isme/student-control/internal/models"
	appErrors "github.com/noah-isme/student-control/pkg/errors"
	"github.com/noah-isme/student-control/pkg/export"
)

type studentLister interface {
	List(ctx context.Context) ([]models.StudentDetail, error)
}

type renderer interface {
	Render(data export.Dataset) ([]byte, error)
	ContentType() string
	Extension() string
}

// ReportService renders the student roster export.
type ReportService struct {
	students  studentLister
	renderers map[dto.ReportFormat]renderer
	now       func() time.Time
}

// NewReportService wires the CSV and PDF renderers.
func NewReportService(students studentLister) *ReportService {
	return &ReportService{
		students: students,
		renderers: map[dto.ReportFormat]renderer{
			dto.ReportFormatCSV: export.NewCSVExporter(),
			dto.ReportFormatPDF: export.NewPDFExporter(),
		},
		now: time.Now,
	}
}

// StudentRoster renders every student in the requested format.
func (s *ReportService) StudentRoster(ctx context.Context, format dto.ReportFormat) (*dto.ReportFile, error) {
	format = dto.ReportFormat(strings.ToLower(string(format)))
	if format == "" {
		format = dto.ReportFormatCSV
	}
	r, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported report format %q", format))
	}

	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}

	content, err := r.Render(rosterDataset(students))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}
	return &dto.ReportFile{
		Filename:    fmt.Sprintf("students-%s.%s", s.now().Format("20060102"), r.Extension()),
		ContentType: r.ContentType(),
		Content:     content,
	}, nil
}

func rosterDataset(students []models.StudentDetail) export.Dataset {
	data := export.Dataset{
		Title: "Student roster",
		Columns: []export.Column{
			{Key: "id", Label: "ID", Weight: 0.5},
			{Key: "name", Label: "Name", Weight: 2.5},
			{Key: "birth_date", Label: "Birth date", Weight: 1.2},
			{Key: "email", Label: "Email", Weight: 2.5},
			{Key: "phone", Label: "Phone", Weight: 1.3},
			{Key: "status", Label: "Status", Weight: 1},
			{Key: "active_enrollments", Label: "Enrollments", Weight: 1},
		},
		Rows: make([]map[string]string, 0, len(students)),
	}
	for _, st := range students {
		data.Rows = append(data.Rows, map[string]string{
			"id":                 strconv.FormatInt(st.ID, 10),
			"name":               st.Name,
			"birth_date":         st.BirthDate.String(),
			"email":              st.Email,
			"phone":              st.Phone,
			"status":             string(st.Status),
			"active_enrollments": strconv.Itoa(st.ActiveEnrollments),
		})
	}
	return data
}
