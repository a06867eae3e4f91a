package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRoutesStudentRoster(t *testing.T) {
	srv := newTestServer(t, true)
	rec := srv.do(jsonRequest(http.MethodPost, "/api/students", map[string]string{"name": "Ana", "birth_date": "2000-01-01"}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.get("/api/reports/students")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Regexp(t, `attachment; filename="students-\d{8}\.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "Ana,2000-01-01")

	rec = srv.get("/api/reports/students?format=pdf")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))

	rec = srv.get("/api/reports/students?format=doc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportRoutesDisabled(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.get("/api/reports/students")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
