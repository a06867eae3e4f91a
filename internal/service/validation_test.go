package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-control/internal/dto"
	appErrors "github.com/noah-isme/student-control/pkg/errors"
)

func TestValidationErrorMessages(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	err = v.Struct(dto.CreateClassRequest{CourseID: 1, Year: 1800, Semester: 2, MaxStudents: 150})
	require.Error(t, err)
	appErr := appErrors.FromError(validationError(err, "class"))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Contains(t, appErr.Message, "invalid class payload: ")
	assert.Contains(t, appErr.Message, "year must be 1,900 or greater")
	assert.Contains(t, appErr.Message, "max_students must be 100 or less")
}

func TestValidationErrorUsesJSONNames(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	err = v.Struct(dto.StudentFields{Name: "Ana", BirthDate: "2000-13-40", Status: "retired"})
	require.Error(t, err)
	msg := appErrors.FromError(validationError(err, "student")).Message
	assert.Contains(t, msg, "birth_date must be a date in YYYY-MM-DD format")
	assert.Contains(t, msg, "status must be one of: active, suspended, graduated")
	assert.NotContains(t, msg, "BirthDate")
}

func TestValidatorKeepsDefaultMessagesAcrossServices(t *testing.T) {
	_, _ = newTestClassService()
	_ = NewStudentService(newMockStudentRepo(), newMemoryPhotoStore(), testUploads(), nil, nil, nil)

	first, err := NewValidator()
	require.NoError(t, err)
	second, err := NewValidator()
	require.NoError(t, err)
	assert.Same(t, first, second)

	err = second.Struct(dto.CreateClassRequest{CourseID: 1, Year: 1800, Semester: 1, MaxStudents: 10})
	require.Error(t, err)
	msg := appErrors.FromError(validationError(err, "class")).Message
	assert.Equal(t, "invalid class payload: year must be 1,900 or greater", msg)
	assert.NotContains(t, msg, "failed on the")
}
