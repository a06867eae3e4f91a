package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-control/internal/models"
	appErrors "github.com/noah-isme/student-control/pkg/errors"
)

func TestClassRepositoryListJoinsCourse(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db, nil)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "course_id", "year", "semester", "max_students", "created_at", "course_name"}).
		AddRow(3, "ENG-2025-2", 1, 2025, 2, 30, now, "Engineering").
		AddRow(2, "ENG-2025-1", 1, 2025, 1, 30, now, "Engineering").
		AddRow(1, "LAW-2024-2", nil, 2024, 2, 40, now, nil)
	mock.ExpectQuery(`LEFT JOIN courses co ON co\.id = c\.course_id\s+ORDER BY c\.year DESC, c\.semester DESC`).
		WillReturnRows(rows)

	classes, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 3)
	require.NotNil(t, classes[0].CourseName)
	assert.Equal(t, "Engineering", *classes[0].CourseName)
	assert.Equal(t, 2, classes[0].Semester)
	assert.Nil(t, classes[2].CourseID)
	assert.Nil(t, classes[2].CourseName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryListError(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db, nil)

	mock.ExpectQuery("FROM classes").WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background())
	assert.EqualError(t, err, "list classes: boom")

	appErr := appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	assert.Equal(t, "boom", appErr.Detail())
}

func TestClassRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	observer := &recordingObserver{}
	repo := NewClassRepository(db, observer)

	courseID := int64(1)
	mock.ExpectQuery("INSERT INTO classes").
		WithArgs("ENG-2025-1", courseID, 2025, 1, 30).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(5, time.Now()))

	class := &models.Class{Name: "ENG-2025-1", CourseID: &courseID, Year: 2025, Semester: 1, MaxStudents: 30}
	require.NoError(t, repo.Create(context.Background(), class))
	assert.Equal(t, int64(5), class.ID)
	assert.Equal(t, []string{"classes.create"}, observer.labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}
