package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/student-control/internal/models"
	appErrors "github.com/noah-isme/student-control/pkg/errors"
)

// CourseRepository reads course records.
type CourseRepository struct {
	observed
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB, observer QueryObserver) *CourseRepository {
	return &CourseRepository{db: db, observed: observed{observer: observer}}
}

// List returns every course ordered by name.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	defer r.observe("courses.list", time.Now())
	courses := make([]models.Course, 0)
	if err := r.db.SelectContext(ctx, &courses, `SELECT id, name FROM courses ORDER BY name ASC`); err != nil {
		return nil, appErrors.Op("list courses", err)
	}
	return courses, nil
}

// FindByID returns a course or sql.ErrNoRows.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	defer r.observe("courses.find", time.Now())
	var course models.Course
	if err := r.db.GetContext(ctx, &course, `SELECT id, name FROM courses WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, appErrors.Op("find course", err)
	}
	return &course, nil
}
