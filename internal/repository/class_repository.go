package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/student-control/internal/models"
	appErrors "github.com/noah-isme/student-control/pkg/errors"
)

// ClassRepository manages persistence for classes.
type ClassRepository struct {
	observed
	db *sqlx.DB
}

// NewClassRepository constructs a new class repository.
func NewClassRepository(db *sqlx.DB, observer QueryObserver) *ClassRepository {
	return &ClassRepository{db: db, observed: observed{observer: observer}}
}

// List returns every class with its course name, newest offerings first.
func (r *ClassRepository) List(ctx context.Context) ([]models.ClassDetail, error) {
	defer r.observe("classes.list", time.Now())
	const query = `SELECT c.id, c.name, c.course_id, c.year, c.semester, c.max_students, c.created_at, co.name AS course_name
        FROM classes c
        LEFT JOIN courses co ON co.id = c.course_id
        ORDER BY c.year DESC, c.semester DESC, c.id ASC`
	classes := make([]models.ClassDetail, 0)
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, appErrors.Op("list classes", err)
	}
	return classes, nil
}

// Create inserts a class and fills in its ID and creation time.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	defer r.observe("classes.create", time.Now())
	const query = `INSERT INTO classes (name, course_id, year, semester, max_students)
        VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	row := r.db.QueryRowxContext(ctx, query, class.Name, class.CourseID, class.Year, class.Semester, class.MaxStudents)
	if err := row.Scan(&class.ID, &class.CreatedAt); err != nil {
		return appErrors.Op("create class", err)
	}
	return nil
}
