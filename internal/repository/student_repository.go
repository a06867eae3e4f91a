package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/student-control/internal/models"
	appErrors "github.com/noah-isme/student-control/pkg/errors"
)

const studentColumns = `s.id, s.name, s.birth_date, s.address, s.phone, s.email, s.cpf, s.rg, s.photo_path, s.status, s.created_at`

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	observed
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB, observer QueryObserver) *StudentRepository {
	return &StudentRepository{db: db, observed: observed{observer: observer}}
}

// List returns every student ordered by name with the count of active enrollments.
func (r *StudentRepository) List(ctx context.Context) ([]models.StudentDetail, error) {
	defer r.observe("students.list", time.Now())
	query := `SELECT ` + studentColumns + `,
        (SELECT COUNT(*) FROM enrollments e WHERE e.student_id = s.id AND e.status = $1) AS active_enrollments
        FROM students s ORDER BY s.name ASC, s.id ASC`
	students := make([]models.StudentDetail, 0)
	if err := r.db.SelectContext(ctx, &students, query, models.EnrollmentStatusActive); err != nil {
		return nil, appErrors.Op("list students", err)
	}
	return students, nil
}

// FindByID fetches a student by ID. It returns sql.ErrNoRows when none matches.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	defer r.observe("students.find", time.Now())
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.id = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, appErrors.Op("find student", err)
	}
	return &student, nil
}

// Create inserts a new student record and fills in its ID and creation time.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	defer r.observe("students.create", time.Now())
	const query = `INSERT INTO students (name, birth_date, address, phone, email, cpf, rg, photo_path, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at`
	row := r.db.QueryRowxContext(ctx, query,
		student.Name, student.BirthDate, student.Address, student.Phone, student.Email,
		student.CPF, student.RG, student.PhotoPath, student.Status)
	if err := row.Scan(&student.ID, &student.CreatedAt); err != nil {
		return appErrors.Op("create student", err)
	}
	return nil
}

// Update replaces the scalar fields of a student. The photo reference is only
// written when replacePhoto is set. It returns sql.ErrNoRows when the ID is unknown.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student, replacePhoto bool) error {
	defer r.observe("students.update", time.Now())
	query := `UPDATE students SET name = $1, birth_date = $2, address = $3, phone = $4,
        email = $5, cpf = $6, rg = $7, status = $8`
	args := []interface{}{student.Name, student.BirthDate, student.Address, student.Phone,
		student.Email, student.CPF, student.RG, student.Status}
	if replacePhoto {
		args = append(args, student.PhotoPath)
		query += fmt.Sprintf(", photo_path = $%d", len(args))
	}
	args = append(args, student.ID)
	query += fmt.Sprintf(" WHERE id = $%d", len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return appErrors.Op("update student", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return appErrors.Op("update student", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
