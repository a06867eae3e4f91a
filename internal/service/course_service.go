package service

import (
	"context"

	"github.com/noah-isme/student-control/internal/models"
	appErrors "github.com/noah-isme/student-control/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id int64) (*models.Course, error)
}

// CourseService exposes the read-only course catalogue.
type CourseService struct {
	repo courseRepository
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository) *CourseService {
	return &CourseService{repo: repo}
}

// List returns every course ordered by name.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}
