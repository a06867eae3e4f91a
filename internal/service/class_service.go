package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-control/internal/dto"
	"github.com/noah-isme/student-control/internal/models"
	appErrors "github.com/noah-isme/student-control/pkg/errors"
)

type classRepository interface {
	List(ctx context.Context) ([]models.ClassDetail, error)
	Create(ctx context.Context, class *models.Class) error
}

// ClassService manages class sections.
type ClassService struct {
	repo      classRepository
	courses   courseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs the class service.
func NewClassService(repo classRepository, courses courseRepository, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = defaultValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, courses: courses, validator: validate, logger: logger}
}

// List returns classes ordered by year and semester, newest first.
func (s *ClassService) List(ctx context.Context) ([]models.ClassDetail, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	return classes, nil
}

// Create registers a class for an existing course. An empty name is replaced by
// the suggested name for the course, year and semester.
func (s *ClassService) Create(ctx context.Context, req dto.CreateClassRequest) (*dto.CreateClassResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "class")
	}

	course, err := s.courses.FindByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}

	name := req.Name
	if name == "" {
		name = models.SuggestClassName(course.Name, req.Year, req.Semester)
	}
	courseID := course.ID
	class := &models.Class{
		Name:        name,
		CourseID:    &courseID,
		Year:        req.Year,
		Semester:    req.Semester,
		MaxStudents: req.MaxStudents,
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}

	s.logger.Info("class created", zap.Int64("class_id", class.ID), zap.String("name", class.Name))
	courseName := course.Name
	return &dto.CreateClassResponse{
		ID:      class.ID,
		Message: dto.ClassCreatedMessage,
		Class:   models.ClassDetail{Class: *class, CourseName: &courseName},
	}, nil
}
