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
	"github.com/noah-isme/student-control/pkg/config"
	appErrors "github.com/noah-isme/student-control/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.StudentDetail, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student, replacePhoto bool) error
}

// CreateStudentInput carries the fields of a new student and an optional photo.
type CreateStudentInput struct {
	Fields dto.StudentFields
	Photo  *PhotoUpload
}

// UpdateStudentInput carries replacement fields and an optional new photo.
// A nil Photo leaves the stored photo reference untouched.
type UpdateStudentInput struct {
	Fields dto.StudentFields
	Photo  *PhotoUpload
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	photos    *photoPolicy
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, photos photoStore, uploads config.UploadsConfig, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = defaultValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{
		repo:      repo,
		photos:    newPhotoPolicy(photos, metrics, uploads),
		validator: validate,
		logger:    logger,
	}
}

// List returns all students ordered by name.
func (s *StudentService) List(ctx context.Context) ([]models.StudentDetail, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Get returns a single student.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, studentNotFound()
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Create registers a new student, storing the photo first when one is supplied.
func (s *StudentService) Create(ctx context.Context, in CreateStudentInput) (*dto.CreateStudentResponse, error) {
	fields := normalizeFields(in.Fields)
	birthDate, err := s.validateFields(fields)
	if err != nil {
		return nil, err
	}
	status := models.StudentStatus(fields.Status)
	if status == "" {
		status = models.StudentStatusActive
	}

	student := &models.Student{
		Name:      fields.Name,
		BirthDate: birthDate,
		Address:   fields.Address,
		Phone:     fields.Phone,
		Email:     fields.Email,
		CPF:       fields.CPF,
		RG:        fields.RG,
		Status:    status,
	}

	if in.Photo != nil {
		name, err := s.photos.save(in.Photo)
		if err != nil {
			return nil, err
		}
		student.PhotoPath = &name
	}

	if err := s.repo.Create(ctx, student); err != nil {
		s.discardPhoto(student.PhotoPath)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}

	s.logger.Info("student created", zap.Int64("student_id", student.ID), zap.Bool("photo", student.PhotoPath != nil))
	return &dto.CreateStudentResponse{
		ID:      student.ID,
		Message: dto.StudentCreatedMessage,
		Student: *student,
	}, nil
}

// Update replaces the scalar fields of a student. The photo reference changes only
// when a new photo is supplied; the previous file is then removed.
func (s *StudentService) Update(ctx context.Context, id int64, in UpdateStudentInput) error {
	fields := normalizeFields(in.Fields)
	birthDate, err := s.validateFields(fields)
	if err != nil {
		return err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	updated := *current
	updated.Name = fields.Name
	updated.BirthDate = birthDate
	updated.Address = fields.Address
	updated.Phone = fields.Phone
	updated.Email = fields.Email
	updated.CPF = fields.CPF
	updated.RG = fields.RG
	if fields.Status != "" {
		updated.Status = models.StudentStatus(fields.Status)
	}

	replacePhoto := in.Photo != nil
	if replacePhoto {
		name, err := s.photos.save(in.Photo)
		if err != nil {
			return err
		}
		updated.PhotoPath = &name
	}

	if err := s.repo.Update(ctx, &updated, replacePhoto); err != nil {
		if replacePhoto {
			s.discardPhoto(updated.PhotoPath)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return studentNotFound()
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}

	if replacePhoto && current.PhotoPath != nil && *current.PhotoPath != *updated.PhotoPath {
		s.discardPhoto(current.PhotoPath)
	}
	s.logger.Info("student updated", zap.Int64("student_id", id), zap.Bool("photo_replaced", replacePhoto))
	return nil
}

func (s *StudentService) validateFields(fields dto.StudentFields) (models.Date, error) {
	if err := s.validator.Struct(fields); err != nil {
		return models.Date{}, validationError(err, "student")
	}
	birthDate, err := models.ParseDate(fields.BirthDate)
	if err != nil {
		return models.Date{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload: birth_date must be a date in YYYY-MM-DD format")
	}
	return birthDate, nil
}

func (s *StudentService) discardPhoto(name *string) {
	if name == nil {
		return
	}
	if err := s.photos.remove(*name); err != nil {
		s.logger.Warn("failed to remove student photo", zap.String("photo_path", *name), zap.Error(err))
	}
}

func normalizeFields(f dto.StudentFields) dto.StudentFields {
	f.Name = strings.TrimSpace(f.Name)
	f.BirthDate = strings.TrimSpace(f.BirthDate)
	f.Address = strings.TrimSpace(f.Address)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.TrimSpace(f.Email)
	f.CPF = strings.TrimSpace(f.CPF)
	f.RG = strings.TrimSpace(f.RG)
	f.Status = strings.ToLower(strings.TrimSpace(f.Status))
	return f
}

func studentNotFound() error {
	return appErrors.Clone(appErrors.ErrNotFound, "student not found")
}
