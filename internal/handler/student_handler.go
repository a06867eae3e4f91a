package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-control/internal/dto"
	"github.com/noah-isme/student-control/internal/models"
	"github.com/noah-isme/student-control/internal/service"
	appErrors "github.com/noah-isme/student-control/pkg/errors"
	"github.com/noah-isme/student-control/pkg/response"
)

type studentService interface {
	List(ctx context.Context) ([]models.StudentDetail, error)
	Get(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, in service.CreateStudentInput) (*dto.CreateStudentResponse, error)
	Update(ctx context.Context, id int64, in service.UpdateStudentInput) error
}

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students studentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Success 200 {array} models.StudentDetail
// @Failure 500 {object} response.ErrorBody
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, students)
}

// Get godoc
// @Summary Get student detail
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} response.ErrorBody
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		return
	}
	student, err := h.students.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Create godoc
// @Summary Register student
// @Tags Students
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param birth_date formData string true "Birth date (YYYY-MM-DD)"
// @Param address formData string false "Address"
// @Param phone formData string false "Phone"
// @Param email formData string false "Email"
// @Param cpf formData string false "CPF"
// @Param rg formData string false "RG"
// @Param status formData string false "active, suspended or graduated"
// @Param photo formData file false "Photo"
// @Success 201 {object} dto.CreateStudentResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 413 {object} response.ErrorBody
// @Failure 415 {object} response.ErrorBody
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var fields dto.StudentFields
	if err := c.ShouldBind(&fields); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid student payload"))
		return
	}
	photo, closePhoto, err := photoFromRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closePhoto()

	created, err := h.students.Create(c.Request.Context(), service.CreateStudentInput{Fields: fields, Photo: photo})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Update godoc
// @Summary Update student
// @Description Replaces every scalar field. The stored photo changes only when a new one is sent.
// @Tags Students
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Student ID"
// @Param name formData string true "Name"
// @Param birth_date formData string true "Birth date (YYYY-MM-DD)"
// @Param address formData string false "Address"
// @Param phone formData string false "Phone"
// @Param email formData string false "Email"
// @Param cpf formData string false "CPF"
// @Param rg formData string false "RG"
// @Param status formData string false "active, suspended or graduated"
// @Param photo formData file false "Photo"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.ErrorBody
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		return
	}
	var fields dto.StudentFields
	if err := c.ShouldBind(&fields); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid student payload"))
		return
	}
	photo, closePhoto, err := photoFromRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closePhoto()

	if err := h.students.Update(c.Request.Context(), id, service.UpdateStudentInput{Fields: fields, Photo: photo}); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, dto.StudentUpdatedMessage)
}

// studentID parses the :id segment. Ids that cannot exist are reported as not found.
func studentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "student not found"))
		return 0, false
	}
	return id, true
}

// photoFromRequest returns the optional "photo" part. The returned close func is always safe to call.
func photoFromRequest(c *gin.Context) (*service.PhotoUpload, func(), error) {
	noop := func() {}
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid photo upload")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return nil, noop, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open photo")
	}
	upload := &service.PhotoUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Content:  src,
	}
	return upload, func() { _ = src.Close() }, nil
}
