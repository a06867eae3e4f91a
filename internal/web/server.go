package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/student-control/internal/dto"
	"github.com/noah-isme/student-control/internal/models"
)

var studentStatuses = []models.StudentStatus{
	models.StudentStatusActive,
	models.StudentStatusSuspended,
	models.StudentStatusGraduated,
}

// view is the data every page template receives.
type view struct {
	Title  string
	Nav    string
	Error  string
	Notice string
	Data   interface{}
}

type studentForm struct {
	ID        int64
	Fields    dto.StudentFields
	PhotoPath *string
	Statuses  []models.StudentStatus
}

type classesPage struct {
	Classes []models.ClassDetail
	Courses []models.Course
	Form    dto.CreateClassRequest
}

type reportsPage struct {
	CSVURL string
	PDFURL string
	Health *dto.HealthResponse
}

// Server renders the presentation views over the data service.
type Server struct {
	client *Client
	logger *zap.Logger
}

// NewServer constructs the presentation server.
func NewServer(client *Client, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{client: client, logger: logger}
}

// Register installs the template renderer and the view routes on r.
func (s *Server) Register(r *gin.Engine) error {
	renderer, err := newPageRenderer(s.client)
	if err != nil {
		return err
	}
	r.HTMLRender = renderer

	r.GET("/", s.dashboard)
	r.GET("/students", s.listStudents)
	r.GET("/students/new", s.newStudent)
	r.POST("/students", s.createStudent)
	r.GET("/students/:id/edit", s.editStudent)
	r.POST("/students/:id", s.updateStudent)
	r.GET("/classes", s.listClasses)
	r.POST("/classes", s.createClass)
	r.GET("/classes/suggest", s.suggestClassName)
	r.GET("/attendance", s.placeholder("Attendance", "attendance"))
	r.GET("/grades", s.placeholder("Grades", "grades"))
	r.GET("/reports", s.reports)
	return nil
}

func (s *Server) dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	v := view{Title: "Dashboard", Nav: "dashboard"}

	students, err := s.client.ListStudents(ctx)
	if err != nil {
		s.fail(c, pageDashboard, v, err)
		return
	}
	classes, err := s.client.ListClasses(ctx)
	if err != nil {
		s.fail(c, pageDashboard, v, err)
		return
	}
	courses, err := s.client.ListCourses(ctx)
	if err != nil {
		s.fail(c, pageDashboard, v, err)
		return
	}
	v.Data = BuildDashboard(students, classes, courses)
	c.HTML(http.StatusOK, pageDashboard, v)
}

func (s *Server) listStudents(c *gin.Context) {
	v := view{Title: "Students", Nav: "students", Notice: c.Query("notice")}
	students, err := s.client.ListStudents(c.Request.Context())
	if err != nil {
		s.fail(c, pageStudents, v, err)
		return
	}
	v.Data = students
	c.HTML(http.StatusOK, pageStudents, v)
}

func (s *Server) newStudent(c *gin.Context) {
	form := studentForm{Statuses: studentStatuses, Fields: dto.StudentFields{Status: string(models.StudentStatusActive)}}
	c.HTML(http.StatusOK, pageStudentForm, view{Title: "New student", Nav: "students", Data: form})
}

func (s *Server) createStudent(c *gin.Context) {
	form := studentForm{Statuses: studentStatuses}
	v := view{Title: "New student", Nav: "students"}
	if err := c.ShouldBind(&form.Fields); err != nil {
		v.Data = form
		s.reject(c, pageStudentForm, v, "invalid student form")
		return
	}
	photo, closePhoto, err := browserPhoto(c)
	if err != nil {
		v.Data = form
		s.reject(c, pageStudentForm, v, "could not read the uploaded photo")
		return
	}
	defer closePhoto()

	created, err := s.client.CreateStudent(c.Request.Context(), form.Fields, photo)
	if err != nil {
		v.Data = form
		s.fail(c, pageStudentForm, v, err)
		return
	}
	redirectWithNotice(c, "/students", created.Message)
}

func (s *Server) editStudent(c *gin.Context) {
	v := view{Title: "Edit student", Nav: "students"}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/students")
		return
	}
	student, err := s.client.GetStudent(c.Request.Context(), id)
	if err != nil {
		if IsNotFound(err) {
			redirectWithNotice(c, "/students", ErrorMessage(err))
			return
		}
		s.fail(c, pageStudents, v, err)
		return
	}
	v.Data = studentForm{
		ID:        student.ID,
		Fields:    fieldsOf(student),
		PhotoPath: student.PhotoPath,
		Statuses:  studentStatuses,
	}
	c.HTML(http.StatusOK, pageStudentForm, v)
}

func (s *Server) updateStudent(c *gin.Context) {
	v := view{Title: "Edit student", Nav: "students"}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/students")
		return
	}
	form := studentForm{ID: id, Statuses: studentStatuses}
	if err := c.ShouldBind(&form.Fields); err != nil {
		v.Data = form
		s.reject(c, pageStudentForm, v, "invalid student form")
		return
	}
	photo, closePhoto, err := browserPhoto(c)
	if err != nil {
		v.Data = form
		s.reject(c, pageStudentForm, v, "could not read the uploaded photo")
		return
	}
	defer closePhoto()

	if err := s.client.UpdateStudent(c.Request.Context(), id, form.Fields, photo); err != nil {
		if current, getErr := s.client.GetStudent(c.Request.Context(), id); getErr == nil {
			form.PhotoPath = current.PhotoPath
		}
		v.Data = form
		s.fail(c, pageStudentForm, v, err)
		return
	}
	redirectWithNotice(c, "/students", dto.StudentUpdatedMessage)
}

func (s *Server) listClasses(c *gin.Context) {
	v := view{Title: "Classes", Nav: "classes", Notice: c.Query("notice")}
	page, err := s.loadClassesPage(c)
	v.Data = page
	if err != nil {
		s.fail(c, pageClasses, v, err)
		return
	}
	c.HTML(http.StatusOK, pageClasses, v)
}

func (s *Server) createClass(c *gin.Context) {
	v := view{Title: "Classes", Nav: "classes"}
	var req dto.CreateClassRequest
	bindErr := c.ShouldBind(&req)

	page, err := s.loadClassesPage(c)
	page.Form = req
	v.Data = page
	if err != nil {
		s.fail(c, pageClasses, v, err)
		return
	}
	if bindErr != nil {
		s.reject(c, pageClasses, v, "invalid class form")
		return
	}

	created, err := s.client.CreateClass(c.Request.Context(), req)
	if err != nil {
		s.fail(c, pageClasses, v, err)
		return
	}
	redirectWithNotice(c, "/classes", created.Message+": "+created.Class.Name)
}

// suggestClassName answers the class form's name preview.
func (s *Server) suggestClassName(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	semester, _ := strconv.Atoi(c.Query("semester"))
	courseName := c.Query("course")
	c.JSON(http.StatusOK, gin.H{"name": models.SuggestClassName(courseName, year, semester)})
}

func (s *Server) placeholder(title, nav string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, pagePlaceholder, view{Title: title, Nav: nav})
	}
}

func (s *Server) reports(c *gin.Context) {
	page := reportsPage{
		CSVURL: s.client.ReportURL(dto.ReportFormatCSV),
		PDFURL: s.client.ReportURL(dto.ReportFormatPDF),
	}
	v := view{Title: "Reports", Nav: "reports"}
	health, err := s.client.Health(c.Request.Context())
	if err != nil {
		s.logger.Warn("data service health check failed", zap.Error(err))
		v.Error = GenericErrorMessage
	}
	page.Health = health
	v.Data = page
	c.HTML(http.StatusOK, pageReports, v)
}

func (s *Server) loadClassesPage(c *gin.Context) (classesPage, error) {
	ctx := c.Request.Context()
	page := classesPage{Form: dto.CreateClassRequest{Semester: 1, MaxStudents: 40}}
	classes, err := s.client.ListClasses(ctx)
	if err != nil {
		return page, err
	}
	courses, err := s.client.ListCourses(ctx)
	if err != nil {
		return page, err
	}
	page.Classes = classes
	page.Courses = courses
	return page, nil
}

// fail renders page with the data service's error text and a matching status.
func (s *Server) fail(c *gin.Context, page string, v view, err error) {
	status := http.StatusBadGateway
	if apiErr, ok := asAPIError(err); ok && apiErr.Status >= 400 && apiErr.Status < 500 {
		status = apiErr.Status
	} else {
		s.logger.Error("data service request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	v.Error = ErrorMessage(err)
	c.HTML(status, page, v)
}

func (s *Server) reject(c *gin.Context, page string, v view, message string) {
	v.Error = message
	c.HTML(http.StatusBadRequest, page, v)
}

func asAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func redirectWithNotice(c *gin.Context, path, notice string) {
	c.Redirect(http.StatusSeeOther, path+"?notice="+url.QueryEscape(notice))
}

func fieldsOf(st *models.Student) dto.StudentFields {
	return dto.StudentFields{
		Name:      st.Name,
		BirthDate: st.BirthDate.String(),
		Address:   st.Address,
		Phone:     st.Phone,
		Email:     st.Email,
		CPF:       st.CPF,
		RG:        st.RG,
		Status:    string(st.Status),
	}
}

// browserPhoto returns the optional photo of a browser form. Browsers send an
// empty part when no file is picked, which counts as no photo.
func browserPhoto(c *gin.Context) (*PhotoFile, func(), error) {
	noop := func() {}
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, err
	}
	if fileHeader.Size == 0 || strings.TrimSpace(fileHeader.Filename) == "" {
		return nil, noop, nil
	}
	src, err := fileHeader.Open()
	if err != nil {
		return nil, noop, err
	}
	return &PhotoFile{Filename: fileHeader.Filename, Content: src}, func() { _ = src.Close() }, nil
}
