package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-control/internal/models"
	"github.com/noah-isme/student-control/internal/service"
	"github.com/noah-isme/student-control/pkg/config"
	"github.com/noah-isme/student-control/pkg/storage"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDRfake-image-body")

// memoryStore backs every repository interface with in-memory maps.
type memoryStore struct {
	mu       sync.Mutex
	students map[int64]models.Student
	courses  []models.Course
	classes  []models.Class
	down     bool
	clock    time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		students: make(map[int64]models.Student),
		courses:  []models.Course{{ID: 1, Name: "Engineering"}, {ID: 2, Name: "Law"}},
		clock:    time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

type memoryStudents struct{ *memoryStore }
type memoryCourses struct{ *memoryStore }
type memoryClasses struct{ *memoryStore }
type memorySystem struct{ *memoryStore }

func (m memoryStudents) List(ctx context.Context) ([]models.StudentDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.StudentDetail, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, models.StudentDetail{Student: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m memoryStudents) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.students[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &s, nil
}

func (m memoryStudents) Create(ctx context.Context, student *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	student.ID = int64(len(m.students) + 1)
	m.clock = m.clock.Add(time.Minute)
	student.CreatedAt = m.clock
	m.students[student.ID] = *student
	return nil
}

func (m memoryStudents) Update(ctx context.Context, student *models.Student, replacePhoto bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.students[student.ID]
	if !ok {
		return sql.ErrNoRows
	}
	next := *student
	next.CreatedAt = existing.CreatedAt
	if !replacePhoto {
		next.PhotoPath = existing.PhotoPath
	}
	m.students[student.ID] = next
	return nil
}

func (m memoryCourses) List(ctx context.Context) ([]models.Course, error) {
	return m.courses, nil
}

func (m memoryCourses) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	for _, c := range m.courses {
		if c.ID == id {
			course := c
			return &course, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m memoryClasses) List(ctx context.Context) ([]models.ClassDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.ClassDetail, 0, len(m.classes))
	for _, c := range m.classes {
		detail := models.ClassDetail{Class: c}
		for _, course := range m.courses {
			if c.CourseID != nil && course.ID == *c.CourseID {
				name := course.Name
				detail.CourseName = &name
			}
		}
		out = append(out, detail)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Semester > out[j].Semester
	})
	return out, nil
}

func (m memoryClasses) Create(ctx context.Context, class *models.Class) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	class.ID = int64(len(m.classes) + 1)
	m.classes = append(m.classes, *class)
	return nil
}

func (m memorySystem) Ping(ctx context.Context) error {
	if m.down {
		return sql.ErrConnDone
	}
	return nil
}

func (m memorySystem) ListTables(ctx context.Context) ([]models.TableInfo, error) {
	return []models.TableInfo{{TableName: "classes"}, {TableName: "courses"}, {TableName: "students"}}, nil
}

type testServer struct {
	router  *gin.Engine
	store   *memoryStore
	uploads *storage.LocalStorage
}

func newTestServer(t *testing.T, reports bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newMemoryStore()
	uploads, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	uploadCfg := config.UploadsConfig{MaxFileSizeBytes: 1 << 20, AllowedMIMEs: []string{"image/png", "image/jpeg"}}
	metrics := service.NewMetricsService()
	students := service.NewStudentService(memoryStudents{store}, uploads, uploadCfg, metrics, nil, nil)
	classes := service.NewClassService(memoryClasses{store}, memoryCourses{store}, nil, nil)

	h := Handlers{
		Students: NewStudentHandler(students),
		Courses:  NewCourseHandler(service.NewCourseService(memoryCourses{store})),
		Classes:  NewClassHandler(classes),
		System:   NewSystemHandler(service.NewHealthService(memorySystem{store}, time.Second, nil)),
		Metrics:  NewMetricsHandler(metrics.Handler()),
		Uploads:  NewUploadHandler(uploads),
	}
	if reports {
		h.Reports = NewReportHandler(service.NewReportService(students))
	}

	router := gin.New()
	RegisterRoutes(router, h, RouteOptions{APIPrefix: "/api"})
	return &testServer{router: router, store: store, uploads: uploads}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func multipartRequest(t *testing.T, method, path string, fields map[string]string, photoName string, photo []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if photo != nil {
		part, err := w.CreateFormFile("photo", photoName)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(photo))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func jsonRequest(method, path string, payload interface{}) *http.Request {
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}
