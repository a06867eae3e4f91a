package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/noah-isme/student-control/internal/dto"
	"github.com/noah-isme/student-control/internal/models"
	"github.com/noah-isme/student-control/pkg/response"
)

// GenericErrorMessage is shown when the data service gives no usable error text.
const GenericErrorMessage = "the data service could not complete the request"

// APIError is a non-2xx answer from the data service.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("data service returned %d: %s", e.Status, e.Message)
}

// ErrorMessage extracts the text to show the user for err.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return GenericErrorMessage
}

// IsNotFound reports whether the data service answered 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// PhotoFile is a photo forwarded from a browser form to the data service.
type PhotoFile struct {
	Filename string
	Content  io.Reader
}

// Client talks to the data service over HTTP.
type Client struct {
	baseURL   string
	apiPrefix string
	http      *http.Client
}

// NewClient builds a client for the service rooted at baseURL.
func NewClient(baseURL, apiPrefix string, timeout time.Duration) *Client {
	if apiPrefix == "" {
		apiPrefix = "/api"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:   baseURL,
		apiPrefix: apiPrefix,
		http:      &http.Client{Timeout: timeout},
	}
}

// BaseURL is the root the client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PhotoURL is where the data service serves a stored photo.
func (c *Client) PhotoURL(photoPath string) string {
	return c.baseURL + "/uploads/" + url.PathEscape(photoPath)
}

// ReportURL is the download location of the roster export.
func (c *Client) ReportURL(format dto.ReportFormat) string {
	return c.endpoint("/reports/students") + "?format=" + url.QueryEscape(string(format))
}

// ListStudents fetches every student ordered by name.
func (c *Client) ListStudents(ctx context.Context) ([]models.StudentDetail, error) {
	var students []models.StudentDetail
	err := c.getJSON(ctx, "/students", &students)
	return students, err
}

// GetStudent fetches one student.
func (c *Client) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	if err := c.getJSON(ctx, "/students/"+strconv.FormatInt(id, 10), &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// CreateStudent submits a new student with an optional photo.
func (c *Client) CreateStudent(ctx context.Context, fields dto.StudentFields, photo *PhotoFile) (*dto.CreateStudentResponse, error) {
	var created dto.CreateStudentResponse
	if err := c.sendStudent(ctx, http.MethodPost, "/students", fields, photo, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateStudent replaces a student's fields; a nil photo keeps the stored one.
func (c *Client) UpdateStudent(ctx context.Context, id int64, fields dto.StudentFields, photo *PhotoFile) error {
	var ack response.MessageBody
	return c.sendStudent(ctx, http.MethodPut, "/students/"+strconv.FormatInt(id, 10), fields, photo, &ack)
}

// ListCourses fetches the course catalog.
func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := c.getJSON(ctx, "/courses", &courses)
	return courses, err
}

// ListClasses fetches classes newest first.
func (c *Client) ListClasses(ctx context.Context) ([]models.ClassDetail, error) {
	var classes []models.ClassDetail
	err := c.getJSON(ctx, "/classes", &classes)
	return classes, err
}

// CreateClass registers a class.
func (c *Client) CreateClass(ctx context.Context, req dto.CreateClassRequest) (*dto.CreateClassResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	var created dto.CreateClassResponse
	if err := c.do(ctx, http.MethodPost, "/classes", "application/json", bytes.NewReader(payload), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Health reports store reachability. A disconnected store is returned as a
// response, not an error.
func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/health"), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var health dto.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &health, nil
}

func (c *Client) sendStudent(ctx context.Context, method, path string, fields dto.StudentFields, photo *PhotoFile, out interface{}) error {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	values := []struct{ key, value string }{
		{"name", fields.Name},
		{"birth_date", fields.BirthDate},
		{"address", fields.Address},
		{"phone", fields.Phone},
		{"email", fields.Email},
		{"cpf", fields.CPF},
		{"rg", fields.RG},
		{"status", fields.Status},
	}
	for _, v := range values {
		if err := w.WriteField(v.key, v.value); err != nil {
			return err
		}
	}
	if photo != nil {
		part, err := w.CreateFormFile("photo", photo.Filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, photo.Content); err != nil {
			return fmt.Errorf("copy photo: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.do(ctx, method, path, w.FormDataContentType(), body, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + c.apiPrefix + path
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var body response.ErrorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Message = body.Error
		apiErr.Code = body.Code
	}
	return apiErr
}
