package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups the endpoint handlers mounted by RegisterRoutes. A nil Reports,
// Metrics or Uploads handler leaves its routes unregistered.
type Handlers struct {
	Students *StudentHandler
	Courses  *CourseHandler
	Classes  *ClassHandler
	System   *SystemHandler
	Reports  *ReportHandler
	Metrics  *MetricsHandler
	Uploads  *UploadHandler
}

// RouteOptions controls where the API is mounted.
type RouteOptions struct {
	APIPrefix string
}

// RegisterRoutes mounts the data service endpoints on r.
func RegisterRoutes(r *gin.Engine, h Handlers, opts RouteOptions) {
	prefix := opts.APIPrefix
	if prefix == "" {
		prefix = "/api"
	}
	api := r.Group(prefix)

	api.GET("/health", h.System.Health)
	api.GET("/tables", h.System.Tables)

	students := api.Group("/students")
	students.GET("", h.Students.List)
	students.GET("/:id", h.Students.Get)
	students.POST("", h.Students.Create)
	students.PUT("/:id", h.Students.Update)

	api.GET("/courses", h.Courses.List)

	classes := api.Group("/classes")
	classes.GET("", h.Classes.List)
	classes.POST("", h.Classes.Create)

	if h.Reports != nil {
		api.GET("/reports/students", h.Reports.Students)
	}
	if h.Metrics != nil {
		r.GET("/metrics", h.Metrics.Scrape)
	}
	if h.Uploads != nil {
		r.GET("/uploads/:filename", h.Uploads.Photo)
		r.HEAD("/uploads/:filename", h.Uploads.Photo)
	}
}
