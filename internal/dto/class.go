package dto

import "github.com/noah-isme/student-control/internal/models"

// CreateClassRequest registers a new class. An empty name is replaced by the
// suggested name derived from the course, year and semester.
type CreateClassRequest struct {
	Name        string `form:"name" json:"name" validate:"max=60"`
	CourseID    int64  `form:"course_id" json:"course_id" validate:"required,gt=0"`
	Year        int    `form:"year" json:"year" validate:"required,gte=1900,lte=2100"`
	Semester    int    `form:"semester" json:"semester" validate:"required,oneof=1 2"`
	MaxStudents int    `form:"max_students" json:"max_students" validate:"required,gte=1,lte=100"`
}

// CreateClassResponse is returned after registering a class.
type CreateClassResponse struct {
	ID      int64              `json:"id"`
	Message string             `json:"message"`
	Class   models.ClassDetail `json:"class"`
}

// ClassCreatedMessage acknowledges a registered class.
const ClassCreatedMessage = "class registered successfully"
