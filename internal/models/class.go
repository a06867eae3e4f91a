package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Semesters a class can be offered in.
const (
	FirstSemester  = 1
	SecondSemester = 2
)

// Class represents a section of a course offered in a given year and semester.
type Class struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	CourseID    *int64    `db:"course_id" json:"course_id"`
	Year        int       `db:"year" json:"year"`
	Semester    int       `db:"semester" json:"semester"`
	MaxStudents int       `db:"max_students" json:"max_students"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ClassDetail extends Class with the joined course name, nil when the course is gone.
type ClassDetail struct {
	Class
	CourseName *string `db:"course_name" json:"course_name"`
}

// SuggestClassName derives a default section name such as "ENG-2025-1" from the
// first three letters of the course name. It returns "" when any part is missing.
func SuggestClassName(courseName string, year, semester int) string {
	courseName = strings.TrimSpace(courseName)
	if courseName == "" || year <= 0 || semester <= 0 {
		return ""
	}
	code := courseName
	if utf8.RuneCountInString(code) > 3 {
		code = string([]rune(code)[:3])
	}
	return fmt.Sprintf("%s-%d-%d", strings.ToUpper(code), year, semester)
}
