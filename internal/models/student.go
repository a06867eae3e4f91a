package models

import "time"

// StudentStatus is the enrollment standing of a student.
type StudentStatus string

// Allowed student statuses.
const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusSuspended StudentStatus = "suspended"
	StudentStatusGraduated StudentStatus = "graduated"
)

// Valid reports whether s is one of the allowed statuses.
func (s StudentStatus) Valid() bool {
	switch s {
	case StudentStatusActive, StudentStatusSuspended, StudentStatusGraduated:
		return true
	}
	return false
}

// Student represents a learner registered in the institution.
type Student struct {
	ID        int64         `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	BirthDate Date          `db:"birth_date" json:"birth_date"`
	Address   string        `db:"address" json:"address"`
	Phone     string        `db:"phone" json:"phone"`
	Email     string        `db:"email" json:"email"`
	CPF       string        `db:"cpf" json:"cpf"`
	RG        string        `db:"rg" json:"rg"`
	PhotoPath *string       `db:"photo_path" json:"photo_path"`
	Status    StudentStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}

// StudentDetail is a student row as listed, with its active enrollment count.
type StudentDetail struct {
	Student
	ActiveEnrollments int `db:"active_enrollments" json:"active_enrollments"`
}
