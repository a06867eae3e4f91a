package dto

import "github.com/noah-isme/student-control/internal/models"

// StudentFields are the scalar student attributes accepted on create and update.
// The photo travels as a separate multipart part named "photo".
type StudentFields struct {
	Name      string `form:"name" json:"name" validate:"required,max=160"`
	BirthDate string `form:"birth_date" json:"birth_date" validate:"required,datetime=2006-01-02"`
	Address   string `form:"address" json:"address"`
	Phone     string `form:"phone" json:"phone" validate:"max=32"`
	Email     string `form:"email" json:"email" validate:"omitempty,email,max=160"`
	CPF       string `form:"cpf" json:"cpf" validate:"max=14"`
	RG        string `form:"rg" json:"rg" validate:"max=20"`
	// Status is optional; empty means "active" on create and "unchanged" on update.
	Status string `form:"status" json:"status" validate:"omitempty,oneof=active suspended graduated"`
}

// CreateStudentResponse is returned after registering a student.
type CreateStudentResponse struct {
	ID      int64          `json:"id"`
	Message string         `json:"message"`
	Student models.Student `json:"student"`
}

// Messages returned by student mutations.
const (
	StudentCreatedMessage = "student registered successfully"
	StudentUpdatedMessage = "student updated successfully"
)
