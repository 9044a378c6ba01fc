package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                    uuid.UUID `json:"id" db:"user_id"`
	FullName              string    `json:"full_name" db:"full_name"`
	Role                  string    `json:"role" db:"role"`
	UniversityCredentials *string   `json:"university_credentials,omitempty" db:"university_credentials"`
	Email                 string    `json:"email" db:"email"`
	PasswordHash          string    `json:"-" db:"password_hash"`
	MatricNo              *string   `json:"matric_no,omitempty" db:"matric_no"`
	Department            *string   `json:"department,omitempty" db:"department"`
	Level                 *string   `json:"level,omitempty" db:"level"`
	StaffID               *string   `json:"staff_id,omitempty" db:"staff_id"`
	OfficeID              *string   `json:"office_id,omitempty" db:"office_id"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
}

type RegisterInput struct {
	FullName    string  `json:"full_name" validate:"required,min=2"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Role        string  `json:"role" validate:"required,oneof=student staff"`
	Credentials *string `json:"credentials,omitempty"`
	MatricNo    *string `json:"matric_no,omitempty"`
	Department  *string `json:"department,omitempty"`
	Level       *string `json:"level,omitempty"`
	StaffID     *string `json:"staff_id,omitempty"`
	OfficeID    *string `json:"office_id,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleStaff   UserRole = "staff"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

func (u *User) HasRole(requiredRole string) bool {
	switch requiredRole {
	case "admin":
		return u.Role == "admin"
	case "staff":
		return u.Role == "staff" || u.Role == "admin"
	case "student":
		return u.Role == "student" || u.Role == "staff" || u.Role == "admin"
	default:
		return false
	}
}
