package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64      `json:"id" db:"id" example:"1"`
	Username     string     `json:"username" db:"username" example:"alice"`
	Email        string     `json:"email" db:"email" example:"alice@school.edu"`
	PasswordHash string     `json:"-" db:"password_hash"` // bcrypt hash, never serialized
	FirstName    string     `json:"firstName" db:"first_name" example:"Alice"`
	LastName     string     `json:"lastName" db:"last_name" example:"Smith"`
	Role         RoleType   `json:"role" db:"role" example:"Student"`
	IsActive     bool       `json:"isActive" db:"is_active" example:"true"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	StudentID    *int64     `json:"studentId,omitempty" db:"student_id"`
	ProfessorID  *int64     `json:"professorId,omitempty" db:"professor_id"`
}
