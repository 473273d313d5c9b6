package dto

import (
	"time"

	"github.com/yigit/studentreg/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"P@ss1234"`
}

// RegisterRequest represents a user registration request. Role defaults to Student.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50,username" example:"alice"`
	Email     string `json:"email" binding:"required,email" example:"alice@school.edu"`
	Password  string `json:"password" binding:"required,min=6" example:"P@ss1234"`
	FirstName string `json:"firstName" binding:"required,notblank,max=100" example:"Alice"`
	LastName  string `json:"lastName" binding:"required,notblank,max=100" example:"Smith"`
	Role      string `json:"role,omitempty" example:"Student"`
}

// ChangePasswordRequest represents a password change by the logged-in user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// UserResponse represents basic user information, never the password hash
type UserResponse struct {
	ID          int64      `json:"id" example:"1"`
	Username    string     `json:"username" example:"alice"`
	Email       string     `json:"email" example:"alice@school.edu"`
	FirstName   string     `json:"firstName" example:"Alice"`
	LastName    string     `json:"lastName" example:"Smith"`
	Role        string     `json:"role" example:"Student"`
	IsActive    bool       `json:"isActive" example:"true"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	StudentID   *int64     `json:"studentId,omitempty" example:"7"`
	ProfessorID *int64     `json:"professorId,omitempty"`
}

// NewUserResponse projects a user model onto its public fields
func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
		StudentID:   u.StudentID,
		ProfessorID: u.ProfessorID,
	}
}

// AuthResult is the outcome of a login attempt
type AuthResult struct {
	Authenticated bool          `json:"authenticated" example:"true"`
	User          *UserResponse `json:"user,omitempty"`
	Message       string        `json:"message" example:"login successful"`
	Token         string        `json:"token,omitempty"`
	TokenType     string        `json:"tokenType,omitempty" example:"Bearer"`
	ExpiresAt     *time.Time    `json:"expiresAt,omitempty"`
}

// RegisterResult is the outcome of a registration attempt
type RegisterResult struct {
	Success bool          `json:"success" example:"true"`
	User    *UserResponse `json:"user,omitempty"`
	Message string        `json:"message" example:"registration successful"`
}

// TokenClaimsResponse echoes the claims of a verified token
type TokenClaimsResponse struct {
	Valid     bool      `json:"valid" example:"true"`
	UserID    int64     `json:"userId" example:"1"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email" example:"alice@school.edu"`
	Role      string    `json:"role" example:"Student"`
	StudentID *int64    `json:"studentId,omitempty" example:"7"`
	ExpiresAt time.Time `json:"expiresAt"`
}
