package dto

import (
	"time"
)

// CreateStudentRequest represents the data needed to create a student record
type CreateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required,notblank,max=100" example:"Alice"`
	LastName  string `json:"lastName" binding:"required,notblank,max=100" example:"Smith"`
	Email     string `json:"email" binding:"required,email" example:"alice@school.edu"`
}

// UpdateStudentRequest updates a student and, when one is linked, its user account.
// Username and NewPassword are optional.
type UpdateStudentRequest struct {
	FirstName   string  `json:"firstName" binding:"required,notblank,max=100" example:"Alice"`
	LastName    string  `json:"lastName" binding:"required,notblank,max=100" example:"Smith"`
	Email       string  `json:"email" binding:"required,email" example:"alice@school.edu"`
	Username    *string `json:"username,omitempty" binding:"omitempty,min=3,max=50,username" example:"alice"`
	NewPassword *string `json:"newPassword,omitempty" binding:"omitempty,min=6"`
}

// StudentCourseResponse is a course as seen from a student's enrollment list
type StudentCourseResponse struct {
	ID            int64     `json:"id" example:"3"`
	Name          string    `json:"name" example:"Algorithms"`
	Credits       int       `json:"credits" example:"3"`
	ProfessorID   int64     `json:"professorId" example:"1"`
	ProfessorName string    `json:"professorName" example:"Ada Lovelace"`
	EnrolledAt    time.Time `json:"enrolledAt"`
}

// StudentResponse represents a student with enrolled courses and linked account
type StudentResponse struct {
	ID               int64                   `json:"id" example:"7"`
	FirstName        string                  `json:"firstName" example:"Alice"`
	LastName         string                  `json:"lastName" example:"Smith"`
	Email            string                  `json:"email" example:"alice@school.edu"`
	StudentCode      string                  `json:"studentCode" example:"STU20254821"`
	RegistrationDate time.Time               `json:"registrationDate"`
	TotalCredits     int                     `json:"totalCredits" example:"9"`
	UserID           *int64                  `json:"userId,omitempty" example:"12"`
	Username         string                  `json:"username,omitempty" example:"alice"`
	Courses          []StudentCourseResponse `json:"courses"`
}

// StudentSummary is the short form of a student used in nested lists
type StudentSummary struct {
	ID          int64  `json:"id" example:"7"`
	FirstName   string `json:"firstName" example:"Alice"`
	LastName    string `json:"lastName" example:"Smith"`
	Email       string `json:"email" example:"alice@school.edu"`
	StudentCode string `json:"studentCode" example:"STU20254821"`
}

// Classmate is another student sharing a course
type Classmate struct {
	ID        int64  `json:"id" example:"8"`
	FirstName string `json:"firstName" example:"Bob"`
	LastName  string `json:"lastName" example:"Jones"`
}

// ClassmatesResponse lists the other students of one course
type ClassmatesResponse struct {
	CourseID      int64       `json:"courseId" example:"3"`
	CourseName    string      `json:"courseName" example:"Algorithms"`
	ProfessorName string      `json:"professorName" example:"Ada Lovelace"`
	Classmates    []Classmate `json:"classmates"`
}
