package models

import "strings"

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent   RoleType = "Student"
	RoleProfessor RoleType = "Professor"
	RoleAdmin     RoleType = "Admin"
)

// ParseRole normalizes a role name case-insensitively. An empty name means Student.
func ParseRole(s string) (RoleType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "student":
		return RoleStudent, true
	case "professor":
		return RoleProfessor, true
	case "admin":
		return RoleAdmin, true
	default:
		return "", false
	}
}

// MaxCoursesPerStudent is the enrollment limit per student
const MaxCoursesPerStudent = 3

// DefaultCourseCredits applies when a course is created without credits
const DefaultCourseCredits = 3
