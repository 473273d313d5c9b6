package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID               int64     `json:"id" db:"id"`
	FirstName        string    `json:"firstName" db:"first_name"`
	LastName         string    `json:"lastName" db:"last_name"`
	Email            string    `json:"email" db:"email"`
	StudentCode      string    `json:"studentCode" db:"student_code"`
	RegistrationDate time.Time `json:"registrationDate" db:"registration_date"`
	TotalCredits     int       `json:"totalCredits" db:"total_credits"`
}

// FullName returns "First Last"
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
