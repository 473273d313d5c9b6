package models

// Course represents a course taught by exactly one professor.
type Course struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Credits     int    `json:"credits" db:"credits"`
	ProfessorID int64  `json:"professorId" db:"professor_id"`
}
