package dto

// CreateProfessorRequest represents the data needed to create a professor
type CreateProfessorRequest struct {
	FirstName  string `json:"firstName" binding:"required,notblank,max=100" example:"Ada"`
	LastName   string `json:"lastName" binding:"required,notblank,max=100" example:"Lovelace"`
	Email      string `json:"email" binding:"required,email" example:"ada@school.edu"`
	Department string `json:"department" binding:"max=100" example:"Computer Science"`
}

// ProfessorCourse is a course in a professor's teaching list
type ProfessorCourse struct {
	ID      int64  `json:"id" example:"3"`
	Name    string `json:"name" example:"Algorithms"`
	Credits int    `json:"credits" example:"3"`
}

// ProfessorResponse represents a professor with the courses they teach
type ProfessorResponse struct {
	ID         int64             `json:"id" example:"1"`
	FirstName  string            `json:"firstName" example:"Ada"`
	LastName   string            `json:"lastName" example:"Lovelace"`
	Email      string            `json:"email" example:"ada@school.edu"`
	Department string            `json:"department" example:"Computer Science"`
	Courses    []ProfessorCourse `json:"courses"`
}
