package dto

// CreateCourseRequest represents the data needed to create a course. Credits default to 3.
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=200" example:"Algorithms"`
	Description string `json:"description" binding:"max=2000" example:"Design and analysis of algorithms"`
	Credits     int    `json:"credits" binding:"omitempty,gt=0,max=30" example:"3"`
	ProfessorID int64  `json:"professorId" binding:"required,gt=0" example:"1"`
}

// CourseResponse represents a course with its professor and enrolled students
type CourseResponse struct {
	ID               int64            `json:"id" example:"3"`
	Name             string           `json:"name" example:"Algorithms"`
	Description      string           `json:"description" example:"Design and analysis of algorithms"`
	Credits          int              `json:"credits" example:"3"`
	ProfessorID      int64            `json:"professorId" example:"1"`
	ProfessorName    string           `json:"professorName" example:"Ada Lovelace"`
	EnrolledStudents []StudentSummary `json:"enrolledStudents"`
}
