package dto

// EnrollmentRequest replaces a student's full enrollment set
type EnrollmentRequest struct {
	StudentID int64   `json:"studentId" binding:"required,gt=0" example:"7"`
	CourseIDs []int64 `json:"courseIds" binding:"required,dive,gt=0" example:"1,4,7"`
}
