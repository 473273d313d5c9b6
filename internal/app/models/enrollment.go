package models

import "time"

// Enrollment links a student to a course. (student_id, course_id) is unique.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
}

// CourseWithProfessor is a course joined with its professor
type CourseWithProfessor struct {
	Course    Course
	Professor Professor
}
