package apperrors

import "errors"

// Category errors. Every domain error below wraps exactly one of these so
// handlers can map it to a status code with errors.Is.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("conflict")
	ErrValidationFailed   = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrExhaustedRetries   = errors.New("retries exhausted")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Error codes carried in API error payloads.
const (
	CodeStudentNotFound      = "STUDENT_NOT_FOUND"
	CodeCourseNotFound       = "COURSE_NOT_FOUND"
	CodeProfessorNotFound    = "PROFESSOR_NOT_FOUND"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeTooManyCourses       = "TOO_MANY_COURSES"
	CodeNoCoursesSelected    = "NO_COURSES_SELECTED"
	CodeDuplicateEnrollment  = "DUPLICATE_ENROLLMENT"
	CodeDuplicateProfessor   = "DUPLICATE_PROFESSOR"
	CodeNotEnrolled          = "NOT_ENROLLED"
	CodeStudentEmailExists   = "STUDENT_EMAIL_EXISTS"
	CodeStudentCodeExists    = "STUDENT_CODE_EXISTS"
	CodeProfessorEmailExists = "PROFESSOR_EMAIL_EXISTS"
	CodeProfessorHasCourses  = "PROFESSOR_HAS_COURSES"
	CodeUserExists           = "USER_EXISTS"
	CodeStudentCodeExhausted = "STUDENT_CODE_EXHAUSTED"
)

// Student errors
var (
	ErrStudentNotFound      = NewCustomError(ErrNotFound, "student not found").WithCode(CodeStudentNotFound)
	ErrStudentEmailExists   = NewCustomError(ErrConflict, "a student with this email already exists").WithCode(CodeStudentEmailExists)
	ErrStudentCodeExists    = NewCustomError(ErrConflict, "student code already in use").WithCode(CodeStudentCodeExists)
	ErrStudentCodeExhausted = NewCustomError(ErrExhaustedRetries, "could not generate a unique student code").WithCode(CodeStudentCodeExhausted)
	ErrNotEnrolled          = NewCustomError(ErrValidationFailed, "student is not enrolled in this course").WithCode(CodeNotEnrolled)
)

// Enrollment errors
var (
	ErrTooManyCourses      = NewCustomError(ErrValidationFailed, "cannot enroll in more than 3 courses").WithCode(CodeTooManyCourses)
	ErrNoCoursesSelected   = NewCustomError(ErrValidationFailed, "at least one course must be selected").WithCode(CodeNoCoursesSelected)
	ErrCourseNotFound      = NewCustomError(ErrNotFound, "course not found").WithCode(CodeCourseNotFound)
	ErrDuplicateEnrollment = NewCustomError(ErrConflict, "a course is listed more than once").WithCode(CodeDuplicateEnrollment)
	ErrDuplicateProfessor  = NewCustomError(ErrValidationFailed, "cannot take two courses with the same professor").WithCode(CodeDuplicateProfessor)
)

// Professor errors
var (
	ErrProfessorNotFound    = NewCustomError(ErrNotFound, "professor not found").WithCode(CodeProfessorNotFound)
	ErrProfessorEmailExists = NewCustomError(ErrConflict, "a professor with this email already exists").WithCode(CodeProfessorEmailExists)
	ErrProfessorHasCourses  = NewCustomError(ErrConflict, "professor has courses and cannot be deleted").WithCode(CodeProfessorHasCourses)
)

// User errors
var (
	ErrUserNotFound = NewCustomError(ErrNotFound, "user not found").WithCode(CodeUserNotFound)
	ErrUserExists   = NewCustomError(ErrConflict, "username or email already exists").WithCode(CodeUserExists)
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a new custom error for rejected input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}


// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// CodeOf returns the code of the first CustomError in err's chain, or "".
func CodeOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// MessageOf returns the message of the first CustomError in err's chain,
// falling back to fallback.
func MessageOf(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
