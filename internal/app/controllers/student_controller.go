package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/studentreg/internal/app/models/dto"
	"github.com/yigit/studentreg/internal/app/services"
	"github.com/yigit/studentreg/internal/middleware"
	"github.com/yigit/studentreg/internal/pkg/helpers"
)

// StudentAccess decides whether a user may manage a student record
type StudentAccess interface {
	ValidateStudentAccess(ctx context.Context, userID, studentID int64) error
}

// StudentController handles student and enrollment endpoints
type StudentController struct {
	studentService    services.StudentService
	enrollmentService services.EnrollmentService
	access            StudentAccess
	logger            zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService services.StudentService,
	enrollmentService services.EnrollmentService,
	access StudentAccess,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		studentService:    studentService,
		enrollmentService: enrollmentService,
		access:            access,
		logger:            logger,
	}
}

// authorize checks that the caller may manage studentID, writing the error response if not
func (c *StudentController) authorize(ctx *gin.Context, studentID int64) bool {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return false
	}
	if err := c.access.ValidateStudentAccess(ctx.Request.Context(), userID, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return false
	}
	return true
}

// GetAllStudents lists every student
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}

// GetStudentByID retrieves a student with enrolled courses
// @Summary Get student
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
// @Router /students/{id}/edit-info [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// GetStudentsByProfessor lists students taking any course of a professor
// @Summary Students of a professor
// @Tags students
// @Produce json
// @Param professorId path int true "Professor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Router /students/by-professor/{professorId} [get]
func (c *StudentController) GetStudentsByProfessor(ctx *gin.Context) {
	professorID, ok := helpers.ParseIDParam(ctx, "professorId")
	if !ok {
		return
	}

	students, err := c.studentService.GetStudentsByProfessor(ctx.Request.Context(), professorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}

// GetClassmates lists the other students of a course the student takes
// @Summary Classmates in one course
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param courseId path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.Classmate}
// @Failure 400 {object} dto.ErrorResponse "Student is not enrolled in the course"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/classmates/{courseId} [get]
func (c *StudentController) GetClassmates(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := helpers.ParseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	classmates, err := c.studentService.GetClassmates(ctx.Request.Context(), id, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(classmates))
}

// GetAllClassmates groups classmates by course
// @Summary Classmates in every course
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.ClassmatesResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/all-classmates [get]
func (c *StudentController) GetAllClassmates(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	groups, err := c.studentService.GetAllClassmates(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(groups))
}

// CreateStudent creates a student record without a user account
// @Summary Create student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student))
}

// UpdateStudent edits a student and its linked account
// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStudentRequest true "Student"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Email or username already exists"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if !c.authorize(ctx, id) {
		return
	}

	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// DeleteStudent removes a student and its enrollments
// @Summary Delete student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.OKResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.OKResponse{OK: true}))
}

// Enroll replaces the student's course selection
// @Summary Enroll in courses
// @Description Replaces the student's enrollments with at most 3 courses taught by distinct professors. Rejections leave the previous enrollments in place and name the reason in error.code.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollmentRequest true "Course selection"
// @Success 200 {object} dto.APIResponse{data=dto.OKResponse}
// @Failure 400 {object} dto.ErrorResponse "TOO_MANY_COURSES, NO_COURSES_SELECTED or DUPLICATE_PROFESSOR"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "STUDENT_NOT_FOUND or COURSE_NOT_FOUND"
// @Failure 409 {object} dto.ErrorResponse "DUPLICATE_ENROLLMENT"
// @Router /students/enroll [post]
func (c *StudentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if !c.authorize(ctx, req.StudentID) {
		return
	}

	if err := c.enrollmentService.Enroll(ctx.Request.Context(), req.StudentID, req.CourseIDs); err != nil {
		c.logger.Info().Err(err).Int64("studentID", req.StudentID).Msg("Enrollment rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.OKResponse{OK: true}))
}
