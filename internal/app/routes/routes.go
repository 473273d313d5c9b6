package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/studentreg/internal/app/controllers"
	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	professorController *controllers.ProfessorController,
	healthController *controllers.HealthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", healthController.Health)
	v1.GET("/info", healthController.Info)

	adminOnly := authMiddleware.RoleRequired(string(models.RoleAdmin))

	// --- Auth routes ---
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/register", authController.Register)

		authenticated := authGroup.Group("", authMiddleware.JWTAuth())
		authenticated.GET("/profile", authController.GetProfile)
		authenticated.POST("/change-password", authController.ChangePassword)
		authenticated.GET("/verify", authController.VerifyToken)
	}

	// --- Student routes ---
	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.GET("/:id/edit-info", studentController.GetStudentByID)
		students.GET("/by-professor/:professorId", studentController.GetStudentsByProfessor)
		students.GET("/:id/classmates/:courseId", studentController.GetClassmates)
		students.GET("/:id/all-classmates", studentController.GetAllClassmates)

		// Update and enroll also admit the record owner, checked in the controller
		secured := students.Group("", authMiddleware.JWTAuth())
		secured.POST("/enroll", studentController.Enroll)
		secured.PUT("/:id", studentController.UpdateStudent)
		secured.POST("", adminOnly, studentController.CreateStudent)
		secured.DELETE("/:id", adminOnly, studentController.DeleteStudent)
	}

	// --- Course routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/available/:studentId", courseController.GetAvailableCourses)
		courses.GET("/by-professor/:professorId", courseController.GetCoursesByProfessor)

		admin := courses.Group("", authMiddleware.JWTAuth(), adminOnly)
		admin.POST("", courseController.CreateCourse)
		admin.DELETE("/:id", courseController.DeleteCourse)
	}

	// --- Professor routes ---
	professors := v1.Group("/professors")
	{
		professors.GET("", professorController.GetAllProfessors)
		professors.GET("/:id", professorController.GetProfessorByID)

		admin := professors.Group("", authMiddleware.JWTAuth(), adminOnly)
		admin.POST("", professorController.CreateProfessor)
		admin.DELETE("/:id", professorController.DeleteProfessor)
	}
}
