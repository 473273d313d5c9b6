package services

// Services defined in this package:
// - EnrollmentService: replaces a student's course set under the enrollment rules
// - AuthService: login, registration, password change and profile lookup
// - StudentCodeGenerator: unique STU<year><nnnn> codes
// - StudentService, CourseService, ProfessorService: catalog CRUD and queries
