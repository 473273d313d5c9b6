package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/app/models/dto"
	"github.com/yigit/studentreg/internal/pkg/apperrors"
	"github.com/yigit/studentreg/internal/pkg/auth"
)

// StudentService defines operations on student records
type StudentService interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error)
	GetAllStudents(ctx context.Context) ([]dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, id int64) error
	GetStudentsByProfessor(ctx context.Context, professorID int64) ([]dto.StudentResponse, error)
	GetClassmates(ctx context.Context, studentID, courseID int64) ([]dto.Classmate, error)
	GetAllClassmates(ctx context.Context, studentID int64) ([]dto.ClassmatesResponse, error)
}

type studentServiceImpl struct {
	catalogReader
	tx     Transactor
	codes  *StudentCodeGenerator
	hasher auth.PasswordHasher
	now    func() time.Time
}

// NewStudentService creates a new StudentService
func NewStudentService(
	tx Transactor,
	students StudentStore,
	courses CourseStore,
	professors ProfessorStore,
	enrollments EnrollmentStore,
	users UserStore,
	codes *StudentCodeGenerator,
	hasher auth.PasswordHasher,
	cache CatalogCache,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		catalogReader: catalogReader{
			students:    students,
			courses:     courses,
			professors:  professors,
			enrollments: enrollments,
			users:       users,
			cache:       cache,
			logger:      logger,
		},
		tx:     tx,
		codes:  codes,
		hasher: hasher,
		now:    time.Now,
	}
}

func (s *studentServiceImpl) one(ctx context.Context, student *models.Student) (*dto.StudentResponse, error) {
	resp, err := s.studentResponses(ctx, []*models.Student{student})
	if err != nil {
		return nil, err
	}
	return &resp[0], nil
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.students.EmailExists(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrStudentEmailExists
	}

	code, err := s.codes.Generate(ctx)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		Email:            email,
		StudentCode:      code,
		RegistrationDate: s.now().UTC(),
	}
	if _, err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Str("studentCode", code).Msg("Student created")
	return s.one(ctx, student)
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.one(ctx, student)
}

func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.studentResponses(ctx, students)
}

// UpdateStudent edits the student and, if a user account is linked, its
// username and password, all in one transaction.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	var updated *models.Student

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		student, err := s.students.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		email := strings.TrimSpace(req.Email)
		taken, err := s.students.EmailExists(ctx, email, id)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrStudentEmailExists
		}

		student.FirstName = strings.TrimSpace(req.FirstName)
		student.LastName = strings.TrimSpace(req.LastName)
		student.Email = email
		if err := s.students.Update(ctx, student); err != nil {
			return err
		}
		updated = student

		if req.Username == nil && req.NewPassword == nil {
			return nil
		}
		return s.updateLinkedUser(ctx, id, req)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", id).Msg("Student updated")
	return s.one(ctx, updated)
}

func (s *studentServiceImpl) updateLinkedUser(ctx context.Context, studentID int64, req dto.UpdateStudentRequest) error {
	user, err := s.users.GetByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil
		}
		return err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username != "" && username != user.Username {
			taken, err := s.users.UsernameTaken(ctx, username, user.ID)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.ErrUserExists
			}
			if err := s.users.UpdateUsername(ctx, user.ID, username); err != nil {
				return err
			}
		}
	}

	if req.NewPassword != nil && strings.TrimSpace(*req.NewPassword) != "" {
		hash, err := s.hasher.Hash(*req.NewPassword)
		if err != nil {
			return err
		}
		if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
			return err
		}
	}
	return nil
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}

func (s *studentServiceImpl) GetStudentsByProfessor(ctx context.Context, professorID int64) ([]dto.StudentResponse, error) {
	students, err := s.students.GetByProfessorID(ctx, professorID)
	if err != nil {
		return nil, err
	}
	return s.studentResponses(ctx, students)
}

// GetClassmates lists the other students of a course the student is enrolled in
func (s *studentServiceImpl) GetClassmates(ctx context.Context, studentID, courseID int64) ([]dto.Classmate, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	enrolled, err := s.enrollments.Exists(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.ErrNotEnrolled
	}

	return s.classmates(ctx, studentID, courseID)
}

func (s *studentServiceImpl) classmates(ctx context.Context, studentID, courseID int64) ([]dto.Classmate, error) {
	ids, err := s.enrollments.GetStudentIDsByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	others := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != studentID {
			others = append(others, id)
		}
	}

	students, err := s.students.GetByIDs(ctx, others)
	if err != nil {
		return nil, err
	}

	out := make([]dto.Classmate, 0, len(students))
	for _, st := range students {
		out = append(out, dto.Classmate{ID: st.ID, FirstName: st.FirstName, LastName: st.LastName})
	}
	return out, nil
}

// GetAllClassmates groups classmates by each course the student is enrolled in
func (s *studentServiceImpl) GetAllClassmates(ctx context.Context, studentID int64) ([]dto.ClassmatesResponse, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollments.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	courseIDs := make([]int64, 0, len(enrollments))
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
	}
	courses, err := s.courses.GetByIDs(ctx, courseIDs)
	if err != nil {
		return nil, err
	}
	professorIDs := make([]int64, 0, len(courses))
	for _, c := range courses {
		professorIDs = append(professorIDs, c.ProfessorID)
	}
	professors, err := s.professorsByID(ctx, professorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ClassmatesResponse, 0, len(courses))
	for _, c := range courses {
		mates, err := s.classmates(ctx, studentID, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.ClassmatesResponse{
			CourseID:      c.ID,
			CourseName:    c.Name,
			ProfessorName: professorName(professors[c.ProfessorID]),
			Classmates:    mates,
		})
	}
	return out, nil
}
