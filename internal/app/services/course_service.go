package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/app/models/dto"
	"github.com/yigit/studentreg/internal/pkg/apperrors"
)

// CourseService defines operations on courses
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error)
	GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error)
	GetAvailableCoursesForStudent(ctx context.Context, studentID int64) ([]dto.CourseResponse, error)
	GetCoursesByProfessor(ctx context.Context, professorID int64) ([]dto.CourseResponse, error)
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	catalogReader
	tx Transactor
}

// NewCourseService creates a new CourseService
func NewCourseService(
	tx Transactor,
	students StudentStore,
	courses CourseStore,
	professors ProfessorStore,
	enrollments EnrollmentStore,
	users UserStore,
	cache CatalogCache,
	logger zerolog.Logger,
) CourseService {
	return &courseServiceImpl{
		catalogReader: catalogReader{
			students:    students,
			courses:     courses,
			professors:  professors,
			enrollments: enrollments,
			users:       users,
			cache:       cache,
			logger:      logger,
		},
		tx: tx,
	}
}

func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.allCourses(ctx)
	if err != nil {
		return nil, err
	}
	return s.courseResponses(ctx, courses)
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp, err := s.courseResponses(ctx, []*models.Course{course})
	if err != nil {
		return nil, err
	}
	return &resp[0], nil
}

// GetAvailableCoursesForStudent lists courses whose professor the student does
// not already have. An unknown student gets an empty list.
func (s *courseServiceImpl) GetAvailableCoursesForStudent(ctx context.Context, studentID int64) ([]dto.CourseResponse, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return []dto.CourseResponse{}, nil
		}
		return nil, err
	}

	enrollments, err := s.enrollments.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	enrolledIDs := make([]int64, 0, len(enrollments))
	for _, e := range enrollments {
		enrolledIDs = append(enrolledIDs, e.CourseID)
	}
	enrolled, err := s.courses.GetByIDs(ctx, enrolledIDs)
	if err != nil {
		return nil, err
	}
	taken := make(map[int64]bool, len(enrolled))
	for _, c := range enrolled {
		taken[c.ProfessorID] = true
	}

	all, err := s.allCourses(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]*models.Course, 0, len(all))
	for _, c := range all {
		if !taken[c.ProfessorID] {
			available = append(available, c)
		}
	}
	return s.courseResponses(ctx, available)
}

func (s *courseServiceImpl) GetCoursesByProfessor(ctx context.Context, professorID int64) ([]dto.CourseResponse, error) {
	courses, err := s.courses.GetByProfessorID(ctx, professorID)
	if err != nil {
		return nil, err
	}
	return s.courseResponses(ctx, courses)
}

func (s *courseServiceImpl) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if _, err := s.professors.GetByID(ctx, req.ProfessorID); err != nil {
		return nil, err
	}

	credits := req.Credits
	if credits <= 0 {
		credits = models.DefaultCourseCredits
	}

	course := &models.Course{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Credits:     credits,
		ProfessorID: req.ProfessorID,
	}
	if _, err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.logger.Info().Int64("courseID", course.ID).Int64("professorID", course.ProfessorID).Msg("Course created")
	return &dto.CourseResponse{
		ID:               course.ID,
		Name:             course.Name,
		Description:      course.Description,
		Credits:          course.Credits,
		ProfessorID:      course.ProfessorID,
		EnrolledStudents: []dto.StudentSummary{},
	}, nil
}

// DeleteCourse removes a course and recomputes the credit totals of the
// students who were enrolled, in one transaction.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.courses.GetByID(ctx, id); err != nil {
			return err
		}

		affected, err := s.enrollments.GetStudentIDsByCourseID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.courses.Delete(ctx, id); err != nil {
			return err
		}

		return s.students.RecalculateTotalCredits(ctx, affected)
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx)

	s.logger.Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}
