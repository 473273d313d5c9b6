package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/pkg/apperrors"
)

// EnrollmentService replaces a student's course set under the enrollment rules
type EnrollmentService interface {
	// Enroll atomically replaces the enrollments of studentID with courseIDs.
	// Rejections leave existing enrollments untouched.
	Enroll(ctx context.Context, studentID int64, courseIDs []int64) error
}

type enrollmentServiceImpl struct {
	tx          Transactor
	students    StudentStore
	courses     CourseStore
	enrollments EnrollmentStore
	logger      zerolog.Logger
	now         func() time.Time
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	tx Transactor,
	students StudentStore,
	courses CourseStore,
	enrollments EnrollmentStore,
	logger zerolog.Logger,
) EnrollmentService {
	return &enrollmentServiceImpl{
		tx:          tx,
		students:    students,
		courses:     courses,
		enrollments: enrollments,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *enrollmentServiceImpl) Enroll(ctx context.Context, studentID int64, courseIDs []int64) error {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		// Locks the student row so concurrent enrollments for one student serialize
		if _, err := s.students.GetByIDForUpdate(ctx, studentID); err != nil {
			return err
		}

		courses, err := s.validateSelection(ctx, courseIDs)
		if err != nil {
			return err
		}

		if err := s.enrollments.DeleteByStudentID(ctx, studentID); err != nil {
			return err
		}

		now := s.now()
		total := 0
		for _, c := range courses {
			if err := s.enrollments.Create(ctx, &models.Enrollment{
				StudentID:  studentID,
				CourseID:   c.ID,
				EnrolledAt: now,
			}); err != nil {
				return err
			}
			total += c.Credits
		}

		return s.students.UpdateTotalCredits(ctx, studentID, total)
	})
	if err != nil {
		s.logger.Info().Err(err).
			Int64("studentID", studentID).
			Ints64("courseIDs", courseIDs).
			Msg("Enrollment rejected")
		return err
	}

	s.logger.Info().
		Int64("studentID", studentID).
		Ints64("courseIDs", courseIDs).
		Msg("Enrollment replaced")
	return nil
}

// validateSelection applies the course-count, existence, uniqueness and
// distinct-professor rules in that order and returns the courses in request order.
func (s *enrollmentServiceImpl) validateSelection(ctx context.Context, courseIDs []int64) ([]*models.Course, error) {
	if len(courseIDs) > models.MaxCoursesPerStudent {
		return nil, apperrors.ErrTooManyCourses
	}
	if len(courseIDs) == 0 {
		return nil, apperrors.ErrNoCoursesSelected
	}

	unique := make([]int64, 0, len(courseIDs))
	seen := make(map[int64]bool, len(courseIDs))
	duplicated := false
	for _, id := range courseIDs {
		if seen[id] {
			duplicated = true
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	found, err := s.courses.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*models.Course, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	if len(byID) != len(unique) {
		missing := []int64{}
		for _, id := range unique {
			if _, ok := byID[id]; !ok {
				missing = append(missing, id)
			}
		}
		return nil, apperrors.NewCustomError(apperrors.ErrCourseNotFound, "one or more courses do not exist").
			WithCode(apperrors.CodeCourseNotFound).
			WithDetails(map[string]interface{}{"missingCourseIds": missing})
	}

	if duplicated {
		return nil, apperrors.ErrDuplicateEnrollment
	}

	courses := make([]*models.Course, 0, len(unique))
	professors := make(map[int64]int64, len(unique))
	for _, id := range unique {
		c := byID[id]
		if other, taken := professors[c.ProfessorID]; taken {
			return nil, apperrors.NewCustomError(apperrors.ErrDuplicateProfessor, apperrors.ErrDuplicateProfessor.Message).
				WithCode(apperrors.CodeDuplicateProfessor).
				WithDetails(map[string]interface{}{
					"professorId": c.ProfessorID,
					"courseIds":   []int64{other, c.ID},
				})
		}
		professors[c.ProfessorID] = c.ID
		courses = append(courses, c)
	}

	return courses, nil
}
