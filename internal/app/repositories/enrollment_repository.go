package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/pkg/apperrors"
	"github.com/yigit/studentreg/internal/pkg/dberrors"
	"github.com/yigit/studentreg/internal/pkg/logger"
)

var enrollmentColumns = []string{"id", "student_id", "course_id", "enrolled_at"}

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	baseRepository
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{baseRepository: newBaseRepository(pool)}
}

// Create inserts one enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, e *models.Enrollment) error {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id", "enrolled_at").
		Values(e.StudentID, e.CourseID, e.EnrolledAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	if err := r.conn(ctx).QueryRow(ctx, sql, args...).Scan(&e.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateEnrollment
		}
		logger.Error().Err(err).
			Int64("studentID", e.StudentID).
			Int64("courseID", e.CourseID).
			Msg("Error executing create enrollment query")
		return fmt.Errorf("error creating enrollment: %w", err)
	}
	return nil
}

// DeleteByStudentID removes every enrollment of a student
func (r *EnrollmentRepository) DeleteByStudentID(ctx context.Context, studentID int64) error {
	sql, args, err := r.sb.Delete("enrollments").Where(squirrel.Eq{"student_id": studentID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enrollments query: %w", err)
	}

	if _, err := r.conn(ctx).Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error deleting enrollments")
		return fmt.Errorf("error deleting enrollments: %w", err)
	}
	return nil
}

// GetByStudentID lists a student's enrollments
func (r *EnrollmentRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return r.query(ctx, r.sb.Select(enrollmentColumns...).
		From("enrollments").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("id ASC"))
}

// GetByStudentIDs lists the enrollments of several students
func (r *EnrollmentRepository) GetByStudentIDs(ctx context.Context, studentIDs []int64) ([]*models.Enrollment, error) {
	if len(studentIDs) == 0 {
		return []*models.Enrollment{}, nil
	}
	return r.query(ctx, r.sb.Select(enrollmentColumns...).
		From("enrollments").
		Where(squirrel.Eq{"student_id": studentIDs}).
		OrderBy("student_id ASC", "id ASC"))
}

// GetByCourseIDs lists the enrollments of several courses
func (r *EnrollmentRepository) GetByCourseIDs(ctx context.Context, courseIDs []int64) ([]*models.Enrollment, error) {
	if len(courseIDs) == 0 {
		return []*models.Enrollment{}, nil
	}
	return r.query(ctx, r.sb.Select(enrollmentColumns...).
		From("enrollments").
		Where(squirrel.Eq{"course_id": courseIDs}).
		OrderBy("course_id ASC", "id ASC"))
}

// GetStudentIDsByCourseID returns the IDs of students enrolled in a course
func (r *EnrollmentRepository) GetStudentIDsByCourseID(ctx context.Context, courseID int64) ([]int64, error) {
	sql, args, err := r.sb.Select("student_id").
		From("enrollments").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("student_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build enrolled students query: %w", err)
	}

	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying enrolled students: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning student id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Exists reports whether a student is enrolled in a course
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS(").
		From("enrollments").
		Where(squirrel.Eq{"student_id": studentID, "course_id": courseID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build enrollment exists query: %w", err)
	}

	var exists bool
	if err := r.conn(ctx).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return exists, nil
}

func (r *EnrollmentRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Enrollment, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build enrollment query: %w", err)
	}

	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing enrollment query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		e := &models.Enrollment{}
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.EnrolledAt); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}
	return enrollments, nil
}
