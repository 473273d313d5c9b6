package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/pkg/apperrors"
	"github.com/yigit/studentreg/internal/pkg/dberrors"
	"github.com/yigit/studentreg/internal/pkg/logger"
)

const (
	studentsEmailKey = "students_email_key"
	studentsCodeKey  = "students_student_code_key"
)

var studentColumns = []string{
	"s.id", "s.first_name", "s.last_name", "s.email", "s.student_code", "s.registration_date", "s.total_credits",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	baseRepository
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{baseRepository: newBaseRepository(pool)}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.StudentCode, &s.RegistrationDate, &s.TotalCredits)
	return s, err
}

func (r *StudentRepository) queryStudents(ctx context.Context, query squirrel.SelectBuilder, op string) ([]*models.Student, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error building student query SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", op, err)
	}

	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error executing student query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Create inserts a student and sets its ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("first_name", "last_name", "email", "student_code", "registration_date", "total_credits").
		Values(student.FirstName, student.LastName, student.Email, student.StudentCode, student.RegistrationDate, student.TotalCredits).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.conn(ctx).QueryRow(ctx, sql, args...).Scan(&student.ID); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, studentsEmailKey):
			return 0, apperrors.ErrStudentEmailExists
		case dberrors.IsDuplicateConstraintError(err, studentsCodeKey):
			return 0, apperrors.ErrStudentCodeExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return student.ID, nil
}

func (r *StudentRepository) getOne(ctx context.Context, id int64, forUpdate bool) (*models.Student, error) {
	query := r.sb.Select(studentColumns...).
		From("students s").
		Where(squirrel.Eq{"s.id": id})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.conn(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return s, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.getOne(ctx, id, false)
}

// GetByIDForUpdate retrieves a student and locks its row until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *StudentRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.Student, error) {
	return r.getOne(ctx, id, true)
}

// GetAll retrieves all students ordered by name
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	return r.queryStudents(ctx, r.sb.Select(studentColumns...).
		From("students s").
		OrderBy("s.last_name ASC", "s.first_name ASC", "s.id ASC"), "get all students")
}

// GetByIDs retrieves the students whose IDs are in ids
func (r *StudentRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Student, error) {
	if len(ids) == 0 {
		return []*models.Student{}, nil
	}
	return r.queryStudents(ctx, r.sb.Select(studentColumns...).
		From("students s").
		Where(squirrel.Eq{"s.id": ids}).
		OrderBy("s.last_name ASC", "s.first_name ASC", "s.id ASC"), "get students by ids")
}

// GetByProfessorID retrieves the distinct students enrolled in any course of a professor
func (r *StudentRepository) GetByProfessorID(ctx context.Context, professorID int64) ([]*models.Student, error) {
	return r.queryStudents(ctx, r.sb.Select(studentColumns...).
		Distinct().
		From("students s").
		Join("enrollments e ON e.student_id = s.id").
		Join("courses c ON c.id = e.course_id").
		Where(squirrel.Eq{"c.professor_id": professorID}).
		OrderBy("s.last_name ASC", "s.first_name ASC", "s.id ASC"), "get students by professor")
}

// Update stores the editable student fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"first_name": student.FirstName,
			"last_name":  student.LastName,
			"email":      student.Email,
		}).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentsEmailKey) {
			return apperrors.ErrStudentEmailExists
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student. Enrollments cascade; linked users are unlinked.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// EmailExists reports whether another student (not excludeID) uses email
func (r *StudentRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	query := r.sb.Select("1").From("students").Where(squirrel.Eq{"email": email})
	if excludeID > 0 {
		query = query.Where(squirrel.NotEq{"id": excludeID})
	}
	return r.exists(ctx, query)
}

// CodeExists reports whether a student code is taken
func (r *StudentRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, r.sb.Select("1").From("students").Where(squirrel.Eq{"student_code": code}))
}

func (r *StudentRepository) exists(ctx context.Context, query squirrel.SelectBuilder) (bool, error) {
	sql, args, err := query.Prefix("SELECT EXISTS(").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var exists bool
	if err := r.conn(ctx).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// UpdateTotalCredits sets the cached credit sum of a student
func (r *StudentRepository) UpdateTotalCredits(ctx context.Context, id int64, credits int) error {
	sql, args, err := r.sb.Update("students").
		Set("total_credits", credits).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update credits query: %w", err)
	}

	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating total credits: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// RecalculateTotalCredits recomputes total_credits from current enrollments for each student in ids
func (r *StudentRepository) RecalculateTotalCredits(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("students s").
		Set("total_credits", squirrel.Expr(
			"COALESCE((SELECT SUM(c.credits) FROM enrollments e JOIN courses c ON c.id = e.course_id WHERE e.student_id = s.id), 0)",
		)).
		Where(squirrel.Eq{"s.id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build recalculate credits query: %w", err)
	}

	if _, err := r.conn(ctx).Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Ints64("studentIDs", ids).Msg("Error recalculating total credits")
		return fmt.Errorf("error recalculating total credits: %w", err)
	}
	return nil
}
