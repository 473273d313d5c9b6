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

const professorsEmailKey = "professors_email_key"

var professorColumns = []string{"id", "first_name", "last_name", "email", "department"}

// ProfessorRepository handles professor database operations
type ProfessorRepository struct {
	baseRepository
}

// NewProfessorRepository creates a new ProfessorRepository
func NewProfessorRepository(pool *pgxpool.Pool) *ProfessorRepository {
	return &ProfessorRepository{baseRepository: newBaseRepository(pool)}
}

func scanProfessor(row pgx.Row) (*models.Professor, error) {
	p := &models.Professor{}
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Department)
	return p, err
}

// Create inserts a professor and sets its ID
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) (int64, error) {
	sql, args, err := r.sb.Insert("professors").
		Columns("first_name", "last_name", "email", "department").
		Values(professor.FirstName, professor.LastName, professor.Email, professor.Department).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create professor query: %w", err)
	}

	if err := r.conn(ctx).QueryRow(ctx, sql, args...).Scan(&professor.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, professorsEmailKey) {
			return 0, apperrors.ErrProfessorEmailExists
		}
		logger.Error().Err(err).Msg("Error executing create professor query")
		return 0, fmt.Errorf("error creating professor: %w", err)
	}
	return professor.ID, nil
}

// GetByID retrieves a professor by ID
func (r *ProfessorRepository) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	sql, args, err := r.sb.Select(professorColumns...).
		From("professors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get professor query: %w", err)
	}

	p, err := scanProfessor(r.conn(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfessorNotFound
		}
		logger.Error().Err(err).Int64("professorID", id).Msg("Error scanning professor row")
		return nil, fmt.Errorf("error getting professor by ID: %w", err)
	}
	return p, nil
}

// GetAll retrieves all professors
func (r *ProfessorRepository) GetAll(ctx context.Context) ([]*models.Professor, error) {
	return r.queryProfessors(ctx, r.sb.Select(professorColumns...).
		From("professors").
		OrderBy("last_name ASC", "first_name ASC", "id ASC"))
}

// GetByIDs retrieves the professors whose IDs are in ids
func (r *ProfessorRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Professor, error) {
	if len(ids) == 0 {
		return []*models.Professor{}, nil
	}
	return r.queryProfessors(ctx, r.sb.Select(professorColumns...).
		From("professors").
		Where(squirrel.Eq{"id": ids}))
}

func (r *ProfessorRepository) queryProfessors(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Professor, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build professor query: %w", err)
	}

	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing professor query")
		return nil, fmt.Errorf("error querying professors: %w", err)
	}
	defer rows.Close()

	professors := []*models.Professor{}
	for rows.Next() {
		p, err := scanProfessor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning professor row: %w", err)
		}
		professors = append(professors, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating professor rows: %w", err)
	}
	return professors, nil
}

// EmailExists reports whether a professor uses email
func (r *ProfessorRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS(").
		From("professors").
		Where(squirrel.Eq{"email": email}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build professor email query: %w", err)
	}

	var exists bool
	if err := r.conn(ctx).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking professor email: %w", err)
	}
	return exists, nil
}

// Delete removes a professor. Fails with ErrProfessorHasCourses while courses reference it.
func (r *ProfessorRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("professors").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete professor query: %w", err)
	}

	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProfessorHasCourses
		}
		logger.Error().Err(err).Int64("professorID", id).Msg("Error executing delete professor query")
		return fmt.Errorf("error deleting professor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProfessorNotFound
	}
	return nil
}
