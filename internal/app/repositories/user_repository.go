package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/pkg/apperrors"
	"github.com/yigit/studentreg/internal/pkg/dberrors"
	"github.com/yigit/studentreg/internal/pkg/logger"
)

var userColumns = []string{
	"id", "username", "email", "password_hash", "first_name", "last_name", "role",
	"is_active", "created_at", "last_login_at", "student_id", "professor_id",
}

// UserRepository handles user account database operations
type UserRepository struct {
	baseRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{baseRepository: newBaseRepository(pool)}
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	var role string
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &role,
		&u.IsActive, &u.CreatedAt, &u.LastLoginAt, &u.StudentID, &u.ProfessorID)
	u.Role = models.RoleType(role)
	return u, err
}

// Create inserts a user and sets its ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("username", "email", "password_hash", "first_name", "last_name", "role",
			"is_active", "created_at", "student_id", "professor_id").
		Values(user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName, string(user.Role),
			user.IsActive, user.CreatedAt, user.StudentID, user.ProfessorID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	if err := r.conn(ctx).QueryRow(ctx, sql, args...).Scan(&user.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrUserExists
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return user.ID, nil
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	u, err := scanUser(r.conn(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return u, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetActiveByUsername retrieves an active user by exact username
func (r *UserRepository) GetActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username, "is_active": true})
}

// GetByStudentID retrieves the user linked to a student record
func (r *UserRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"student_id": studentID})
}

// GetByStudentIDs retrieves the users linked to any of the given students
func (r *UserRepository) GetByStudentIDs(ctx context.Context, studentIDs []int64) ([]*models.User, error) {
	if len(studentIDs) == 0 {
		return []*models.User{}, nil
	}

	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"student_id": studentIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build users by student query: %w", err)
	}

	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UsernameOrEmailExists reports whether any user has the username or the email
func (r *UserRepository) UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error) {
	return r.exists(ctx, squirrel.Or{
		squirrel.Eq{"username": username},
		squirrel.Eq{"email": email},
	})
}

// UsernameTaken reports whether another user (not excludeID) has username
func (r *UserRepository) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	return r.exists(ctx, squirrel.And{
		squirrel.Eq{"username": username},
		squirrel.NotEq{"id": excludeID},
	})
}

func (r *UserRepository) exists(ctx context.Context, where squirrel.Sqlizer) (bool, error) {
	sql, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS(").
		From("users").
		Where(where).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build user exists query: %w", err)
	}

	var exists bool
	if err := r.conn(ctx).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking user existence: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) update(ctx context.Context, id int64, set map[string]interface{}) error {
	sql, args, err := r.sb.Update("users").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUserExists
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing update user query")
		return fmt.Errorf("error updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin stamps the last successful login
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.update(ctx, id, map[string]interface{}{"last_login_at": at})
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.update(ctx, id, map[string]interface{}{"password_hash": passwordHash})
}

// UpdateUsername renames a user
func (r *UserRepository) UpdateUsername(ctx context.Context, id int64, username string) error {
	return r.update(ctx, id, map[string]interface{}{"username": username})
}
