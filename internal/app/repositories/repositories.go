package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentreg/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	ProfessorRepository  *ProfessorRepository
	EnrollmentRepository *EnrollmentRepository
	UserRepository       *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(pool),
		CourseRepository:     NewCourseRepository(pool),
		ProfessorRepository:  NewProfessorRepository(pool),
		EnrollmentRepository: NewEnrollmentRepository(pool),
		UserRepository:       NewUserRepository(pool),
	}
}

// baseRepository carries the pool and a Postgres-flavoured squirrel builder
type baseRepository struct {
	pool db.Querier
	sb   squirrel.StatementBuilderType
}

func newBaseRepository(pool db.Querier) baseRepository {
	return baseRepository{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// conn returns the transaction of ctx if one is open, otherwise the pool
func (r *baseRepository) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, r.pool)
}
