package services

import (
	"context"
	"time"

	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/pkg/cache"
)

// Transactor runs fn as one unit of work. Store calls made with the ctx passed
// to fn join the transaction; an error from fn rolls all of them back.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// StudentStore persists students
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Student, error)
	GetByProfessorID(ctx context.Context, professorID int64) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	UpdateTotalCredits(ctx context.Context, id int64, credits int) error
	RecalculateTotalCredits(ctx context.Context, ids []int64) error
}

// CourseStore persists courses
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Course, error)
	GetByProfessorID(ctx context.Context, professorID int64) ([]*models.Course, error)
	CountByProfessorID(ctx context.Context, professorID int64) (int, error)
	Delete(ctx context.Context, id int64) error
}

// ProfessorStore persists professors
type ProfessorStore interface {
	Create(ctx context.Context, professor *models.Professor) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Professor, error)
	GetAll(ctx context.Context) ([]*models.Professor, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Professor, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// EnrollmentStore persists enrollments
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	DeleteByStudentID(ctx context.Context, studentID int64) error
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetByStudentIDs(ctx context.Context, studentIDs []int64) ([]*models.Enrollment, error)
	GetByCourseIDs(ctx context.Context, courseIDs []int64) ([]*models.Enrollment, error)
	GetStudentIDsByCourseID(ctx context.Context, courseID int64) ([]int64, error)
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
}

// UserStore persists user accounts
type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetActiveByUsername(ctx context.Context, username string) (*models.User, error)
	GetByStudentID(ctx context.Context, studentID int64) (*models.User, error)
	GetByStudentIDs(ctx context.Context, studentIDs []int64) ([]*models.User, error)
	UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error)
	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateUsername(ctx context.Context, id int64, username string) error
}

// CatalogCache is the subset of cache.Cache the catalog services need
type CatalogCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

var _ CatalogCache = (*cache.NoopCache)(nil)
