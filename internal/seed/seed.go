package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/app/services"
	"github.com/yigit/studentreg/internal/pkg/auth"
)

// UserStore is the part of the user repository the seeder needs
type UserStore interface {
	Create(ctx context.Context, user *appModels.User) (int64, error)
	UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error)
}

// ProfessorStore is the part of the professor repository the seeder needs
type ProfessorStore interface {
	Create(ctx context.Context, professor *appModels.Professor) (int64, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// CourseStore is the part of the course repository the seeder needs
type CourseStore interface {
	Create(ctx context.Context, course *appModels.Course) (int64, error)
}

// AdminAccount is the default administrator created by EnsureAdmin
type AdminAccount struct {
	Username string
	Email    string
	Password string
}

// CatalogEntry is one default professor with the courses they teach
type CatalogEntry struct {
	Professor appModels.Professor
	Courses   []appModels.Course
}

// DefaultCatalog is the starter catalog of five professors with two courses each
var DefaultCatalog = []CatalogEntry{
	{
		Professor: appModels.Professor{FirstName: "Ana", LastName: "Garcia", Email: "ana.garcia@university.edu", Department: "Mathematics"},
		Courses: []appModels.Course{
			{Name: "Linear Algebra", Description: "Foundations of linear algebra", Credits: 3},
			{Name: "Differential Calculus", Description: "Introduction to differential calculus", Credits: 3},
		},
	},
	{
		Professor: appModels.Professor{FirstName: "Carlos", LastName: "Lopez", Email: "carlos.lopez@university.edu", Department: "Science"},
		Courses: []appModels.Course{
			{Name: "General Physics", Description: "Basic principles of physics", Credits: 3},
			{Name: "Organic Chemistry", Description: "Study of organic compounds", Credits: 3},
		},
	},
	{
		Professor: appModels.Professor{FirstName: "Maria", LastName: "Rodriguez", Email: "maria.rodriguez@university.edu", Department: "Humanities"},
		Courses: []appModels.Course{
			{Name: "Spanish Literature", Description: "Analysis of literary texts", Credits: 3},
			{Name: "World History", Description: "Major events of world history", Credits: 3},
		},
	},
	{
		Professor: appModels.Professor{FirstName: "Jose", LastName: "Martinez", Email: "jose.martinez@university.edu", Department: "Engineering"},
		Courses: []appModels.Course{
			{Name: "Data Structures", Description: "Fundamental algorithms and structures", Credits: 3},
			{Name: "Databases", Description: "Design and management of databases", Credits: 3},
		},
	},
	{
		Professor: appModels.Professor{FirstName: "Laura", LastName: "Fernandez", Email: "laura.fernandez@university.edu", Department: "Technology"},
		Courses: []appModels.Course{
			{Name: "Web Programming", Description: "Building web applications", Credits: 3},
			{Name: "Computer Networks", Description: "Networking fundamentals", Credits: 3},
		},
	},
}

// Seeder creates default data. Every step checks for existing rows first,
// so running it again changes nothing.
type Seeder struct {
	tx         services.Transactor
	users      UserStore
	professors ProfessorStore
	courses    CourseStore
	hasher     auth.PasswordHasher
	logger     zerolog.Logger
	now        func() time.Time
}

// NewSeeder creates a new Seeder
func NewSeeder(
	tx services.Transactor,
	users UserStore,
	professors ProfessorStore,
	courses CourseStore,
	hasher auth.PasswordHasher,
	logger zerolog.Logger,
) *Seeder {
	return &Seeder{
		tx:         tx,
		users:      users,
		professors: professors,
		courses:    courses,
		hasher:     hasher,
		logger:     logger,
		now:        time.Now,
	}
}

// Run ensures the admin account and the default catalog. Errors of both
// steps are collected and returned together.
func (s *Seeder) Run(ctx context.Context, admin AdminAccount) error {
	s.logger.Info().Msg("Checking/Creating default data (admin, catalog)...")
	var finalErr error

	if _, err := s.EnsureAdmin(ctx, admin); err != nil {
		s.logger.Error().Err(err).Msg("Error ensuring admin account")
		finalErr = errors.Join(finalErr, err)
	}

	if _, err := s.EnsureCatalog(ctx, DefaultCatalog); err != nil {
		s.logger.Error().Err(err).Msg("Error ensuring default catalog")
		finalErr = errors.Join(finalErr, err)
	}

	s.logger.Info().Msg("Default data check/creation finished.")
	return finalErr
}

// EnsureAdmin creates the admin account unless its username or email is
// already taken. It reports whether an account was created.
func (s *Seeder) EnsureAdmin(ctx context.Context, admin AdminAccount) (bool, error) {
	username := strings.TrimSpace(admin.Username)
	email := strings.ToLower(strings.TrimSpace(admin.Email))
	if username == "" || email == "" || admin.Password == "" {
		return false, errors.New("admin username, email and password are required")
	}

	exists, err := s.users.UsernameOrEmailExists(ctx, username, email)
	if err != nil {
		return false, fmt.Errorf("checking admin account: %w", err)
	}
	if exists {
		s.logger.Info().Str("username", username).Msg("Admin user already exists, skipping creation")
		return false, nil
	}

	hash, err := s.hasher.Hash(admin.Password)
	if err != nil {
		return false, err
	}

	id, err := s.users.Create(ctx, &appModels.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    "System",
		LastName:     "Administrator",
		Role:         appModels.RoleAdmin,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return false, fmt.Errorf("creating admin account: %w", err)
	}

	s.logger.Info().Int64("userID", id).Str("username", username).Msg("Default admin user created")
	return true, nil
}

// EnsureCatalog creates every professor of catalog whose email is unknown,
// together with their courses, one transaction per professor. It returns the
// number of professors created.
func (s *Seeder) EnsureCatalog(ctx context.Context, catalog []CatalogEntry) (int, error) {
	created := 0
	for _, entry := range catalog {
		exists, err := s.professors.EmailExists(ctx, entry.Professor.Email)
		if err != nil {
			return created, fmt.Errorf("checking professor %s: %w", entry.Professor.Email, err)
		}
		if exists {
			continue
		}

		err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
			professor := entry.Professor
			professorID, err := s.professors.Create(ctx, &professor)
			if err != nil {
				return err
			}
			for _, c := range entry.Courses {
				course := c
				course.ProfessorID = professorID
				if _, err := s.courses.Create(ctx, &course); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return created, fmt.Errorf("seeding professor %s: %w", entry.Professor.Email, err)
		}
		created++
	}

	if created > 0 {
		s.logger.Info().Int("professors", created).Msg("Default catalog created")
	}
	return created, nil
}
