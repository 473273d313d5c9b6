package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/app/models/dto"
	"github.com/yigit/studentreg/internal/pkg/apperrors"
)

// ProfessorService defines operations on professors
type ProfessorService interface {
	GetAllProfessors(ctx context.Context) ([]dto.ProfessorResponse, error)
	GetProfessorByID(ctx context.Context, id int64) (*dto.ProfessorResponse, error)
	CreateProfessor(ctx context.Context, req dto.CreateProfessorRequest) (*dto.ProfessorResponse, error)
	DeleteProfessor(ctx context.Context, id int64) error
}

type professorServiceImpl struct {
	catalogReader
}

// NewProfessorService creates a new ProfessorService
func NewProfessorService(
	courses CourseStore,
	professors ProfessorStore,
	cache CatalogCache,
	logger zerolog.Logger,
) ProfessorService {
	return &professorServiceImpl{
		catalogReader: catalogReader{
			courses:    courses,
			professors: professors,
			cache:      cache,
			logger:     logger,
		},
	}
}

func professorResponse(p *models.Professor, courses []*models.Course) dto.ProfessorResponse {
	resp := dto.ProfessorResponse{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Email:      p.Email,
		Department: p.Department,
		Courses:    make([]dto.ProfessorCourse, 0, len(courses)),
	}
	for _, c := range courses {
		resp.Courses = append(resp.Courses, dto.ProfessorCourse{ID: c.ID, Name: c.Name, Credits: c.Credits})
	}
	return resp
}

func (s *professorServiceImpl) GetAllProfessors(ctx context.Context) ([]dto.ProfessorResponse, error) {
	professors, err := s.allProfessors(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.allCourses(ctx)
	if err != nil {
		return nil, err
	}

	byProfessor := make(map[int64][]*models.Course, len(professors))
	for _, c := range courses {
		byProfessor[c.ProfessorID] = append(byProfessor[c.ProfessorID], c)
	}

	out := make([]dto.ProfessorResponse, 0, len(professors))
	for _, p := range professors {
		out = append(out, professorResponse(p, byProfessor[p.ID]))
	}
	return out, nil
}

func (s *professorServiceImpl) GetProfessorByID(ctx context.Context, id int64) (*dto.ProfessorResponse, error) {
	p, err := s.professors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	courses, err := s.courses.GetByProfessorID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := professorResponse(p, courses)
	return &resp, nil
}

func (s *professorServiceImpl) CreateProfessor(ctx context.Context, req dto.CreateProfessorRequest) (*dto.ProfessorResponse, error) {
	email := strings.TrimSpace(req.Email)
	exists, err := s.professors.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrProfessorEmailExists
	}

	p := &models.Professor{
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Email:      email,
		Department: strings.TrimSpace(req.Department),
	}
	if _, err := s.professors.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.logger.Info().Int64("professorID", p.ID).Msg("Professor created")
	resp := professorResponse(p, nil)
	return &resp, nil
}

// DeleteProfessor refuses while any course still references the professor
func (s *professorServiceImpl) DeleteProfessor(ctx context.Context, id int64) error {
	if _, err := s.professors.GetByID(ctx, id); err != nil {
		return err
	}

	n, err := s.courses.CountByProfessorID(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperrors.ErrProfessorHasCourses
	}

	if err := s.professors.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)

	s.logger.Info().Int64("professorID", id).Msg("Professor deleted")
	return nil
}
