package services

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"
	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/app/models/dto"
	"github.com/yigit/studentreg/internal/pkg/cache"
)

// catalogReader assembles response DTOs from the stores. The course and
// professor lists are read through the catalog cache.
type catalogReader struct {
	students    StudentStore
	courses     CourseStore
	professors  ProfessorStore
	enrollments EnrollmentStore
	users       UserStore
	cache       CatalogCache
	logger      zerolog.Logger
}

func (r *catalogReader) allCourses(ctx context.Context) ([]*models.Course, error) {
	var cached []*models.Course
	if err := r.cache.Get(ctx, cache.KeyCourses, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		r.logger.Warn().Err(err).Msg("Catalog cache read failed")
	}

	courses, err := r.courses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, cache.KeyCourses, courses); err != nil {
		r.logger.Warn().Err(err).Msg("Catalog cache write failed")
	}
	return courses, nil
}

func (r *catalogReader) allProfessors(ctx context.Context) ([]*models.Professor, error) {
	var cached []*models.Professor
	if err := r.cache.Get(ctx, cache.KeyProfessors, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		r.logger.Warn().Err(err).Msg("Catalog cache read failed")
	}

	professors, err := r.professors.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, cache.KeyProfessors, professors); err != nil {
		r.logger.Warn().Err(err).Msg("Catalog cache write failed")
	}
	return professors, nil
}

// invalidate drops the cached catalog lists after a write
func (r *catalogReader) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, cache.KeyCourses, cache.KeyProfessors); err != nil {
		r.logger.Warn().Err(err).Msg("Catalog cache invalidation failed")
	}
}

func (r *catalogReader) professorsByID(ctx context.Context, ids []int64) (map[int64]*models.Professor, error) {
	professors, err := r.professors.GetByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	out := make(map[int64]*models.Professor, len(professors))
	for _, p := range professors {
		out[p.ID] = p
	}
	return out, nil
}

func professorName(p *models.Professor) string {
	if p == nil {
		return ""
	}
	return p.FullName()
}

// studentResponses loads enrollments, courses, professors and linked users of students
func (r *catalogReader) studentResponses(ctx context.Context, students []*models.Student) ([]dto.StudentResponse, error) {
	out := make([]dto.StudentResponse, 0, len(students))
	if len(students) == 0 {
		return out, nil
	}

	studentIDs := make([]int64, 0, len(students))
	for _, s := range students {
		studentIDs = append(studentIDs, s.ID)
	}

	enrollments, err := r.enrollments.GetByStudentIDs(ctx, studentIDs)
	if err != nil {
		return nil, err
	}

	courseIDs := make([]int64, 0, len(enrollments))
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
	}
	courses, err := r.courses.GetByIDs(ctx, uniqueIDs(courseIDs))
	if err != nil {
		return nil, err
	}
	coursesByID := make(map[int64]*models.Course, len(courses))
	professorIDs := make([]int64, 0, len(courses))
	for _, c := range courses {
		coursesByID[c.ID] = c
		professorIDs = append(professorIDs, c.ProfessorID)
	}
	professors, err := r.professorsByID(ctx, professorIDs)
	if err != nil {
		return nil, err
	}

	users, err := r.users.GetByStudentIDs(ctx, studentIDs)
	if err != nil {
		return nil, err
	}
	usersByStudent := make(map[int64]*models.User, len(users))
	for _, u := range users {
		if u.StudentID != nil {
			usersByStudent[*u.StudentID] = u
		}
	}

	coursesByStudent := make(map[int64][]dto.StudentCourseResponse, len(students))
	for _, e := range enrollments {
		c, ok := coursesByID[e.CourseID]
		if !ok {
			continue
		}
		coursesByStudent[e.StudentID] = append(coursesByStudent[e.StudentID], dto.StudentCourseResponse{
			ID:            c.ID,
			Name:          c.Name,
			Credits:       c.Credits,
			ProfessorID:   c.ProfessorID,
			ProfessorName: professorName(professors[c.ProfessorID]),
			EnrolledAt:    e.EnrolledAt,
		})
	}

	for _, s := range students {
		resp := dto.StudentResponse{
			ID:               s.ID,
			FirstName:        s.FirstName,
			LastName:         s.LastName,
			Email:            s.Email,
			StudentCode:      s.StudentCode,
			RegistrationDate: s.RegistrationDate,
			TotalCredits:     s.TotalCredits,
			Courses:          coursesByStudent[s.ID],
		}
		if resp.Courses == nil {
			resp.Courses = []dto.StudentCourseResponse{}
		}
		if u, ok := usersByStudent[s.ID]; ok {
			id := u.ID
			resp.UserID = &id
			resp.Username = u.Username
		}
		out = append(out, resp)
	}
	return out, nil
}

// courseResponses loads professors and enrolled students of courses
func (r *catalogReader) courseResponses(ctx context.Context, courses []*models.Course) ([]dto.CourseResponse, error) {
	out := make([]dto.CourseResponse, 0, len(courses))
	if len(courses) == 0 {
		return out, nil
	}

	courseIDs := make([]int64, 0, len(courses))
	professorIDs := make([]int64, 0, len(courses))
	for _, c := range courses {
		courseIDs = append(courseIDs, c.ID)
		professorIDs = append(professorIDs, c.ProfessorID)
	}

	professors, err := r.professorsByID(ctx, professorIDs)
	if err != nil {
		return nil, err
	}

	enrollments, err := r.enrollments.GetByCourseIDs(ctx, courseIDs)
	if err != nil {
		return nil, err
	}
	studentIDs := make([]int64, 0, len(enrollments))
	for _, e := range enrollments {
		studentIDs = append(studentIDs, e.StudentID)
	}
	students, err := r.students.GetByIDs(ctx, uniqueIDs(studentIDs))
	if err != nil {
		return nil, err
	}
	studentsByID := make(map[int64]*models.Student, len(students))
	for _, s := range students {
		studentsByID[s.ID] = s
	}

	enrolled := make(map[int64][]dto.StudentSummary, len(courses))
	for _, e := range enrollments {
		s, ok := studentsByID[e.StudentID]
		if !ok {
			continue
		}
		enrolled[e.CourseID] = append(enrolled[e.CourseID], studentSummary(s))
	}

	for _, c := range courses {
		resp := dto.CourseResponse{
			ID:               c.ID,
			Name:             c.Name,
			Description:      c.Description,
			Credits:          c.Credits,
			ProfessorID:      c.ProfessorID,
			ProfessorName:    professorName(professors[c.ProfessorID]),
			EnrolledStudents: enrolled[c.ID],
		}
		if resp.EnrolledStudents == nil {
			resp.EnrolledStudents = []dto.StudentSummary{}
		}
		out = append(out, resp)
	}
	return out, nil
}

func studentSummary(s *models.Student) dto.StudentSummary {
	return dto.StudentSummary{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Email:       s.Email,
		StudentCode: s.StudentCode,
	}
}

// uniqueIDs returns ids without repeats, sorted ascending
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
