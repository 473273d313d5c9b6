package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/pkg/apperrors"
	"github.com/yigit/studentreg/internal/pkg/cache"
)

// memDB is an in-memory database behind the store interfaces. WithTransaction
// snapshots the tables and restores them when fn fails, so rollback is observable.
type memDB struct {
	mu          sync.Mutex
	students    map[int64]models.Student
	courses     map[int64]models.Course
	professors  map[int64]models.Professor
	enrollments map[int64]models.Enrollment
	users       map[int64]models.User
	nextID      int64

	// failures injects an error into the named operation, e.g. "enrollments.Create"
	failures map[string]error
	txCount  int
}

func newMemDB() *memDB {
	return &memDB{
		students:    map[int64]models.Student{},
		courses:     map[int64]models.Course{},
		professors:  map[int64]models.Professor{},
		enrollments: map[int64]models.Enrollment{},
		users:       map[int64]models.User{},
		failures:    map[string]error{},
	}
}

type memSnapshot struct {
	students    map[int64]models.Student
	courses     map[int64]models.Course
	professors  map[int64]models.Professor
	enrollments map[int64]models.Enrollment
	users       map[int64]models.User
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (m *memDB) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.txCount++
	snap := memSnapshot{
		students:    copyMap(m.students),
		courses:     copyMap(m.courses),
		professors:  copyMap(m.professors),
		enrollments: copyMap(m.enrollments),
		users:       copyMap(m.users),
	}
	m.mu.Unlock()

	if err := fn(ctx); err != nil {
		m.mu.Lock()
		m.students, m.courses, m.professors = snap.students, snap.courses, snap.professors
		m.enrollments, m.users = snap.enrollments, snap.users
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *memDB) fail(op string) error {
	return m.failures[op]
}

func (m *memDB) id() int64 {
	m.nextID++
	return m.nextID
}

func sortedKeys[V any](in map[int64]V) []int64 {
	keys := make([]int64, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func idSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// seed helpers

func (m *memDB) addProfessor(first, last string) *models.Professor {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := models.Professor{ID: m.id(), FirstName: first, LastName: last, Email: strings.ToLower(first) + "@uni.test"}
	m.professors[p.ID] = p
	return &p
}

func (m *memDB) addCourse(name string, credits int, professorID int64) *models.Course {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := models.Course{ID: m.id(), Name: name, Credits: credits, ProfessorID: professorID}
	m.courses[c.ID] = c
	return &c
}

func (m *memDB) addStudent(first, email string) *models.Student {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	s := models.Student{ID: id, FirstName: first, LastName: "Test", Email: email, StudentCode: fmt.Sprintf("STU2025%04d", 1000+id), RegistrationDate: time.Now()}
	m.students[s.ID] = s
	return &s
}

func (m *memDB) enrolledCourseIDs(studentID int64) []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := []int64{}
	for _, k := range sortedKeys(m.enrollments) {
		if e := m.enrollments[k]; e.StudentID == studentID {
			ids = append(ids, e.CourseID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *memDB) student(id int64) models.Student {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.students[id]
}

func (m *memDB) userCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

func (m *memDB) studentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.students)
}

// ---- StudentStore

type memStudents struct{ *memDB }

func (s memStudents) Create(_ context.Context, st *models.Student) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("students.Create"); err != nil {
		return 0, err
	}
	for _, existing := range s.students {
		if existing.Email == st.Email {
			return 0, apperrors.ErrStudentEmailExists
		}
		if existing.StudentCode == st.StudentCode {
			return 0, apperrors.ErrStudentCodeExists
		}
	}
	st.ID = s.id()
	s.students[st.ID] = *st
	return st.ID, nil
}

func (s memStudents) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return &st, nil
}

func (s memStudents) GetByIDForUpdate(ctx context.Context, id int64) (*models.Student, error) {
	return s.GetByID(ctx, id)
}

func (s memStudents) GetAll(_ context.Context) ([]*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*models.Student{}
	for _, k := range sortedKeys(s.students) {
		st := s.students[k]
		out = append(out, &st)
	}
	return out, nil
}

func (s memStudents) GetByIDs(_ context.Context, ids []int64) ([]*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := idSet(ids)
	out := []*models.Student{}
	for _, k := range sortedKeys(s.students) {
		if want[k] {
			st := s.students[k]
			out = append(out, &st)
		}
	}
	return out, nil
}

func (s memStudents) GetByProfessorID(_ context.Context, professorID int64) ([]*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := map[int64]bool{}
	for _, e := range s.enrollments {
		if s.courses[e.CourseID].ProfessorID == professorID {
			want[e.StudentID] = true
		}
	}
	out := []*models.Student{}
	for _, k := range sortedKeys(s.students) {
		if want[k] {
			st := s.students[k]
			out = append(out, &st)
		}
	}
	return out, nil
}

func (s memStudents) Update(_ context.Context, st *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("students.Update"); err != nil {
		return err
	}
	if _, ok := s.students[st.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	s.students[st.ID] = *st
	return nil
}

func (s memStudents) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.students, id)
	for k, e := range s.enrollments {
		if e.StudentID == id {
			delete(s.enrollments, k)
		}
	}
	for k, u := range s.users {
		if u.StudentID != nil && *u.StudentID == id {
			u.StudentID = nil
			s.users[k] = u
		}
	}
	return nil
}

func (s memStudents) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, st := range s.students {
		if id != excludeID && st.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s memStudents) CodeExists(_ context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("students.CodeExists"); err != nil {
		return false, err
	}
	for _, st := range s.students {
		if st.StudentCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (s memStudents) UpdateTotalCredits(_ context.Context, id int64, credits int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("students.UpdateTotalCredits"); err != nil {
		return err
	}
	st, ok := s.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	st.TotalCredits = credits
	s.students[id] = st
	return nil
}

func (s memStudents) RecalculateTotalCredits(_ context.Context, ids []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("students.RecalculateTotalCredits"); err != nil {
		return err
	}
	for _, id := range ids {
		st, ok := s.students[id]
		if !ok {
			continue
		}
		total := 0
		for _, e := range s.enrollments {
			if e.StudentID == id {
				total += s.courses[e.CourseID].Credits
			}
		}
		st.TotalCredits = total
		s.students[id] = st
	}
	return nil
}

// ---- CourseStore

type memCourses struct{ *memDB }

func (c memCourses) Create(_ context.Context, course *models.Course) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.professors[course.ProfessorID]; !ok {
		return 0, apperrors.ErrProfessorNotFound
	}
	course.ID = c.id()
	c.courses[course.ID] = *course
	return course.ID, nil
}

func (c memCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	course, ok := c.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return &course, nil
}

func (c memCourses) filter(keep func(models.Course) bool) []*models.Course {
	out := []*models.Course{}
	for _, k := range sortedKeys(c.courses) {
		course := c.courses[k]
		if keep(course) {
			out = append(out, &course)
		}
	}
	return out
}

func (c memCourses) GetAll(_ context.Context) ([]*models.Course, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter(func(models.Course) bool { return true }), nil
}

func (c memCourses) GetByIDs(_ context.Context, ids []int64) ([]*models.Course, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	want := idSet(ids)
	return c.filter(func(course models.Course) bool { return want[course.ID] }), nil
}

func (c memCourses) GetByProfessorID(_ context.Context, professorID int64) ([]*models.Course, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter(func(course models.Course) bool { return course.ProfessorID == professorID }), nil
}

func (c memCourses) CountByProfessorID(ctx context.Context, professorID int64) (int, error) {
	courses, _ := c.GetByProfessorID(ctx, professorID)
	return len(courses), nil
}

func (c memCourses) Delete(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(c.courses, id)
	for k, e := range c.enrollments {
		if e.CourseID == id {
			delete(c.enrollments, k)
		}
	}
	return nil
}

// ---- ProfessorStore

type memProfessors struct{ *memDB }

func (p memProfessors) Create(_ context.Context, prof *models.Professor) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	prof.ID = p.id()
	p.professors[prof.ID] = *prof
	return prof.ID, nil
}

func (p memProfessors) GetByID(_ context.Context, id int64) (*models.Professor, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	prof, ok := p.professors[id]
	if !ok {
		return nil, apperrors.ErrProfessorNotFound
	}
	return &prof, nil
}

func (p memProfessors) GetAll(ctx context.Context) ([]*models.Professor, error) {
	p.mu.Lock()
	ids := sortedKeys(p.professors)
	p.mu.Unlock()
	return p.GetByIDs(ctx, ids)
}

func (p memProfessors) GetByIDs(_ context.Context, ids []int64) ([]*models.Professor, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	want := idSet(ids)
	out := []*models.Professor{}
	for _, k := range sortedKeys(p.professors) {
		if want[k] {
			prof := p.professors[k]
			out = append(out, &prof)
		}
	}
	return out, nil
}

func (p memProfessors) EmailExists(_ context.Context, email string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, prof := range p.professors {
		if prof.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (p memProfessors) Delete(_ context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.professors[id]; !ok {
		return apperrors.ErrProfessorNotFound
	}
	for _, c := range p.courses {
		if c.ProfessorID == id {
			return apperrors.ErrProfessorHasCourses
		}
	}
	delete(p.professors, id)
	return nil
}

// ---- EnrollmentStore

type memEnrollments struct{ *memDB }

func (e memEnrollments) Create(_ context.Context, en *models.Enrollment) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.fail("enrollments.Create"); err != nil {
		return err
	}
	for _, existing := range e.enrollments {
		if existing.StudentID == en.StudentID && existing.CourseID == en.CourseID {
			return apperrors.ErrDuplicateEnrollment
		}
	}
	en.ID = e.id()
	e.enrollments[en.ID] = *en
	return nil
}

func (e memEnrollments) DeleteByStudentID(_ context.Context, studentID int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for k, en := range e.enrollments {
		if en.StudentID == studentID {
			delete(e.enrollments, k)
		}
	}
	return nil
}

func (e memEnrollments) filter(keep func(models.Enrollment) bool) []*models.Enrollment {
	out := []*models.Enrollment{}
	for _, k := range sortedKeys(e.enrollments) {
		en := e.enrollments[k]
		if keep(en) {
			out = append(out, &en)
		}
	}
	return out
}

func (e memEnrollments) GetByStudentID(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filter(func(en models.Enrollment) bool { return en.StudentID == studentID }), nil
}

func (e memEnrollments) GetByStudentIDs(_ context.Context, ids []int64) ([]*models.Enrollment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	want := idSet(ids)
	return e.filter(func(en models.Enrollment) bool { return want[en.StudentID] }), nil
}

func (e memEnrollments) GetByCourseIDs(_ context.Context, ids []int64) ([]*models.Enrollment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	want := idSet(ids)
	return e.filter(func(en models.Enrollment) bool { return want[en.CourseID] }), nil
}

func (e memEnrollments) GetStudentIDsByCourseID(_ context.Context, courseID int64) ([]int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := []int64{}
	for _, en := range e.filter(func(en models.Enrollment) bool { return en.CourseID == courseID }) {
		ids = append(ids, en.StudentID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (e memEnrollments) Exists(_ context.Context, studentID, courseID int64) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, en := range e.enrollments {
		if en.StudentID == studentID && en.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

// ---- UserStore

type memUsers struct{ *memDB }

func (u memUsers) Create(_ context.Context, user *models.User) (int64, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.fail("users.Create"); err != nil {
		return 0, err
	}
	for _, existing := range u.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return 0, apperrors.ErrUserExists
		}
	}
	user.ID = u.id()
	u.users[user.ID] = *user
	return user.ID, nil
}

func (u memUsers) find(match func(models.User) bool) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, k := range sortedKeys(u.users) {
		user := u.users[k]
		if match(user) {
			return &user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (u memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	return u.find(func(user models.User) bool { return user.ID == id })
}

func (u memUsers) GetActiveByUsername(_ context.Context, username string) (*models.User, error) {
	return u.find(func(user models.User) bool { return user.Username == username && user.IsActive })
}

func (u memUsers) GetByStudentID(_ context.Context, studentID int64) (*models.User, error) {
	return u.find(func(user models.User) bool { return user.StudentID != nil && *user.StudentID == studentID })
}

func (u memUsers) GetByStudentIDs(_ context.Context, ids []int64) ([]*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	want := idSet(ids)
	out := []*models.User{}
	for _, k := range sortedKeys(u.users) {
		user := u.users[k]
		if user.StudentID != nil && want[*user.StudentID] {
			out = append(out, &user)
		}
	}
	return out, nil
}

func (u memUsers) UsernameOrEmailExists(_ context.Context, username, email string) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, user := range u.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (u memUsers) UsernameTaken(_ context.Context, username string, excludeID int64) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for id, user := range u.users {
		if id != excludeID && user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (u memUsers) update(id int64, apply func(*models.User)) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	apply(&user)
	u.users[id] = user
	return nil
}

func (u memUsers) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	return u.update(id, func(user *models.User) { user.LastLoginAt = &at })
}

func (u memUsers) UpdatePassword(_ context.Context, id int64, hash string) error {
	if err := u.fail("users.UpdatePassword"); err != nil {
		return err
	}
	return u.update(id, func(user *models.User) { user.PasswordHash = hash })
}

func (u memUsers) UpdateUsername(_ context.Context, id int64, username string) error {
	return u.update(id, func(user *models.User) { user.Username = username })
}

// ---- CatalogCache

type memCache struct {
	mu      sync.Mutex
	values  map[string]interface{}
	deletes int
}

func newMemCache() *memCache { return &memCache{values: map[string]interface{}{}} }

func (c *memCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	if !ok {
		return cacheMiss
	}
	switch d := dest.(type) {
	case *[]*models.Course:
		*d = v.([]*models.Course)
	case *[]*models.Professor:
		*d = v.([]*models.Professor)
	}
	return nil
}

func (c *memCache) Set(_ context.Context, key string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes++
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.values[key]
	return ok
}

var cacheMiss = cache.ErrCacheMiss
