package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentreg/internal/app/models/dto"
	"github.com/yigit/studentreg/internal/app/services"
	"github.com/yigit/studentreg/internal/middleware"
	"github.com/yigit/studentreg/internal/pkg/apperrors"
	"github.com/yigit/studentreg/internal/pkg/auth"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidation()
	os.Exit(m.Run())
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
}

func do(t *testing.T, r http.Handler, method, path, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

// withUser stands in for JWTAuth
func withUser(userID int64, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, userID)
		c.Set(middleware.ContextKeyRole, role)
		c.Set(middleware.ContextKeyClaims, &auth.Claims{UserID: userID, Role: role, Username: "tester"})
		c.Next()
	}
}

// ---- fakes

type fakeAuth struct {
	login    *dto.AuthResult
	register *dto.RegisterResult
	changed  bool
	err      error
	lastUser int64
}

func (f *fakeAuth) Login(context.Context, dto.LoginRequest) (*dto.AuthResult, error) {
	return f.login, f.err
}

func (f *fakeAuth) Register(context.Context, dto.RegisterRequest) (*dto.RegisterResult, error) {
	return f.register, f.err
}

func (f *fakeAuth) ChangePassword(_ context.Context, userID int64, _ dto.ChangePasswordRequest) (bool, error) {
	f.lastUser = userID
	return f.changed, f.err
}

func (f *fakeAuth) GetProfile(_ context.Context, userID int64) (*dto.UserResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.UserResponse{ID: userID, Username: "tester"}, nil
}

type fakeEnrollment struct {
	err       error
	studentID int64
	courseIDs []int64
	calls     int
}

func (f *fakeEnrollment) Enroll(_ context.Context, studentID int64, courseIDs []int64) error {
	f.calls++
	f.studentID, f.courseIDs = studentID, courseIDs
	return f.err
}

type fakeAccess struct{ allowed map[int64]int64 }

func (f fakeAccess) ValidateStudentAccess(_ context.Context, userID, studentID int64) error {
	if userID == 1 || f.allowed[userID] == studentID {
		return nil
	}
	return apperrors.NewForbiddenError("you can only manage your own student record")
}

type fakeStudents struct {
	services.StudentService
	student *dto.StudentResponse
	err     error
}

func (f fakeStudents) GetStudentByID(_ context.Context, id int64) (*dto.StudentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := *f.student
	s.ID = id
	return &s, nil
}

func (f fakeStudents) UpdateStudent(_ context.Context, id int64, req dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	return &dto.StudentResponse{ID: id, FirstName: req.FirstName, Email: req.Email}, f.err
}

type fakeCourses struct {
	services.CourseService
	created dto.CreateCourseRequest
	err     error
}

func (f *fakeCourses) CreateCourse(_ context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	f.created = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.CourseResponse{ID: 1, Name: req.Name, Credits: 3, ProfessorID: req.ProfessorID}, nil
}

func (f *fakeCourses) GetCourseByID(context.Context, int64) (*dto.CourseResponse, error) {
	return nil, apperrors.ErrCourseNotFound
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

// ---- auth

func authRouter(f *fakeAuth) *gin.Engine {
	c := NewAuthController(f, zerolog.Nop())
	r := gin.New()
	r.POST("/auth/login", c.Login)
	r.POST("/auth/register", c.Register)
	r.POST("/auth/change-password", withUser(7, "Student"), c.ChangePassword)
	r.GET("/auth/profile", withUser(7, "Student"), c.GetProfile)
	r.GET("/auth/verify", withUser(7, "Student"), c.VerifyToken)
	return r
}

func TestLoginEndpoint(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	f := &fakeAuth{login: &dto.AuthResult{Authenticated: true, Message: services.MsgLoginSucceeded, Token: "a.b.c", ExpiresAt: &expires}}

	w, env := do(t, authRouter(f), http.MethodPost, "/auth/login", `{"username":"alice","password":"P@ss1234"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var result dto.AuthResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "a.b.c", result.Token)
}

func TestLoginEndpoint_Rejected(t *testing.T) {
	f := &fakeAuth{login: &dto.AuthResult{Message: services.MsgLoginFailed}}

	w, env := do(t, authRouter(f), http.MethodPost, "/auth/login", `{"username":"alice","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "AUTH_001", env.Error.Code)
	assert.Equal(t, services.MsgLoginFailed, env.Error.Message)
}

func TestLoginEndpoint_MissingPassword(t *testing.T) {
	w, env := do(t, authRouter(&fakeAuth{}), http.MethodPost, "/auth/login", `{"username":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", env.Error.Code)
	assert.Equal(t, "password", env.Error.Field)
}

func TestRegisterEndpoint(t *testing.T) {
	body := `{"username":"alice","email":"alice@school.edu","password":"P@ss1234","firstName":"Alice","lastName":"Smith"}`

	f := &fakeAuth{register: &dto.RegisterResult{Success: true, Message: services.MsgRegisterSucceeded}}
	w, env := do(t, authRouter(f), http.MethodPost, "/auth/register", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	f = &fakeAuth{register: &dto.RegisterResult{Message: services.MsgUserExists}}
	w, env = do(t, authRouter(f), http.MethodPost, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, services.MsgUserExists, env.Error.Message)

	f = &fakeAuth{register: &dto.RegisterResult{Message: services.MsgInvalidRole}}
	w, _ = do(t, authRouter(f), http.MethodPost, "/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, authRouter(f), http.MethodPost, "/auth/register", `{"username":"al","email":"bad","password":"1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", env.Error.Code)
}

func TestChangePasswordEndpoint(t *testing.T) {
	f := &fakeAuth{changed: true}
	w, env := do(t, authRouter(f), http.MethodPost, "/auth/change-password", `{"currentPassword":"old123","newPassword":"new123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, string(env.Data))
	assert.Equal(t, int64(7), f.lastUser)

	f = &fakeAuth{changed: false}
	w, env = do(t, authRouter(f), http.MethodPost, "/auth/change-password", `{"currentPassword":"wrong","newPassword":"new123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "AUTH_003", env.Error.Code)
}

func TestProfileAndVerifyEndpoints(t *testing.T) {
	w, env := do(t, authRouter(&fakeAuth{}), http.MethodGet, "/auth/profile", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var profile dto.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, int64(7), profile.ID)

	w, env = do(t, authRouter(&fakeAuth{err: apperrors.ErrUserNotFound}), http.MethodGet, "/auth/profile", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "USER_NOT_FOUND", env.Error.Code)

	w, env = do(t, authRouter(&fakeAuth{}), http.MethodGet, "/auth/verify", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var claims dto.TokenClaimsResponse
	require.NoError(t, json.Unmarshal(env.Data, &claims))
	assert.True(t, claims.Valid)
	assert.Equal(t, "tester", claims.Username)
}

// ---- students and enrollment

func studentRouter(students services.StudentService, enroll *fakeEnrollment, userID int64, role string) *gin.Engine {
	c := NewStudentController(students, enroll, fakeAccess{allowed: map[int64]int64{2: 10}}, zerolog.Nop())
	r := gin.New()
	r.GET("/students/:id", c.GetStudentByID)
	r.PUT("/students/:id", withUser(userID, role), c.UpdateStudent)
	r.POST("/students/enroll", withUser(userID, role), c.Enroll)
	return r
}

func TestEnrollEndpoint_Owner(t *testing.T) {
	enroll := &fakeEnrollment{}
	w, env := do(t, studentRouter(fakeStudents{}, enroll, 2, "Student"), http.MethodPost, "/students/enroll", `{"studentId":10,"courseIds":[1,4,7]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, string(env.Data))
	assert.Equal(t, int64(10), enroll.studentID)
	assert.Equal(t, []int64{1, 4, 7}, enroll.courseIDs)
}

func TestEnrollEndpoint_OtherStudentForbidden(t *testing.T) {
	enroll := &fakeEnrollment{}
	w, env := do(t, studentRouter(fakeStudents{}, enroll, 2, "Student"), http.MethodPost, "/students/enroll", `{"studentId":11,"courseIds":[1]}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "AUTH_009", env.Error.Code)
	assert.Equal(t, 0, enroll.calls)
}

func TestEnrollEndpoint_ReasonCodes(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.ErrTooManyCourses, http.StatusBadRequest, "TOO_MANY_COURSES"},
		{apperrors.ErrNoCoursesSelected, http.StatusBadRequest, "NO_COURSES_SELECTED"},
		{apperrors.ErrDuplicateProfessor, http.StatusBadRequest, "DUPLICATE_PROFESSOR"},
		{apperrors.ErrDuplicateEnrollment, http.StatusConflict, "DUPLICATE_ENROLLMENT"},
		{apperrors.ErrStudentNotFound, http.StatusNotFound, "STUDENT_NOT_FOUND"},
		{apperrors.ErrCourseNotFound, http.StatusNotFound, "COURSE_NOT_FOUND"},
		{errors.New("connection reset"), http.StatusInternalServerError, "SRV_001"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			enroll := &fakeEnrollment{err: tt.err}
			w, env := do(t, studentRouter(fakeStudents{}, enroll, 1, "Admin"), http.MethodPost, "/students/enroll", `{"studentId":10,"courseIds":[1]}`)

			assert.Equal(t, tt.status, w.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestEnrollEndpoint_BadBody(t *testing.T) {
	enroll := &fakeEnrollment{}
	w, env := do(t, studentRouter(fakeStudents{}, enroll, 1, "Admin"), http.MethodPost, "/students/enroll", `{"studentId":10,"courseIds":[0]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", env.Error.Code)
	assert.Equal(t, "courseIds", env.Error.Field)
	assert.Equal(t, 0, enroll.calls)
}

func TestGetStudentEndpoint(t *testing.T) {
	students := fakeStudents{student: &dto.StudentResponse{FirstName: "Alice", Courses: []dto.StudentCourseResponse{}}}

	w, env := do(t, studentRouter(students, &fakeEnrollment{}, 1, "Admin"), http.MethodGet, "/students/10", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var got dto.StudentResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, int64(10), got.ID)

	w, _ = do(t, studentRouter(students, &fakeEnrollment{}, 1, "Admin"), http.MethodGet, "/students/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	missing := fakeStudents{err: apperrors.ErrStudentNotFound}
	w, env = do(t, studentRouter(missing, &fakeEnrollment{}, 1, "Admin"), http.MethodGet, "/students/10", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "STUDENT_NOT_FOUND", env.Error.Code)
}

func TestUpdateStudentEndpoint(t *testing.T) {
	body := `{"firstName":"Alicia","lastName":"Smith","email":"alicia@school.edu"}`

	w, env := do(t, studentRouter(fakeStudents{}, &fakeEnrollment{}, 2, "Student"), http.MethodPut, "/students/10", body)
	assert.Equal(t, http.StatusOK, w.Code)
	var got dto.StudentResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Alicia", got.FirstName)

	w, _ = do(t, studentRouter(fakeStudents{}, &fakeEnrollment{}, 2, "Student"), http.MethodPut, "/students/11", body)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// ---- courses

func TestCreateCourseEndpoint(t *testing.T) {
	f := &fakeCourses{}
	c := NewCourseController(f)
	r := gin.New()
	r.POST("/courses", c.CreateCourse)
	r.GET("/courses/:id", c.GetCourseByID)

	w, env := do(t, r, http.MethodPost, "/courses", `{"name":"Algorithms","professorId":2}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, int64(2), f.created.ProfessorID)

	w, env = do(t, r, http.MethodPost, "/courses", `{"name":"Algorithms"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "professorId", env.Error.Field)

	f.err = apperrors.ErrProfessorNotFound
	w, env = do(t, r, http.MethodPost, "/courses", `{"name":"Algorithms","professorId":99}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PROFESSOR_NOT_FOUND", env.Error.Code)

	w, env = do(t, r, http.MethodGet, "/courses/5", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "COURSE_NOT_FOUND", env.Error.Code)
}

// ---- health

func TestHealthEndpoints(t *testing.T) {
	r := gin.New()
	healthy := NewHealthController(fakePinger{}, "1.0")
	down := NewHealthController(fakePinger{err: errors.New("no route to host")}, "1.0")
	r.GET("/health", healthy.Health)
	r.GET("/health-down", down.Health)
	r.GET("/info", healthy.Info)

	w, env := do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","database":"up"}`, string(env.Data))

	w, env = do(t, r, http.MethodGet, "/health-down", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.False(t, env.Success)

	w, env = do(t, r, http.MethodGet, "/info", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var info dto.InfoResponse
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.Equal(t, "1.0", info.Version)
}
