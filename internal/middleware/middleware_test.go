package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
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
	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/app/models/dto"
	"github.com/yigit/studentreg/internal/pkg/apperrors"
	"github.com/yigit/studentreg/internal/pkg/auth"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	RegisterValidation()
	os.Exit(m.Run())
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Field   string          `json:"field"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

type stubValidator struct {
	claims *auth.Claims
	err    error
}

func (s stubValidator) ValidateToken(string) (*auth.Claims, error) { return s.claims, s.err }

func protectedRouter(v TokenValidator, roles ...string) *gin.Engine {
	m := NewAuthMiddleware(v)
	r := gin.New()
	handlers := []gin.HandlerFunc{m.JWTAuth()}
	if len(roles) > 0 {
		handlers = append(handlers, m.RoleRequired(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := GetUserID(c)
		studentID, hasStudent := c.Get(ContextKeyStudentID)
		c.JSON(http.StatusOK, gin.H{
			"userId":     id,
			"role":       c.GetString(ContextKeyRole),
			"hasStudent": hasStudent,
			"studentId":  studentID,
		})
	})
	r.GET("/private", handlers...)
	return r
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	w := httptest.NewRecorder()
	protectedRouter(stubValidator{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_008", decodeError(t, w).Error.Code)
}

func TestJWTAuth_BadFormat(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	protectedRouter(stubValidator{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer a.b.c")
	w := httptest.NewRecorder()
	protectedRouter(stubValidator{err: apperrors.ErrTokenExpired}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_006", decodeError(t, w).Error.Code)
}

func TestJWTAuth_RealTokenSetsContext(t *testing.T) {
	jwtSvc := auth.NewJWTService(auth.JWTConfig{SecretKey: "mw-secret", AccessTokenExp: time.Minute, TokenIssuer: "studentreg.test"})
	studentID := int64(5)
	token, _, err := jwtSvc.GenerateToken(&models.User{ID: 9, Username: "alice", Role: models.RoleStudent, StudentID: &studentID})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	protectedRouter(jwtSvc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		UserID     int64  `json:"userId"`
		Role       string `json:"role"`
		HasStudent bool   `json:"hasStudent"`
		StudentID  int64  `json:"studentId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(9), body.UserID)
	assert.Equal(t, "Student", body.Role)
	assert.True(t, body.HasStudent)
	assert.Equal(t, int64(5), body.StudentID)
}

func TestJWTAuth_TokenQueryParameter(t *testing.T) {
	v := stubValidator{claims: &auth.Claims{UserID: 3, Role: "Admin"}}
	w := httptest.NewRecorder()
	protectedRouter(v).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private?token=a.b.c", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleRequired(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{role: "Admin", want: http.StatusOK},
		{role: "Student", want: http.StatusForbidden},
		{role: "Professor", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			v := stubValidator{claims: &auth.Claims{UserID: 1, Role: tt.role}}
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			req.Header.Set("Authorization", "Bearer a.b.c")
			w := httptest.NewRecorder()
			protectedRouter(v, "Admin").ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	missing := apperrors.NewCustomError(apperrors.ErrCourseNotFound, "course not found").
		WithCode(apperrors.CodeCourseNotFound).
		WithDetails(map[string]interface{}{"missingCourseIds": []int64{9}})

	tests := []struct {
		name     string
		err      error
		status   int
		code     string
		message  string
		hasExtra bool
	}{
		{"too many", apperrors.ErrTooManyCourses, http.StatusBadRequest, "TOO_MANY_COURSES", "cannot enroll in more than 3 courses", false},
		{"wrapped duplicate professor", fmt.Errorf("enroll: %w", apperrors.ErrDuplicateProfessor), http.StatusBadRequest, "DUPLICATE_PROFESSOR", "cannot take two courses with the same professor", false},
		{"student missing", apperrors.ErrStudentNotFound, http.StatusNotFound, "STUDENT_NOT_FOUND", "student not found", false},
		{"course missing with details", missing, http.StatusNotFound, "COURSE_NOT_FOUND", "course not found", true},
		{"repeated course", apperrors.ErrDuplicateEnrollment, http.StatusConflict, "DUPLICATE_ENROLLMENT", "a course is listed more than once", false},
		{"generic conflict", apperrors.NewConflictError("taken"), http.StatusConflict, "RES_002", "taken", false},
		{"forbidden", apperrors.NewForbiddenError("not yours"), http.StatusForbidden, "AUTH_009", "not yours", false},
		{"code exhausted", apperrors.ErrStudentCodeExhausted, http.StatusServiceUnavailable, "STUDENT_CODE_EXHAUSTED", "could not generate a unique student code", false},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, "SRV_001", "Internal server error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			body := decodeError(t, w)
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.message, body.Error.Message)
			if tt.hasExtra {
				assert.JSONEq(t, `{"missingCourseIds":[9]}`, string(body.Error.Details))
			}
		})
	}
}

type bindTarget struct {
	StudentID int64   `json:"studentId" binding:"required,gt=0"`
	CourseIDs []int64 `json:"courseIds" binding:"required,dive,gt=0"`
}

func bindRouter() *gin.Engine {
	r := gin.New()
	r.POST("/bind", func(c *gin.Context) {
		var req bindTarget
		if !BindJSON(c, &req) {
			return
		}
		c.JSON(http.StatusOK, req)
	})
	return r
}

func TestBindJSON_FieldErrorsUseJSONNames(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(`{"studentId":0,"courseIds":[1]}`))
	req.Header.Set("Content-Type", "application/json")
	bindRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "VAL_001", body.Error.Code)
	assert.Equal(t, "studentId", body.Error.Field)
}

func TestBindJSON_Malformed(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(`{"studentId":`))
	req.Header.Set("Content-Type", "application/json")
	bindRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", decodeError(t, w).Error.Code)
}

func TestBindJSON_Valid(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(`{"studentId":4,"courseIds":[1,2]}`))
	req.Header.Set("Content-Type", "application/json")
	bindRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBindJSON_CustomRules(t *testing.T) {
	r := gin.New()
	r.POST("/register", func(c *gin.Context) {
		var req dto.RegisterRequest
		if !BindJSON(c, &req) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"blank first name", `{"username":"alice","email":"a@b.edu","password":"secret1","firstName":"   ","lastName":"Smith"}`, "firstName"},
		{"username with spaces", `{"username":"al ice","email":"a@b.edu","password":"secret1","firstName":"Alice","lastName":"Smith"}`, "username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.field, decodeError(t, w).Error.Field)
		})
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(
		`{"username":"alice.s","email":"a@b.edu","password":"secret1","firstName":"Alice","lastName":"Smith"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/missing", line["path"])
	assert.Equal(t, float64(404), line["status"])
}
