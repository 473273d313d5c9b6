package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/app/models/dto"
	"github.com/yigit/studentreg/internal/pkg/apperrors"
	"github.com/yigit/studentreg/internal/pkg/auth"
)

// Messages returned in AuthResult / RegisterResult
const (
	MsgLoginFailed          = "incorrect username or password"
	MsgLoginSucceeded       = "login successful"
	MsgRegisterSucceeded    = "registration successful"
	MsgUserExists           = "username or email already exists"
	MsgInvalidRole          = "invalid role, expected Student, Professor or Admin"
	MsgPasswordRequired     = "password cannot be empty"
	MsgStudentEmailTaken    = "a student with this email already exists"
	MsgStudentCodeExhausted = "could not allocate a student code, try again"
)

// TokenIssuer signs session tokens for authenticated users
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, time.Time, error)
}

// AuthService handles authentication operations
type AuthService struct {
	tx       Transactor
	users    UserStore
	students StudentStore
	codes    *StudentCodeGenerator
	hasher   auth.PasswordHasher
	tokens   TokenIssuer
	logger   zerolog.Logger
	now      func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(
	tx Transactor,
	users UserStore,
	students StudentStore,
	codes *StudentCodeGenerator,
	hasher auth.PasswordHasher,
	tokens TokenIssuer,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		tx:       tx,
		users:    users,
		students: students,
		codes:    codes,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

// Login verifies credentials of an active user and issues a token.
// Unknown usernames and wrong passwords produce the same rejection.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResult, error) {
	rejected := &dto.AuthResult{Authenticated: false, Message: MsgLoginFailed}

	user, err := s.users.GetActiveByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Info().Str("username", req.Username).Msg("Login failed")
			return rejected, nil
		}
		return nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, req.Password) {
		s.logger.Info().Str("username", req.Username).Msg("Login failed")
		return rejected, nil
	}

	now := s.now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	token, expiresAt, err := s.tokens.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to issue token")
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return &dto.AuthResult{
		Authenticated: true,
		User:          dto.NewUserResponse(user),
		Message:       MsgLoginSucceeded,
		Token:         token,
		TokenType:     "Bearer",
		ExpiresAt:     &expiresAt,
	}, nil
}

// Register creates a user account. Student accounts get a companion student
// record, created in the same transaction and linked through StudentID.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResult, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if strings.TrimSpace(req.Password) == "" {
		return &dto.RegisterResult{Message: MsgPasswordRequired}, nil
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		return &dto.RegisterResult{Message: MsgInvalidRole}, nil
	}

	exists, err := s.users.UsernameOrEmailExists(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return &dto.RegisterResult{Message: MsgUserExists}, nil
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         role,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if role == models.RoleStudent {
			student, err := s.createCompanionStudent(ctx, user)
			if err != nil {
				return err
			}
			user.StudentID = &student.ID
		}
		_, err := s.users.Create(ctx, user)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserExists):
			return &dto.RegisterResult{Message: MsgUserExists}, nil
		case errors.Is(err, apperrors.ErrStudentEmailExists):
			return &dto.RegisterResult{Message: MsgStudentEmailTaken}, nil
		case errors.Is(err, apperrors.ErrStudentCodeExhausted):
			return &dto.RegisterResult{Message: MsgStudentCodeExhausted}, nil
		}
		s.logger.Error().Err(err).Str("username", username).Msg("Registration failed")
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(role)).Msg("User registered")
	return &dto.RegisterResult{
		Success: true,
		User:    dto.NewUserResponse(user),
		Message: MsgRegisterSucceeded,
	}, nil
}

func (s *AuthService) createCompanionStudent(ctx context.Context, user *models.User) (*models.Student, error) {
	code, err := s.codes.Generate(ctx)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Email:            user.Email,
		StudentCode:      code,
		RegistrationDate: user.CreatedAt,
	}
	if _, err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// ChangePassword replaces the password of userID when currentPassword matches.
// It reports false for an unknown user, a wrong current password or an empty new password.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req dto.ChangePasswordRequest) (bool, error) {
	if strings.TrimSpace(req.NewPassword) == "" {
		return false, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	if !s.hasher.Verify(user.PasswordHash, req.CurrentPassword) {
		return false, nil
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return false, err
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return false, err
	}

	s.logger.Info().Int64("userID", userID).Msg("Password changed")
	return true, nil
}

// GetProfile returns the public view of a user
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}
