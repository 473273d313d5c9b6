package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/pkg/apperrors"
	"github.com/yigit/studentreg/internal/pkg/logger"
)

// Authorization errors
var (
	ErrNotStudentOwner = apperrors.NewCustomError(apperrors.ErrPermissionDenied, "you can only manage your own student record")
	ErrAccountInactive = apperrors.NewCustomError(apperrors.ErrPermissionDenied, "account is inactive")
)

// UserLookup loads users by id
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthorizationService decides what an authenticated user may do. It reads
// the user from the store, so a role change or deactivation applies before
// the token expires.
type AuthorizationService struct {
	users UserLookup
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(users UserLookup) *AuthorizationService {
	return &AuthorizationService{users: users}
}

// GetUserInfo returns the active user behind userID
func (s *AuthorizationService) GetUserInfo(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting user by ID in GetUserInfo")
		return nil, fmt.Errorf("failed to get user information: %w", err)
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}
	return user, nil
}

// IsAdmin checks if the user is an administrator
func (s *AuthorizationService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	user, err := s.GetUserInfo(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}

// CanManageStudent reports whether userID may enroll or edit studentID:
// admins may manage anyone, students only their linked record.
func (s *AuthorizationService) CanManageStudent(ctx context.Context, userID, studentID int64) (bool, error) {
	user, err := s.GetUserInfo(ctx, userID)
	if err != nil {
		return false, err
	}

	switch user.Role {
	case models.RoleAdmin:
		return true, nil
	case models.RoleStudent:
		return user.StudentID != nil && *user.StudentID == studentID, nil
	default:
		return false, nil
	}
}

// ValidateStudentAccess returns a permission error unless CanManageStudent holds
func (s *AuthorizationService) ValidateStudentAccess(ctx context.Context, userID, studentID int64) error {
	ok, err := s.CanManageStudent(ctx, userID, studentID)
	if err != nil {
		return err
	}
	if !ok {
		logger.Warn().Int64("userID", userID).Int64("studentID", studentID).Msg("Student access denied")
		return ErrNotStudentOwner
	}
	return nil
}
