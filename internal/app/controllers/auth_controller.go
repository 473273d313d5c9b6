// Package controllers handles HTTP request handling
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/studentreg/internal/app/models/dto"
	"github.com/yigit/studentreg/internal/app/services"
	"github.com/yigit/studentreg/internal/middleware"
)

// Authenticator is the part of services.AuthService the controller uses
type Authenticator interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResult, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResult, error)
	ChangePassword(ctx context.Context, userID int64, req dto.ChangePasswordRequest) (bool, error)
	GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

var _ Authenticator = (*services.AuthService)(nil)

// AuthController handles authentication related operations
type AuthController struct {
	authService Authenticator
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService Authenticator, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// rejection carries a business result alongside an error detail
func rejection(data interface{}, detail *dto.ErrorDetail) dto.APIResponse {
	return dto.APIResponse{
		Success:   false,
		Data:      data,
		Error:     detail,
		Timestamp: time.Now(),
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a user account. Student accounts also get a student record with a generated student code. No token is issued; log in afterwards.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResult} "User registered"
// @Failure 400 {object} dto.APIResponse{data=dto.RegisterResult} "Invalid request or role"
// @Failure 409 {object} dto.APIResponse{data=dto.RegisterResult} "Username or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		c.logger.Warn().Msg("Invalid registration request payload")
		return
	}

	result, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		c.logger.Error().Err(err).Str("username", req.Username).Msg("Failed to register user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !result.Success {
		status, code := http.StatusBadRequest, dto.ErrorCodeValidationFailed
		switch result.Message {
		case services.MsgUserExists, services.MsgStudentEmailTaken:
			status, code = http.StatusConflict, dto.ErrorCodeResourceAlreadyExists
		case services.MsgStudentCodeExhausted:
			status, code = http.StatusServiceUnavailable, dto.ErrorCodeInternalServer
		}
		c.logger.Info().Str("username", req.Username).Str("reason", result.Message).Msg("Registration rejected")
		ctx.JSON(status, rejection(result, dto.NewErrorDetail(code, result.Message)))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(result))
}

// Login handles user login
// @Summary User login
// @Description Verifies username and password of an active account and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResult} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.APIResponse{data=dto.AuthResult} "Incorrect username or password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !result.Authenticated {
		ctx.JSON(http.StatusUnauthorized, rejection(result, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, result.Message)))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// GetProfile returns the logged-in user
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /auth/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	profile, err := c.authService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// ChangePassword replaces the logged-in user's password
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.APIResponse{data=dto.OKResponse} "Password changed"
// @Failure 400 {object} dto.ErrorResponse "Current password incorrect or new password invalid"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/change-password [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.ChangePasswordRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	changed, err := c.authService.ChangePassword(ctx.Request.Context(), userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !changed {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidPassword, "Password could not be changed").
			WithDetails("Current password is incorrect or the new password is invalid")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.logger.Info().Int64("userID", userID).Msg("Password changed via API")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.OKResponse{OK: true}))
}

// VerifyToken echoes the claims of the bearer token
// @Summary Verify token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.TokenClaimsResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Router /auth/verify [get]
func (c *AuthController) VerifyToken(ctx *gin.Context) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
		return
	}

	resp := dto.TokenClaimsResponse{
		Valid:     true,
		UserID:    claims.UserID,
		Username:  claims.Username,
		Email:     claims.Email,
		Role:      claims.Role,
		StudentID: claims.StudentID,
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
