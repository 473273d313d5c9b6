package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentreg/internal/app/models/dto"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves liveness and API information
type HealthController struct {
	db      Pinger
	version string
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

// Health reports service and database status
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse}
// @Failure 503 {object} dto.APIResponse{data=dto.HealthResponse}
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		resp := dto.NewSuccessResponse(dto.HealthResponse{Status: "degraded", Database: "down"})
		resp.Success = false
		ctx.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{Status: "healthy", Database: "up"}))
}

// Info describes the API
// @Summary API information
// @Tags system
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.InfoResponse}
// @Router /info [get]
func (c *HealthController) Info(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.InfoResponse{
		Name:    "Student Registration API",
		Version: c.version,
		Endpoints: []string{
			"/api/v1/auth",
			"/api/v1/students",
			"/api/v1/courses",
			"/api/v1/professors",
			"/swagger/index.html",
		},
	}))
}
