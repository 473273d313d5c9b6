package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentreg/internal/app/models/dto"
	"github.com/yigit/studentreg/internal/app/services"
	"github.com/yigit/studentreg/internal/middleware"
	"github.com/yigit/studentreg/internal/pkg/helpers"
)

// ProfessorController handles professor endpoints
type ProfessorController struct {
	professorService services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService services.ProfessorService) *ProfessorController {
	return &ProfessorController{professorService: professorService}
}

// GetAllProfessors lists professors with their courses
// @Summary List professors
// @Tags professors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ProfessorResponse}
// @Router /professors [get]
func (c *ProfessorController) GetAllProfessors(ctx *gin.Context) {
	professors, err := c.professorService.GetAllProfessors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(professors))
}

// GetProfessorByID retrieves a professor
// @Summary Get professor
// @Tags professors
// @Produce json
// @Param id path int true "Professor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ProfessorResponse}
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id} [get]
func (c *ProfessorController) GetProfessorByID(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	professor, err := c.professorService.GetProfessorByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(professor))
}

// CreateProfessor adds a professor
// @Summary Create professor
// @Tags professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProfessorRequest true "Professor"
// @Success 201 {object} dto.APIResponse{data=dto.ProfessorResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /professors [post]
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	professor, err := c.professorService.CreateProfessor(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(professor))
}

// DeleteProfessor removes a professor without courses
// @Summary Delete professor
// @Tags professors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Professor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.OKResponse}
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 409 {object} dto.ErrorResponse "Professor still has courses"
// @Router /professors/{id} [delete]
func (c *ProfessorController) DeleteProfessor(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.professorService.DeleteProfessor(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.OKResponse{OK: true}))
}
