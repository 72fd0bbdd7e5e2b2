package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/app/services"
	"github.com/profilytics/backend/internal/middleware"
	"github.com/profilytics/backend/internal/pkg/helpers"
)

// HackathonController handles hackathon related operations
type HackathonController struct {
	hackathonService services.HackathonService
}

// NewHackathonController creates a new HackathonController
func NewHackathonController(hackathonService services.HackathonService) *HackathonController {
	return &HackathonController{hackathonService: hackathonService}
}

// GetHackathons lists hackathons
// @Summary List hackathons
// @Description Retrieves hackathons ordered by start date, with search and pagination
// @Tags hackathons
// @Produce json
// @Param search query string false "Filter by title, description or location"
// @Param page query int false "Page number (default: 1)"
// @Param size query int false "Page size (default: 10)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Hackathons retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hackathons [get]
func (c *HackathonController) GetHackathons(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	response, err := c.hackathonService.GetHackathons(ctx, ctx.Query("search"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response, "Hackathons retrieved successfully"))
}

// GetHackathon retrieves a hackathon by ID
// @Summary Get hackathon by ID
// @Tags hackathons
// @Produce json
// @Param id path int true "Hackathon ID"
// @Success 200 {object} dto.APIResponse{data=models.Hackathon} "Hackathon retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Hackathon not found"
// @Router /hackathons/{id} [get]
func (c *HackathonController) GetHackathon(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	hackathon, err := c.hackathonService.GetHackathon(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hackathon, "Hackathon retrieved successfully"))
}

// CreateHackathon creates a hackathon
// @Summary Create a hackathon
// @Description Creates a hackathon on behalf of the authenticated user; the end date must not precede the start date
// @Tags hackathons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateHackathonRequest true "Hackathon data"
// @Success 201 {object} dto.APIResponse{data=models.Hackathon} "Hackathon created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /hackathons [post]
func (c *HackathonController) CreateHackathon(ctx *gin.Context) {
	var req dto.CreateHackathonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	hackathon, err := c.hackathonService.CreateHackathon(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(hackathon, "Hackathon created successfully"))
}

// UpdateHackathon edits a hackathon
// @Summary Update a hackathon
// @Description Updates a hackathon; only the organizer may edit
// @Tags hackathons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hackathon ID"
// @Param request body dto.UpdateHackathonRequest true "Hackathon data"
// @Success 200 {object} dto.APIResponse{data=models.Hackathon} "Hackathon updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Hackathon not found"
// @Router /hackathons/{id} [put]
func (c *HackathonController) UpdateHackathon(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateHackathonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	hackathon, err := c.hackathonService.UpdateHackathon(ctx, middleware.GetUserID(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hackathon, "Hackathon updated successfully"))
}

// DeleteHackathon removes a hackathon
// @Summary Delete a hackathon
// @Description Deletes a hackathon; only the organizer may delete
// @Tags hackathons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hackathon ID"
// @Success 200 {object} dto.APIResponse "Hackathon deleted successfully"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Hackathon not found"
// @Router /hackathons/{id} [delete]
func (c *HackathonController) DeleteHackathon(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.hackathonService.DeleteHackathon(ctx, middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Hackathon deleted successfully"))
}
