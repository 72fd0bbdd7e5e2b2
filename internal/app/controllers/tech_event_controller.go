package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/app/services"
	"github.com/profilytics/backend/internal/middleware"
	"github.com/profilytics/backend/internal/pkg/helpers"
)

// TechEventController handles tech event related operations
type TechEventController struct {
	eventService services.TechEventService
}

// NewTechEventController creates a new TechEventController
func NewTechEventController(eventService services.TechEventService) *TechEventController {
	return &TechEventController{eventService: eventService}
}

// GetTechEvents lists tech events
// @Summary List tech events
// @Description Retrieves tech events ordered by event date, with search and pagination
// @Tags events
// @Produce json
// @Param search query string false "Filter by title, type, description or location"
// @Param page query int false "Page number (default: 1)"
// @Param size query int false "Page size (default: 10)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Events retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [get]
func (c *TechEventController) GetTechEvents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	response, err := c.eventService.GetTechEvents(ctx, ctx.Query("search"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response, "Events retrieved successfully"))
}

// GetTechEvent retrieves a tech event by ID
// @Summary Get tech event by ID
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=models.TechEvent} "Event retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *TechEventController) GetTechEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.GetTechEvent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event, "Event retrieved successfully"))
}

// CreateTechEvent creates a tech event
// @Summary Create a tech event
// @Description Creates an event on behalf of the authenticated user; paid events must carry a ticket price
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTechEventRequest true "Event data"
// @Success 201 {object} dto.APIResponse{data=models.TechEvent} "Event created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /events [post]
func (c *TechEventController) CreateTechEvent(ctx *gin.Context) {
	var req dto.CreateTechEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	event, err := c.eventService.CreateTechEvent(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event, "Event created successfully"))
}

// UpdateTechEvent edits a tech event
// @Summary Update a tech event
// @Description Updates an event; only the organizer may edit
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.UpdateTechEventRequest true "Event data"
// @Success 200 {object} dto.APIResponse{data=models.TechEvent} "Event updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [put]
func (c *TechEventController) UpdateTechEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTechEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	event, err := c.eventService.UpdateTechEvent(ctx, middleware.GetUserID(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event, "Event updated successfully"))
}

// DeleteTechEvent removes a tech event
// @Summary Delete a tech event
// @Description Deletes an event; only the organizer may delete
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse "Event deleted successfully"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func (c *TechEventController) DeleteTechEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.DeleteTechEvent(ctx, middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Event deleted successfully"))
}
