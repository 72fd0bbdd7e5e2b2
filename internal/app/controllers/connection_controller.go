package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/app/services"
	"github.com/profilytics/backend/internal/middleware"
)

// ConnectionController handles connection graph operations
type ConnectionController struct {
	connectionService services.ConnectionService
}

// NewConnectionController creates a new ConnectionController
func NewConnectionController(connectionService services.ConnectionService) *ConnectionController {
	return &ConnectionController{connectionService: connectionService}
}

// GetConnections lists the caller's connections
// @Summary List connections
// @Description Retrieves all connections of the authenticated user in either direction, with peer profiles
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Connection} "Connections retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /connections [get]
func (c *ConnectionController) GetConnections(ctx *gin.Context) {
	connections, err := c.connectionService.GetConnections(ctx, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(connections, "Connections retrieved successfully"))
}

// RequestConnection sends a connection request
// @Summary Request a connection
// @Description Sends a pending connection request from the authenticated user
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateConnectionRequest true "Addressee"
// @Success 201 {object} dto.APIResponse{data=models.Connection} "Connection requested"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or self connection"
// @Failure 404 {object} dto.ErrorResponse "Addressee profile not found"
// @Failure 409 {object} dto.ErrorResponse "Connection already exists"
// @Router /connections [post]
func (c *ConnectionController) RequestConnection(ctx *gin.Context) {
	var req dto.CreateConnectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	connection, err := c.connectionService.RequestConnection(ctx, middleware.GetUserID(ctx), req.AddresseeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(connection, "Connection requested"))
}

// RespondToConnection accepts or rejects a pending request
// @Summary Respond to a connection request
// @Description Accepts or rejects the pending request from the given requester; only the addressee may respond
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requesterId path int true "Profile ID of the requester"
// @Param request body dto.RespondConnectionRequest true "accepted or rejected"
// @Success 200 {object} dto.APIResponse "Connection updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "No pending request from this profile"
// @Router /connections/{requesterId} [put]
func (c *ConnectionController) RespondToConnection(ctx *gin.Context) {
	requesterID, ok := parseIDParam(ctx, "requesterId")
	if !ok {
		return
	}

	var req dto.RespondConnectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	err := c.connectionService.RespondToConnection(ctx, middleware.GetUserID(ctx), requesterID, models.ConnectionStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Connection updated"))
}
