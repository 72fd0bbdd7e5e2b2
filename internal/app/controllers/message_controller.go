package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/app/services"
	"github.com/profilytics/backend/internal/middleware"
)

// MessageController handles direct and community messaging
type MessageController struct {
	messageService services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}

// GetDirectConversation returns the direct history with a peer
// @Summary Get direct conversation
// @Description Retrieves the full direct message history between the authenticated user and a peer, oldest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param peerId path int true "Peer profile ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Message} "Messages retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /messages/direct/{peerId} [get]
func (c *MessageController) GetDirectConversation(ctx *gin.Context) {
	peerID, ok := parseIDParam(ctx, "peerId")
	if !ok {
		return
	}

	messages, err := c.messageService.GetDirectConversation(ctx, middleware.GetUserID(ctx), peerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages, "Messages retrieved successfully"))
}

// SendDirectMessage sends a direct message
// @Summary Send a direct message
// @Description Persists a direct message and notifies websocket subscribers of the conversation
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param peerId path int true "Receiver profile ID"
// @Param request body dto.SendMessageRequest true "Message content"
// @Success 201 {object} dto.APIResponse{data=models.Message} "Message sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /messages/direct/{peerId} [post]
func (c *MessageController) SendDirectMessage(ctx *gin.Context) {
	peerID, ok := parseIDParam(ctx, "peerId")
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	message, err := c.messageService.SendDirectMessage(ctx, middleware.GetUserID(ctx), peerID, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message, "Message sent"))
}

// GetCommunityConversation returns a community's history
// @Summary Get community conversation
// @Description Retrieves the community message history, oldest first; requires approved membership with messaging enabled
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param communityId path int true "Community ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Message} "Messages retrieved successfully"
// @Failure 403 {object} dto.ErrorResponse "Messaging not enabled for this membership"
// @Failure 404 {object} dto.ErrorResponse "Not a member"
// @Router /messages/community/{communityId} [get]
func (c *MessageController) GetCommunityConversation(ctx *gin.Context) {
	communityID, ok := parseIDParam(ctx, "communityId")
	if !ok {
		return
	}

	messages, err := c.messageService.GetCommunityConversation(ctx, middleware.GetUserID(ctx), communityID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages, "Messages retrieved successfully"))
}

// SendCommunityMessage sends a message to a community
// @Summary Send a community message
// @Description Persists a community message and notifies websocket subscribers; requires approved membership with messaging enabled
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param communityId path int true "Community ID"
// @Param request body dto.SendMessageRequest true "Message content"
// @Success 201 {object} dto.APIResponse{data=models.Message} "Message sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Messaging not enabled for this membership"
// @Failure 404 {object} dto.ErrorResponse "Not a member"
// @Router /messages/community/{communityId} [post]
func (c *MessageController) SendCommunityMessage(ctx *gin.Context) {
	communityID, ok := parseIDParam(ctx, "communityId")
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	message, err := c.messageService.SendCommunityMessage(ctx, middleware.GetUserID(ctx), communityID, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message, "Message sent"))
}

// MarkRead marks a direct message as read
// @Summary Mark a message as read
// @Description Marks a direct message as read; only the receiver may do so
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.APIResponse "Message marked as read"
// @Failure 404 {object} dto.ErrorResponse "Message not found or not addressed to the caller"
// @Router /messages/{id}/read [put]
func (c *MessageController) MarkRead(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.messageService.MarkRead(ctx, middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Message marked as read"))
}
