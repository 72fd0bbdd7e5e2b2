package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/app/services"
	"github.com/profilytics/backend/internal/middleware"
	"github.com/profilytics/backend/internal/pkg/helpers"
)

// CommunityController handles community and membership operations
type CommunityController struct {
	communityService services.CommunityService
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService services.CommunityService) *CommunityController {
	return &CommunityController{communityService: communityService}
}

// GetCommunities lists communities
// @Summary List communities
// @Description Retrieves communities with approved member counts, search and pagination
// @Tags communities
// @Produce json
// @Param search query string false "Filter by name, description or college name"
// @Param page query int false "Page number (default: 1)"
// @Param size query int false "Page size (default: 10)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Communities retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communities [get]
func (c *CommunityController) GetCommunities(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	response, err := c.communityService.GetCommunities(ctx, ctx.Query("search"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response, "Communities retrieved successfully"))
}

// GetCommunity retrieves a community by ID
// @Summary Get community by ID
// @Tags communities
// @Produce json
// @Param id path int true "Community ID"
// @Success 200 {object} dto.APIResponse{data=models.Community} "Community retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Router /communities/{id} [get]
func (c *CommunityController) GetCommunity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	community, err := c.communityService.GetCommunity(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(community, "Community retrieved successfully"))
}

// CreateCommunity creates a community
// @Summary Create a community
// @Description Creates a community; external communities need a link, private ones a college name
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCommunityRequest true "Community data"
// @Success 201 {object} dto.APIResponse{data=models.Community} "Community created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /communities [post]
func (c *CommunityController) CreateCommunity(ctx *gin.Context) {
	var req dto.CreateCommunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	community, err := c.communityService.CreateCommunity(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(community, "Community created successfully"))
}

// UpdateCommunity edits a community
// @Summary Update a community
// @Description Updates a community; only the creator may edit
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Param request body dto.UpdateCommunityRequest true "Community data"
// @Success 200 {object} dto.APIResponse{data=models.Community} "Community updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Router /communities/{id} [put]
func (c *CommunityController) UpdateCommunity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	community, err := c.communityService.UpdateCommunity(ctx, middleware.GetUserID(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(community, "Community updated successfully"))
}

// DeleteCommunity removes a community
// @Summary Delete a community
// @Description Deletes a community; only the creator may delete
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Success 200 {object} dto.APIResponse "Community deleted successfully"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Router /communities/{id} [delete]
func (c *CommunityController) DeleteCommunity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.communityService.DeleteCommunity(ctx, middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Community deleted successfully"))
}

// RequestJoin files a join request
// @Summary Request to join a community
// @Description Files a pending join request for the authenticated user
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Success 201 {object} dto.APIResponse{data=models.CommunityMember} "Join request sent"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Failure 409 {object} dto.ErrorResponse "Already requested or already a member"
// @Router /communities/{id}/members [post]
func (c *CommunityController) RequestJoin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	member, err := c.communityService.RequestJoin(ctx, middleware.GetUserID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(member, "Join request sent"))
}

// GetMembers lists community members
// @Summary List community members
// @Description Retrieves membership rows of a community, including pending requests, with member profiles
// @Tags communities
// @Produce json
// @Param id path int true "Community ID"
// @Success 200 {object} dto.APIResponse{data=[]models.CommunityMember} "Members retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Router /communities/{id}/members [get]
func (c *CommunityController) GetMembers(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	members, err := c.communityService.GetMembers(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(members, "Members retrieved successfully"))
}

// ApproveMember approves a pending join request
// @Summary Approve a join request
// @Description Approves a pending request; only the creator may approve. Approval also enables messaging.
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Param profileId path int true "Profile ID of the requester"
// @Success 200 {object} dto.APIResponse "Member approved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Community or request not found"
// @Router /communities/{id}/members/{profileId}/approve [put]
func (c *CommunityController) ApproveMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	profileID, ok := parseIDParam(ctx, "profileId")
	if !ok {
		return
	}

	if err := c.communityService.ApproveMember(ctx, middleware.GetUserID(ctx), id, profileID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Member approved"))
}

// RemoveMember rejects a request or removes a member
// @Summary Remove a member
// @Description Deletes a membership row; the creator may remove anyone, a member may leave
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Param profileId path int true "Profile ID of the member"
// @Success 200 {object} dto.APIResponse "Member removed"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Community or membership not found"
// @Router /communities/{id}/members/{profileId} [delete]
func (c *CommunityController) RemoveMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	profileID, ok := parseIDParam(ctx, "profileId")
	if !ok {
		return
	}

	if err := c.communityService.RemoveMember(ctx, middleware.GetUserID(ctx), id, profileID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Member removed"))
}
