package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/app/services"
	"github.com/profilytics/backend/internal/middleware"
)

// ProfileController handles profile related operations
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile retrieves a profile by ID
// @Summary Get profile by ID
// @Description Retrieves a single profile with its education, experience and skill entries
// @Tags profiles
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileDetailResponse} "Profile retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profiles/{id} [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	profile, err := c.profileService.GetProfile(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile, "Profile retrieved successfully"))
}

// GetOwnProfile retrieves the authenticated user's profile
// @Summary Get own profile
// @Description Retrieves the profile of the authenticated user with its education, experience and skill entries
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileDetailResponse} "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /profiles/me [get]
func (c *ProfileController) GetOwnProfile(ctx *gin.Context) {
	userID := middleware.GetUserID(ctx)

	profile, err := c.profileService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile, "Profile retrieved successfully"))
}

// UpdateOwnProfile updates the authenticated user's profile
// @Summary Update own profile
// @Description Partially updates the authenticated user's profile; omitted fields keep their values
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Profile} "Profile updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /profiles/me [put]
func (c *ProfileController) UpdateOwnProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	profile, err := c.profileService.UpdateOwnProfile(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile, "Profile updated successfully"))
}

// AddEducation adds an education entry to the authenticated user's profile
// @Summary Add education entry
// @Description Adds an education entry to the authenticated user's profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddEducationRequest true "Education entry data"
// @Success 201 {object} dto.APIResponse{data=models.Education} "Education entry added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /profiles/me/education [post]
func (c *ProfileController) AddEducation(ctx *gin.Context) {
	var req dto.AddEducationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	education, err := c.profileService.AddEducation(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(education, "Education entry added successfully"))
}

// DeleteEducation removes an education entry from the authenticated user's profile
// @Summary Delete education entry
// @Description Removes one of the authenticated user's education entries
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Education entry ID"
// @Success 200 {object} dto.APIResponse "Education entry deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Education entry not found"
// @Router /profiles/me/education/{id} [delete]
func (c *ProfileController) DeleteEducation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.profileService.DeleteEducation(ctx, middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Education entry deleted successfully"))
}

// AddExperience adds a work experience entry to the authenticated user's profile
// @Summary Add experience entry
// @Description Adds a work experience entry to the authenticated user's profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddExperienceRequest true "Experience entry data"
// @Success 201 {object} dto.APIResponse{data=models.Experience} "Experience entry added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /profiles/me/experiences [post]
func (c *ProfileController) AddExperience(ctx *gin.Context) {
	var req dto.AddExperienceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	experience, err := c.profileService.AddExperience(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(experience, "Experience entry added successfully"))
}

// DeleteExperience removes an experience entry from the authenticated user's profile
// @Summary Delete experience entry
// @Description Removes one of the authenticated user's experience entries
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Experience entry ID"
// @Success 200 {object} dto.APIResponse "Experience entry deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Experience entry not found"
// @Router /profiles/me/experiences/{id} [delete]
func (c *ProfileController) DeleteExperience(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.profileService.DeleteExperience(ctx, middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Experience entry deleted successfully"))
}

// AddSkills attaches skills to the authenticated user's profile
// @Summary Add skills
// @Description Attaches the given skill names to the authenticated user's profile, creating catalog entries for new names
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddSkillsRequest true "Skill names"
// @Success 200 {object} dto.APIResponse{data=[]models.ProfileSkill} "Skills added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /profiles/me/skills [post]
func (c *ProfileController) AddSkills(ctx *gin.Context) {
	var req dto.AddSkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	skills, err := c.profileService.AddSkills(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(skills, "Skills added successfully"))
}

// RemoveSkill detaches a skill from the authenticated user's profile
// @Summary Remove skill
// @Description Detaches a skill from the authenticated user's profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param skillId path int true "Skill ID"
// @Success 200 {object} dto.APIResponse "Skill removed successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Skill not found"
// @Router /profiles/me/skills/{skillId} [delete]
func (c *ProfileController) RemoveSkill(ctx *gin.Context) {
	skillID, ok := parseIDParam(ctx, "skillId")
	if !ok {
		return
	}

	if err := c.profileService.RemoveSkill(ctx, middleware.GetUserID(ctx), skillID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Skill removed successfully"))
}
