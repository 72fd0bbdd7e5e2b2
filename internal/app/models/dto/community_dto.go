package dto

// CreateCommunityRequest represents data for creating a community.
// External communities must carry a link, private ones a college name; these
// cross-field rules are checked in the service.
type CreateCommunityRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	CommunityType string  `json:"communityType" binding:"required,oneof=public private external"`
	Link          *string `json:"link,omitempty" binding:"omitempty,url"`
	CollegeName   *string `json:"collegeName,omitempty"`
}

// UpdateCommunityRequest represents data for editing a community
type UpdateCommunityRequest = CreateCommunityRequest
