package dto

import "time"

// UpdateProfileRequest represents profile update data.
// All fields are optional; omitted fields keep their current value.
type UpdateProfileRequest struct {
	FullName  *string `json:"fullName,omitempty"`
	Headline  *string `json:"headline,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Location  *string `json:"location,omitempty"`
	Website   *string `json:"website,omitempty" binding:"omitempty,url"`
	AvatarURL *string `json:"avatarUrl,omitempty" binding:"omitempty,url"`
	CoverURL  *string `json:"coverUrl,omitempty" binding:"omitempty,url"`
}

// AddEducationRequest represents data for adding an education entry
type AddEducationRequest struct {
	School      string     `json:"school" binding:"required"`
	Degree      string     `json:"degree" binding:"required"`
	Field       string     `json:"field" binding:"required"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description *string    `json:"description,omitempty"`
}

// AddExperienceRequest represents data for adding a work experience entry
type AddExperienceRequest struct {
	Title       string     `json:"title" binding:"required"`
	Company     string     `json:"company" binding:"required"`
	Location    *string    `json:"location,omitempty"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description *string    `json:"description,omitempty"`
}

// AddSkillsRequest carries the skill names to attach to the acting profile
type AddSkillsRequest struct {
	Skills []string `json:"skills" binding:"required,min=1,dive,required"`
}

// ProfileDetailResponse bundles a profile with its career details
type ProfileDetailResponse struct {
	Profile     interface{} `json:"profile"`
	Experiences interface{} `json:"experiences"`
	Education   interface{} `json:"education"`
	Skills      interface{} `json:"skills"`
}
