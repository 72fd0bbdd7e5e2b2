package dto

import "time"

// CreateHackathonRequest represents data for publishing a hackathon
type CreateHackathonRequest struct {
	Title                string     `json:"title" binding:"required"`
	Description          string     `json:"description" binding:"required"`
	StartDate            time.Time  `json:"startDate" binding:"required"`
	EndDate              time.Time  `json:"endDate" binding:"required,gtefield=StartDate"`
	Location             *string    `json:"location,omitempty"`
	IsOnline             bool       `json:"isOnline"`
	MaxTeamSize          *int64     `json:"maxTeamSize,omitempty" binding:"omitempty,min=1"`
	PrizePool            *string    `json:"prizePool,omitempty"`
	Requirements         *string    `json:"requirements,omitempty"`
	Link                 *string    `json:"link,omitempty" binding:"omitempty,url"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty"`
}

// UpdateHackathonRequest represents data for editing a hackathon
type UpdateHackathonRequest = CreateHackathonRequest
