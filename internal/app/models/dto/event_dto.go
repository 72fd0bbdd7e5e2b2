package dto

import "time"

// CreateTechEventRequest represents data for publishing a tech event
type CreateTechEventRequest struct {
	Title                string     `json:"title" binding:"required"`
	Type                 string     `json:"type" binding:"required"`
	Description          string     `json:"description" binding:"required"`
	EventDate            time.Time  `json:"eventDate" binding:"required"`
	Location             *string    `json:"location,omitempty"`
	IsOnline             bool       `json:"isOnline"`
	MaxParticipants      *int64     `json:"maxParticipants,omitempty" binding:"omitempty,min=1"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty"`
	IsFree               bool       `json:"isFree"`
	TicketPrice          *float64   `json:"ticketPrice,omitempty" binding:"omitempty,min=0"`
	Link                 *string    `json:"link,omitempty" binding:"omitempty,url"`
}

// UpdateTechEventRequest represents data for editing a tech event
type UpdateTechEventRequest = CreateTechEventRequest
