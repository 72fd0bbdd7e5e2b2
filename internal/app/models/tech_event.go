package models

import "time"

// TechEvent represents a tech event listing in the database
type TechEvent struct {
	ID                   int64      `json:"id" db:"id"`
	Title                string     `json:"title" db:"title"`
	Type                 string     `json:"type" db:"type"`
	Description          string     `json:"description" db:"description"`
	EventDate            time.Time  `json:"eventDate" db:"event_date"`
	Location             *string    `json:"location,omitempty" db:"location"`
	IsOnline             bool       `json:"isOnline" db:"is_online"`
	MaxParticipants      *int64     `json:"maxParticipants,omitempty" db:"max_participants"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty" db:"registration_deadline"`
	IsFree               bool       `json:"isFree" db:"is_free"`
	TicketPrice          *float64   `json:"ticketPrice,omitempty" db:"ticket_price"`
	Link                 *string    `json:"link,omitempty" db:"link"`
	OrganizerID          int64      `json:"organizerId" db:"organizer_id"`
	OrganizerName        string     `json:"organizerName,omitempty"` // Joined from profiles
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
}
