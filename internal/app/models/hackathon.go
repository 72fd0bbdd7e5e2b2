package models

import "time"

// Hackathon represents a hackathon listing in the database
type Hackathon struct {
	ID                   int64      `json:"id" db:"id"`
	Title                string     `json:"title" db:"title"`
	Description          string     `json:"description" db:"description"`
	StartDate            time.Time  `json:"startDate" db:"start_date"`
	EndDate              time.Time  `json:"endDate" db:"end_date"`
	Location             *string    `json:"location,omitempty" db:"location"`
	IsOnline             bool       `json:"isOnline" db:"is_online"`
	MaxTeamSize          *int64     `json:"maxTeamSize,omitempty" db:"max_team_size"`
	PrizePool            *string    `json:"prizePool,omitempty" db:"prize_pool"`
	Requirements         *string    `json:"requirements,omitempty" db:"requirements"`
	Link                 *string    `json:"link,omitempty" db:"link"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty" db:"registration_deadline"`
	OrganizerID          int64      `json:"organizerId" db:"organizer_id"`
	OrganizerName        string     `json:"organizerName,omitempty"` // Joined from profiles
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
}
