package models

import "time"

// Resource represents a shared learning resource in the database
type Resource struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	URL             *string   `json:"url,omitempty" db:"url"`
	Type            string    `json:"type" db:"type"`
	Content         *string   `json:"content,omitempty" db:"content"`
	ContributorID   int64     `json:"contributorId" db:"contributor_id"`
	ContributorName string    `json:"contributorName,omitempty"` // Joined from profiles
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
