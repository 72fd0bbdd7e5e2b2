package models

import (
	"time"
)

// User defines the account model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Email     string    `json:"email" db:"email" example:"jane@profilytics.app"`
	Password  string    `json:"-" db:"password"` // Hashed password, excluded from JSON
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Profile defines the public identity based on the 'profiles' table.
// A profile shares its id with the owning user and is created at registration.
type Profile struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	FullName  string    `json:"fullName" db:"full_name" example:"Jane Doe"`
	Headline  *string   `json:"headline,omitempty" db:"headline"`
	Bio       *string   `json:"bio,omitempty" db:"bio"`
	Location  *string   `json:"location,omitempty" db:"location"`
	Website   *string   `json:"website,omitempty" db:"website"`
	AvatarURL *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	CoverURL  *string   `json:"coverUrl,omitempty" db:"cover_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
