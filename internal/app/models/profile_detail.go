package models

import "time"

// Education represents an education entry based on the 'education' table
type Education struct {
	ID          int64      `json:"id" db:"id"`
	ProfileID   int64      `json:"profileId" db:"profile_id"`
	School      string     `json:"school" db:"school"`
	Degree      string     `json:"degree" db:"degree"`
	Field       string     `json:"field" db:"field"`
	StartDate   time.Time  `json:"startDate" db:"start_date"`
	EndDate     *time.Time `json:"endDate,omitempty" db:"end_date"`
	Description *string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// Experience represents a work experience entry based on the 'experiences' table
type Experience struct {
	ID          int64      `json:"id" db:"id"`
	ProfileID   int64      `json:"profileId" db:"profile_id"`
	Title       string     `json:"title" db:"title"`
	Company     string     `json:"company" db:"company"`
	Location    *string    `json:"location,omitempty" db:"location"`
	StartDate   time.Time  `json:"startDate" db:"start_date"`
	EndDate     *time.Time `json:"endDate,omitempty" db:"end_date"`
	Description *string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// Skill is a shared skill name based on the 'skills' table. Profiles link to
// skills through the profile_skills table.
type Skill struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ProfileSkill is a skill attached to a profile, with the skill name joined
type ProfileSkill struct {
	SkillID          int64  `json:"skillId" db:"skill_id"`
	Name             string `json:"name" db:"name"`
	EndorsementCount int    `json:"endorsementCount" db:"endorsement_count"`
}
