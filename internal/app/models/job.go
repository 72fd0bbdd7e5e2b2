package models

import "time"

// Job represents a job posting in the database
type Job struct {
	ID             int64     `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Company        string    `json:"company" db:"company"`
	Location       string    `json:"location" db:"location"`
	Description    string    `json:"description" db:"description"`
	SalaryRange    *string   `json:"salaryRange,omitempty" db:"salary_range"`
	EmploymentType *string   `json:"employmentType,omitempty" db:"employment_type"`
	Link           *string   `json:"link,omitempty" db:"link"`
	RecruiterID    int64     `json:"recruiterId" db:"recruiter_id"`
	RecruiterName  string    `json:"recruiterName,omitempty"` // Joined from profiles
	ExpiresAt      time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
