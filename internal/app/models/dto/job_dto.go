package dto

// CreateJobRequest represents data for posting a new job
type CreateJobRequest struct {
	Title          string  `json:"title" binding:"required"`
	Company        string  `json:"company" binding:"required"`
	Location       string  `json:"location" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	SalaryRange    *string `json:"salaryRange,omitempty"`
	EmploymentType *string `json:"employmentType,omitempty" binding:"omitempty,oneof=Full-time Part-time Contract Internship"`
	Link           *string `json:"link,omitempty" binding:"omitempty,url"`
}

// UpdateJobRequest represents data for editing an existing job posting
type UpdateJobRequest struct {
	Title          string  `json:"title" binding:"required"`
	Company        string  `json:"company" binding:"required"`
	Location       string  `json:"location" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	SalaryRange    *string `json:"salaryRange,omitempty"`
	EmploymentType *string `json:"employmentType,omitempty" binding:"omitempty,oneof=Full-time Part-time Contract Internship"`
	Link           *string `json:"link,omitempty" binding:"omitempty,url"`
}
