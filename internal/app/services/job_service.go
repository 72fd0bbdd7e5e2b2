package services

import (
	"context"
	"time"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/pkg/apperrors"
	"github.com/profilytics/backend/internal/pkg/helpers"
)

// jobExpiryWindow is how long a posting stays listed after creation
const jobExpiryWindow = 30 * 24 * time.Hour

// jobStore is the job access the job service needs
type jobStore interface {
	GetAllJobs(ctx context.Context) ([]models.Job, error)
	GetJobByID(ctx context.Context, id int64) (*models.Job, error)
	CreateJob(ctx context.Context, job *models.Job) (int64, error)
	UpdateJob(ctx context.Context, job *models.Job) error
	DeleteJob(ctx context.Context, id int64) error
}

// JobService defines the interface for job posting operations
type JobService interface {
	GetJobs(ctx context.Context, search string, page, size int) (*dto.PaginatedResponse, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	CreateJob(ctx context.Context, actorID int64, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, actorID, id int64, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, actorID, id int64) error
}

// jobServiceImpl implements JobService
type jobServiceImpl struct {
	jobRepo jobStore
}

// NewJobService creates a new JobService
func NewJobService(jobRepo jobStore) JobService {
	return &jobServiceImpl{jobRepo: jobRepo}
}

func jobSearchFields(job models.Job) []string {
	return []string{job.Title, job.Company, job.Location, job.Description}
}

// GetJobs loads the full feed, applies the search filter, then paginates
func (s *jobServiceImpl) GetJobs(ctx context.Context, search string, page, size int) (*dto.PaginatedResponse, error) {
	jobs, err := s.jobRepo.GetAllJobs(ctx)
	if err != nil {
		return nil, err
	}

	filtered := helpers.FilterBySearch(jobs, search, jobSearchFields)

	start, end := helpers.CalculateSliceIndices(page, size, len(filtered))
	return &dto.PaginatedResponse{
		Items:      filtered[start:end],
		Pagination: helpers.NewPaginationInfo(int64(len(filtered)), page, size),
	}, nil
}

// GetJob retrieves a single job posting
func (s *jobServiceImpl) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	return s.jobRepo.GetJobByID(ctx, id)
}

// CreateJob posts a job on behalf of the acting user. The posting expires 30
// days after creation.
func (s *jobServiceImpl) CreateJob(ctx context.Context, actorID int64, req *dto.CreateJobRequest) (*models.Job, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	job := &models.Job{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Description:    req.Description,
		SalaryRange:    req.SalaryRange,
		EmploymentType: req.EmploymentType,
		Link:           req.Link,
		RecruiterID:    actorID,
		ExpiresAt:      time.Now().Add(jobExpiryWindow),
	}

	if _, err := s.jobRepo.CreateJob(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// UpdateJob edits a posting. Only the recruiter who posted it may edit.
func (s *jobServiceImpl) UpdateJob(ctx context.Context, actorID, id int64, req *dto.UpdateJobRequest) (*models.Job, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	job, err := s.jobRepo.GetJobByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.RecruiterID != actorID {
		return nil, apperrors.ErrPermissionDenied
	}

	job.Title = req.Title
	job.Company = req.Company
	job.Location = req.Location
	job.Description = req.Description
	job.SalaryRange = req.SalaryRange
	job.EmploymentType = req.EmploymentType
	job.Link = req.Link

	if err := s.jobRepo.UpdateJob(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// DeleteJob removes a posting. Only the recruiter who posted it may delete.
func (s *jobServiceImpl) DeleteJob(ctx context.Context, actorID, id int64) error {
	if actorID == 0 {
		return apperrors.ErrAuthRequired
	}

	job, err := s.jobRepo.GetJobByID(ctx, id)
	if err != nil {
		return err
	}
	if job.RecruiterID != actorID {
		return apperrors.ErrPermissionDenied
	}

	return s.jobRepo.DeleteJob(ctx, id)
}
