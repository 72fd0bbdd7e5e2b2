package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/pkg/apperrors"
)

type fakeJobStore struct {
	jobs map[int64]*models.Job

	nextID      int64
	createCalls int
	updateCalls int
	deleteCalls int
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[int64]*models.Job), nextID: 1}
}

func (f *fakeJobStore) GetAllJobs(ctx context.Context) ([]models.Job, error) {
	var out []models.Job
	for _, job := range f.jobs {
		out = append(out, *job)
	}
	return out, nil
}

func (f *fakeJobStore) GetJobByID(ctx context.Context, id int64) (*models.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobStore) CreateJob(ctx context.Context, job *models.Job) (int64, error) {
	f.createCalls++
	job.ID = f.nextID
	f.nextID++
	copied := *job
	f.jobs[job.ID] = &copied
	return job.ID, nil
}

func (f *fakeJobStore) UpdateJob(ctx context.Context, job *models.Job) error {
	f.updateCalls++
	if _, ok := f.jobs[job.ID]; !ok {
		return apperrors.ErrJobNotFound
	}
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeJobStore) DeleteJob(ctx context.Context, id int64) error {
	f.deleteCalls++
	if _, ok := f.jobs[id]; !ok {
		return apperrors.ErrJobNotFound
	}
	delete(f.jobs, id)
	return nil
}

func TestCreateJobAttachesRecruiterAndExpiry(t *testing.T) {
	store := newFakeJobStore()
	service := NewJobService(store)

	before := time.Now()
	job, err := service.CreateJob(context.Background(), 42, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Go services",
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	if job.RecruiterID != 42 {
		t.Errorf("recruiterID = %d, want 42", job.RecruiterID)
	}
	wantExpiry := before.Add(30 * 24 * time.Hour)
	if job.ExpiresAt.Before(wantExpiry) || job.ExpiresAt.After(wantExpiry.Add(time.Minute)) {
		t.Errorf("expiresAt = %v, want about %v", job.ExpiresAt, wantExpiry)
	}
}

func TestCreateJobRequiresIdentity(t *testing.T) {
	store := newFakeJobStore()
	service := NewJobService(store)

	_, err := service.CreateJob(context.Background(), 0, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Go services",
	})
	if !errors.Is(err, apperrors.ErrAuthRequired) {
		t.Fatalf("err = %v, want ErrAuthRequired", err)
	}
	if store.createCalls != 0 {
		t.Errorf("createCalls = %d, want 0", store.createCalls)
	}
}

func TestUpdateJobRejectsNonOwner(t *testing.T) {
	store := newFakeJobStore()
	service := NewJobService(store)

	job, err := service.CreateJob(context.Background(), 1, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Go services",
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	_, err = service.UpdateJob(context.Background(), 2, job.ID, &dto.UpdateJobRequest{
		Title:       "Hijacked",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Go services",
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
	if store.updateCalls != 0 {
		t.Errorf("updateCalls = %d, want 0", store.updateCalls)
	}
}

func TestDeleteJobRejectsNonOwner(t *testing.T) {
	store := newFakeJobStore()
	service := NewJobService(store)

	job, err := service.CreateJob(context.Background(), 1, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Go services",
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	if err := service.DeleteJob(context.Background(), 2, job.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
	if store.deleteCalls != 0 {
		t.Errorf("deleteCalls = %d, want 0", store.deleteCalls)
	}

	if err := service.DeleteJob(context.Background(), 1, job.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

func TestGetJobsFiltersAndPaginates(t *testing.T) {
	store := newFakeJobStore()
	service := NewJobService(store)

	titles := []string{"Go Developer", "Rust Developer", "Go Platform Lead"}
	for _, title := range titles {
		if _, err := service.CreateJob(context.Background(), 1, &dto.CreateJobRequest{
			Title:       title,
			Company:     "Acme",
			Location:    "Remote",
			Description: "engineering",
		}); err != nil {
			t.Fatalf("CreateJob(%s): %v", title, err)
		}
	}

	page, err := service.GetJobs(context.Background(), "go", 1, 10)
	if err != nil {
		t.Fatalf("GetJobs: %v", err)
	}
	jobs := page.Items.([]models.Job)
	if len(jobs) != 2 {
		t.Fatalf("len(jobs) = %d, want 2", len(jobs))
	}
	if page.Pagination.TotalItems != 2 {
		t.Errorf("totalItems = %d, want 2", page.Pagination.TotalItems)
	}

	// Repeating the same query must not change the result
	again, err := service.GetJobs(context.Background(), "go", 1, 10)
	if err != nil {
		t.Fatalf("GetJobs again: %v", err)
	}
	if len(again.Items.([]models.Job)) != 2 {
		t.Errorf("second query returned %d jobs, want 2", len(again.Items.([]models.Job)))
	}
}

func TestGetJobsKeepsExpiredPostings(t *testing.T) {
	store := newFakeJobStore()
	service := NewJobService(store)

	expired := &models.Job{
		Title:       "Archived Role",
		Company:     "Acme",
		Location:    "Remote",
		Description: "engineering",
		RecruiterID: 1,
		ExpiresAt:   time.Now().Add(-24 * time.Hour),
	}
	if _, err := store.CreateJob(context.Background(), expired); err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	page, err := service.GetJobs(context.Background(), "", 1, 10)
	if err != nil {
		t.Fatalf("GetJobs: %v", err)
	}
	jobs := page.Items.([]models.Job)
	if len(jobs) != 1 {
		t.Fatalf("len(jobs) = %d, want 1; expiry is informational and must not hide postings", len(jobs))
	}
}
