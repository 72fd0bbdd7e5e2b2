package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/pkg/apperrors"
	"github.com/profilytics/backend/internal/pkg/helpers"
	"github.com/profilytics/backend/internal/pkg/logger"
)

// JobRepository handles job posting database operations
type JobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *JobRepository) selectJobs() squirrel.SelectBuilder {
	return r.sb.Select(
		"j.id", "j.title", "j.company", "j.location", "j.description",
		"j.salary_range", "j.employment_type", "j.link",
		"j.recruiter_id", "j.expires_at", "j.created_at",
		"COALESCE(p.full_name, '') as recruiter_name",
	).
		From("jobs j").
		LeftJoin("profiles p ON j.recruiter_id = p.id")
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	var salaryRange, employmentType, link sql.NullString

	err := row.Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Description,
		&salaryRange, &employmentType, &link,
		&job.RecruiterID, &job.ExpiresAt, &job.CreatedAt,
		&job.RecruiterName,
	)
	if err != nil {
		return nil, err
	}

	if salaryRange.Valid {
		job.SalaryRange = &salaryRange.String
	}
	if employmentType.Valid {
		job.EmploymentType = &employmentType.String
	}
	if link.Valid {
		job.Link = &link.String
	}

	return &job, nil
}

// GetAllJobs retrieves every job, newest first. Expiry is informational,
// expired postings stay listed.
func (r *JobRepository) GetAllJobs(ctx context.Context) ([]models.Job, error) {
	querySql, args, err := r.selectJobs().
		OrderBy("j.created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all jobs SQL")
		return nil, fmt.Errorf("failed to build get jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all jobs query")
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning job row")
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, *job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}

	return jobs, nil
}

// GetJobByID retrieves a job by its ID including the recruiter name
func (r *JobRepository) GetJobByID(ctx context.Context, id int64) (*models.Job, error) {
	querySql, args, err := r.selectJobs().
		Where(squirrel.Eq{"j.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get job by ID SQL")
		return nil, fmt.Errorf("failed to build get job query: %w", err)
	}

	job, err := scanJob(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("jobID", id).Msg("Error scanning job row by ID")
		return nil, fmt.Errorf("error querying job ID=%d: %w", id, err)
	}

	return job, nil
}

// CreateJob inserts a new job posting
func (r *JobRepository) CreateJob(ctx context.Context, job *models.Job) (int64, error) {
	querySql, args, err := r.sb.Insert("jobs").
		Columns(
			"title", "company", "location", "description",
			"salary_range", "employment_type", "link",
			"recruiter_id", "expires_at",
		).
		Values(
			job.Title, job.Company, job.Location, job.Description,
			helpers.GetNullString(job.SalaryRange), helpers.GetNullString(job.EmploymentType),
			helpers.GetNullString(job.Link),
			job.RecruiterID, job.ExpiresAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create job SQL")
		return 0, fmt.Errorf("failed to build create job query: %w", err)
	}

	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&job.ID, &job.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create job query")
		return 0, fmt.Errorf("error inserting job: %w", err)
	}

	logger.Info().Int64("jobID", job.ID).Int64("recruiterID", job.RecruiterID).Msg("Job created")
	return job.ID, nil
}

// UpdateJob updates an existing job posting
func (r *JobRepository) UpdateJob(ctx context.Context, job *models.Job) error {
	querySql, args, err := r.sb.Update("jobs").
		SetMap(map[string]interface{}{
			"title":           job.Title,
			"company":         job.Company,
			"location":        job.Location,
			"description":     job.Description,
			"salary_range":    helpers.GetNullString(job.SalaryRange),
			"employment_type": helpers.GetNullString(job.EmploymentType),
			"link":            helpers.GetNullString(job.Link),
		}).
		Where(squirrel.Eq{"id": job.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Int64("jobID", job.ID).Msg("Error building update job SQL")
		return fmt.Errorf("failed to build update job query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", job.ID).Msg("Error executing update job query")
		return fmt.Errorf("error updating job ID=%d: %w", job.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// DeleteJob removes a job posting
func (r *JobRepository) DeleteJob(ctx context.Context, id int64) error {
	querySql, args, err := r.sb.Delete("jobs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Int64("jobID", id).Msg("Error building delete job SQL")
		return fmt.Errorf("failed to build delete job query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", id).Msg("Error executing delete job query")
		return fmt.Errorf("error deleting job ID=%d: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	logger.Info().Int64("jobID", id).Msg("Job deleted")
	return nil
}
