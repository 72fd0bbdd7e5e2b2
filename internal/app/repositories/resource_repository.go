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

// ResourceRepository handles learning resource database operations
type ResourceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ResourceRepository) selectResources() squirrel.SelectBuilder {
	return r.sb.Select(
		"r.id", "r.title", "r.description", "r.url", "r.type", "r.content",
		"r.contributor_id", "r.created_at",
		"COALESCE(p.full_name, '') as contributor_name",
	).
		From("resources r").
		LeftJoin("profiles p ON r.contributor_id = p.id")
}

func scanResource(row pgx.Row) (*models.Resource, error) {
	var resource models.Resource
	var url, content sql.NullString

	err := row.Scan(
		&resource.ID, &resource.Title, &resource.Description, &url,
		&resource.Type, &content,
		&resource.ContributorID, &resource.CreatedAt,
		&resource.ContributorName,
	)
	if err != nil {
		return nil, err
	}

	if url.Valid {
		resource.URL = &url.String
	}
	if content.Valid {
		resource.Content = &content.String
	}

	return &resource, nil
}

// GetAllResources retrieves every resource, newest first
func (r *ResourceRepository) GetAllResources(ctx context.Context) ([]models.Resource, error) {
	querySql, args, err := r.selectResources().
		OrderBy("r.created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all resources SQL")
		return nil, fmt.Errorf("failed to build get resources query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all resources query")
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	resources := []models.Resource{}
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning resource row")
			return nil, fmt.Errorf("failed to scan resource row: %w", err)
		}
		resources = append(resources, *resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resource rows: %w", err)
	}

	return resources, nil
}

// GetResourceByID retrieves a resource by its ID including the contributor name
func (r *ResourceRepository) GetResourceByID(ctx context.Context, id int64) (*models.Resource, error) {
	querySql, args, err := r.selectResources().
		Where(squirrel.Eq{"r.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get resource by ID SQL")
		return nil, fmt.Errorf("failed to build get resource query: %w", err)
	}

	resource, err := scanResource(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLearningResourceNotFound
		}
		logger.Error().Err(err).Int64("resourceID", id).Msg("Error scanning resource row by ID")
		return nil, fmt.Errorf("error querying resource ID=%d: %w", id, err)
	}

	return resource, nil
}

// CreateResource inserts a new resource
func (r *ResourceRepository) CreateResource(ctx context.Context, resource *models.Resource) (int64, error) {
	querySql, args, err := r.sb.Insert("resources").
		Columns("title", "description", "url", "type", "content", "contributor_id").
		Values(
			resource.Title, resource.Description, helpers.GetNullString(resource.URL),
			resource.Type, helpers.GetNullString(resource.Content), resource.ContributorID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create resource SQL")
		return 0, fmt.Errorf("failed to build create resource query: %w", err)
	}

	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&resource.ID, &resource.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create resource query")
		return 0, fmt.Errorf("error inserting resource: %w", err)
	}

	logger.Info().Int64("resourceID", resource.ID).Int64("contributorID", resource.ContributorID).Msg("Resource created")
	return resource.ID, nil
}

// DeleteResource removes a resource
func (r *ResourceRepository) DeleteResource(ctx context.Context, id int64) error {
	querySql, args, err := r.sb.Delete("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Int64("resourceID", id).Msg("Error building delete resource SQL")
		return fmt.Errorf("failed to build delete resource query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("resourceID", id).Msg("Error executing delete resource query")
		return fmt.Errorf("error deleting resource ID=%d: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLearningResourceNotFound
	}

	logger.Info().Int64("resourceID", id).Msg("Resource deleted")
	return nil
}
