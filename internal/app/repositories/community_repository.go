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

// CommunityRepository handles community database operations
type CommunityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommunityRepository creates a new CommunityRepository
func NewCommunityRepository(db *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *CommunityRepository) selectCommunities() squirrel.SelectBuilder {
	return r.sb.Select(
		"c.id", "c.name", "c.description", "c.link", "c.community_type",
		"c.is_private", "c.college_name", "c.creator_id", "c.created_at",
		"COALESCE(p.full_name, '') as creator_name",
		"(SELECT COUNT(*) FROM community_members cm WHERE cm.community_id = c.id AND cm.status = 'approved') as member_count",
	).
		From("communities c").
		LeftJoin("profiles p ON c.creator_id = p.id")
}

func scanCommunity(row pgx.Row) (*models.Community, error) {
	var community models.Community
	var link, collegeName sql.NullString

	err := row.Scan(
		&community.ID, &community.Name, &community.Description, &link,
		&community.CommunityType, &community.IsPrivate, &collegeName,
		&community.CreatorID, &community.CreatedAt,
		&community.CreatorName, &community.MemberCount,
	)
	if err != nil {
		return nil, err
	}

	if link.Valid {
		community.Link = &link.String
	}
	if collegeName.Valid {
		community.CollegeName = &collegeName.String
	}

	return &community, nil
}

// GetAllCommunities retrieves every community, newest first
func (r *CommunityRepository) GetAllCommunities(ctx context.Context) ([]models.Community, error) {
	querySql, args, err := r.selectCommunities().
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all communities SQL")
		return nil, fmt.Errorf("failed to build get communities query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all communities query")
		return nil, fmt.Errorf("failed to query communities: %w", err)
	}
	defer rows.Close()

	communities := []models.Community{}
	for rows.Next() {
		community, err := scanCommunity(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning community row")
			return nil, fmt.Errorf("failed to scan community row: %w", err)
		}
		communities = append(communities, *community)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating community rows: %w", err)
	}

	return communities, nil
}

// GetCommunityByID retrieves a community by its ID including creator name and member count
func (r *CommunityRepository) GetCommunityByID(ctx context.Context, id int64) (*models.Community, error) {
	querySql, args, err := r.selectCommunities().
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get community by ID SQL")
		return nil, fmt.Errorf("failed to build get community query: %w", err)
	}

	community, err := scanCommunity(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommunityNotFound
		}
		logger.Error().Err(err).Int64("communityID", id).Msg("Error scanning community row by ID")
		return nil, fmt.Errorf("error querying community ID=%d: %w", id, err)
	}

	return community, nil
}

// CreateCommunity inserts a new community
func (r *CommunityRepository) CreateCommunity(ctx context.Context, community *models.Community) (int64, error) {
	querySql, args, err := r.sb.Insert("communities").
		Columns("name", "description", "link", "community_type", "is_private", "college_name", "creator_id").
		Values(
			community.Name, community.Description, helpers.GetNullString(community.Link),
			community.CommunityType, community.IsPrivate,
			helpers.GetNullString(community.CollegeName), community.CreatorID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create community SQL")
		return 0, fmt.Errorf("failed to build create community query: %w", err)
	}

	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&community.ID, &community.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create community query")
		return 0, fmt.Errorf("error inserting community: %w", err)
	}

	logger.Info().Int64("communityID", community.ID).Int64("creatorID", community.CreatorID).Msg("Community created")
	return community.ID, nil
}

// UpdateCommunity updates an existing community
func (r *CommunityRepository) UpdateCommunity(ctx context.Context, community *models.Community) error {
	querySql, args, err := r.sb.Update("communities").
		SetMap(map[string]interface{}{
			"name":           community.Name,
			"description":    community.Description,
			"link":           helpers.GetNullString(community.Link),
			"community_type": community.CommunityType,
			"is_private":     community.IsPrivate,
			"college_name":   helpers.GetNullString(community.CollegeName),
		}).
		Where(squirrel.Eq{"id": community.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Int64("communityID", community.ID).Msg("Error building update community SQL")
		return fmt.Errorf("failed to build update community query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("communityID", community.ID).Msg("Error executing update community query")
		return fmt.Errorf("error updating community ID=%d: %w", community.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommunityNotFound
	}

	return nil
}

// DeleteCommunity removes a community along with its memberships and messages
func (r *CommunityRepository) DeleteCommunity(ctx context.Context, id int64) error {
	querySql, args, err := r.sb.Delete("communities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Int64("communityID", id).Msg("Error building delete community SQL")
		return fmt.Errorf("failed to build delete community query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("communityID", id).Msg("Error executing delete community query")
		return fmt.Errorf("error deleting community ID=%d: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommunityNotFound
	}

	logger.Info().Int64("communityID", id).Msg("Community deleted")
	return nil
}
