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
	"github.com/profilytics/backend/internal/pkg/dberrors"
	"github.com/profilytics/backend/internal/pkg/logger"
)

// CommunityMemberRepository handles community membership database operations
type CommunityMemberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommunityMemberRepository creates a new CommunityMemberRepository
func NewCommunityMemberRepository(db *pgxpool.Pool) *CommunityMemberRepository {
	return &CommunityMemberRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateMember inserts a pending membership row. The unique constraint on
// (community_id, profile_id) guarantees at most one row per pair.
func (r *CommunityMemberRepository) CreateMember(ctx context.Context, communityID, profileID int64) (*models.CommunityMember, error) {
	member := &models.CommunityMember{
		CommunityID: communityID,
		ProfileID:   profileID,
		Status:      models.MemberStatusPending,
		CanMessage:  false,
	}

	querySql, args, err := r.sb.Insert("community_members").
		Columns("community_id", "profile_id", "status", "can_message").
		Values(communityID, profileID, member.Status, member.CanMessage).
		Suffix("RETURNING id, joined_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create member SQL")
		return nil, fmt.Errorf("failed to build create member query: %w", err)
	}

	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&member.ID, &member.JoinedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "community_members_unique") {
			return nil, apperrors.ErrAlreadyRequested
		}
		logger.Error().Err(err).Int64("communityID", communityID).Int64("profileID", profileID).Msg("Error executing create member query")
		return nil, fmt.Errorf("error inserting member: %w", err)
	}

	logger.Info().Int64("communityID", communityID).Int64("profileID", profileID).Msg("Join request created")
	return member, nil
}

// GetMember retrieves the membership row for a profile in a community
func (r *CommunityMemberRepository) GetMember(ctx context.Context, communityID, profileID int64) (*models.CommunityMember, error) {
	querySql, args, err := r.sb.Select("id", "community_id", "profile_id", "status", "can_message", "joined_at").
		From("community_members").
		Where(squirrel.Eq{"community_id": communityID, "profile_id": profileID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get member SQL")
		return nil, fmt.Errorf("failed to build get member query: %w", err)
	}

	var member models.CommunityMember
	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&member.ID, &member.CommunityID, &member.ProfileID,
		&member.Status, &member.CanMessage, &member.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotMember
		}
		logger.Error().Err(err).Int64("communityID", communityID).Int64("profileID", profileID).Msg("Error scanning member row")
		return nil, fmt.Errorf("error querying member: %w", err)
	}

	return &member, nil
}

// GetMembers retrieves every membership row of a community with the member profile joined
func (r *CommunityMemberRepository) GetMembers(ctx context.Context, communityID int64) ([]models.CommunityMember, error) {
	querySql, args, err := r.sb.Select(
		"cm.id", "cm.community_id", "cm.profile_id", "cm.status", "cm.can_message", "cm.joined_at",
		"p.full_name", "p.headline", "p.avatar_url",
	).
		From("community_members cm").
		Join("profiles p ON cm.profile_id = p.id").
		Where(squirrel.Eq{"cm.community_id": communityID}).
		OrderBy("cm.joined_at ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get members SQL")
		return nil, fmt.Errorf("failed to build get members query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("communityID", communityID).Msg("Error executing get members query")
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	members := []models.CommunityMember{}
	for rows.Next() {
		var member models.CommunityMember
		var fullName string
		var headline, avatarURL sql.NullString

		err := rows.Scan(
			&member.ID, &member.CommunityID, &member.ProfileID,
			&member.Status, &member.CanMessage, &member.JoinedAt,
			&fullName, &headline, &avatarURL,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning member row")
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}

		profile := &models.Profile{ID: member.ProfileID, FullName: fullName}
		if headline.Valid {
			profile.Headline = &headline.String
		}
		if avatarURL.Valid {
			profile.AvatarURL = &avatarURL.String
		}
		member.Profile = profile

		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}

// ApproveMember marks a pending membership approved and enables messaging.
// Approval always grants can_message; the two flags change together.
func (r *CommunityMemberRepository) ApproveMember(ctx context.Context, communityID, profileID int64) error {
	querySql, args, err := r.sb.Update("community_members").
		Set("status", models.MemberStatusApproved).
		Set("can_message", true).
		Where(squirrel.Eq{"community_id": communityID, "profile_id": profileID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building approve member SQL")
		return fmt.Errorf("failed to build approve member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("communityID", communityID).Int64("profileID", profileID).Msg("Error executing approve member query")
		return fmt.Errorf("error approving member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotMember
	}

	logger.Info().Int64("communityID", communityID).Int64("profileID", profileID).Msg("Member approved")
	return nil
}

// DeleteMember removes a membership row. Rejection and removal both delete.
func (r *CommunityMemberRepository) DeleteMember(ctx context.Context, communityID, profileID int64) error {
	querySql, args, err := r.sb.Delete("community_members").
		Where(squirrel.Eq{"community_id": communityID, "profile_id": profileID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete member SQL")
		return fmt.Errorf("failed to build delete member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("communityID", communityID).Int64("profileID", profileID).Msg("Error executing delete member query")
		return fmt.Errorf("error deleting member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotMember
	}

	logger.Info().Int64("communityID", communityID).Int64("profileID", profileID).Msg("Member removed")
	return nil
}
