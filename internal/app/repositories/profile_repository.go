package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/pkg/apperrors"
	"github.com/profilytics/backend/internal/pkg/helpers"
	"github.com/profilytics/backend/internal/pkg/logger"
)

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetProfileByID retrieves a profile by its id
func (r *ProfileRepository) GetProfileByID(ctx context.Context, id int64) (*models.Profile, error) {
	querySql, args, err := r.sb.Select(
		"id", "full_name", "headline", "bio", "location", "website",
		"avatar_url", "cover_url", "created_at", "updated_at",
	).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get profile by ID SQL")
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	var profile models.Profile
	var headline, bio, location, website, avatarURL, coverURL sql.NullString

	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&profile.ID, &profile.FullName, &headline, &bio, &location, &website,
		&avatarURL, &coverURL, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("profileID", id).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error querying profile ID=%d: %w", id, err)
	}

	if headline.Valid {
		profile.Headline = &headline.String
	}
	if bio.Valid {
		profile.Bio = &bio.String
	}
	if location.Valid {
		profile.Location = &location.String
	}
	if website.Valid {
		profile.Website = &website.String
	}
	if avatarURL.Valid {
		profile.AvatarURL = &avatarURL.String
	}
	if coverURL.Valid {
		profile.CoverURL = &coverURL.String
	}

	return &profile, nil
}

// UpdateProfile persists the full profile row
func (r *ProfileRepository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	querySql, args, err := r.sb.Update("profiles").
		SetMap(map[string]interface{}{
			"full_name":  profile.FullName,
			"headline":   helpers.GetNullString(profile.Headline),
			"bio":        helpers.GetNullString(profile.Bio),
			"location":   helpers.GetNullString(profile.Location),
			"website":    helpers.GetNullString(profile.Website),
			"avatar_url": helpers.GetNullString(profile.AvatarURL),
			"cover_url":  helpers.GetNullString(profile.CoverURL),
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": profile.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Int64("profileID", profile.ID).Msg("Error building update profile SQL")
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("profileID", profile.ID).Msg("Error executing update profile query")
		return fmt.Errorf("error updating profile ID=%d: %w", profile.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	logger.Info().Int64("profileID", profile.ID).Msg("Profile updated")
	return nil
}
