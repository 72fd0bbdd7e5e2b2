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

// HackathonRepository handles hackathon database operations
type HackathonRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewHackathonRepository creates a new HackathonRepository
func NewHackathonRepository(db *pgxpool.Pool) *HackathonRepository {
	return &HackathonRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *HackathonRepository) selectHackathons() squirrel.SelectBuilder {
	return r.sb.Select(
		"h.id", "h.title", "h.description", "h.start_date", "h.end_date",
		"h.location", "h.is_online", "h.max_team_size", "h.prize_pool",
		"h.requirements", "h.link", "h.registration_deadline",
		"h.organizer_id", "h.created_at",
		"COALESCE(p.full_name, '') as organizer_name",
	).
		From("hackathons h").
		LeftJoin("profiles p ON h.organizer_id = p.id")
}

func scanHackathon(row pgx.Row) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	var location, prizePool, requirements, link sql.NullString
	var maxTeamSize sql.NullInt64
	var registrationDeadline sql.NullTime

	err := row.Scan(
		&hackathon.ID, &hackathon.Title, &hackathon.Description,
		&hackathon.StartDate, &hackathon.EndDate,
		&location, &hackathon.IsOnline, &maxTeamSize, &prizePool,
		&requirements, &link, &registrationDeadline,
		&hackathon.OrganizerID, &hackathon.CreatedAt,
		&hackathon.OrganizerName,
	)
	if err != nil {
		return nil, err
	}

	if location.Valid {
		hackathon.Location = &location.String
	}
	if prizePool.Valid {
		hackathon.PrizePool = &prizePool.String
	}
	if requirements.Valid {
		hackathon.Requirements = &requirements.String
	}
	if link.Valid {
		hackathon.Link = &link.String
	}
	if maxTeamSize.Valid {
		hackathon.MaxTeamSize = &maxTeamSize.Int64
	}
	if registrationDeadline.Valid {
		hackathon.RegistrationDeadline = &registrationDeadline.Time
	}

	return &hackathon, nil
}

// GetAllHackathons retrieves every hackathon ordered by start date, soonest first
func (r *HackathonRepository) GetAllHackathons(ctx context.Context) ([]models.Hackathon, error) {
	querySql, args, err := r.selectHackathons().
		OrderBy("h.start_date ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all hackathons SQL")
		return nil, fmt.Errorf("failed to build get hackathons query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all hackathons query")
		return nil, fmt.Errorf("failed to query hackathons: %w", err)
	}
	defer rows.Close()

	hackathons := []models.Hackathon{}
	for rows.Next() {
		hackathon, err := scanHackathon(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning hackathon row")
			return nil, fmt.Errorf("failed to scan hackathon row: %w", err)
		}
		hackathons = append(hackathons, *hackathon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hackathon rows: %w", err)
	}

	return hackathons, nil
}

// GetHackathonByID retrieves a hackathon by its ID including the organizer name
func (r *HackathonRepository) GetHackathonByID(ctx context.Context, id int64) (*models.Hackathon, error) {
	querySql, args, err := r.selectHackathons().
		Where(squirrel.Eq{"h.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get hackathon by ID SQL")
		return nil, fmt.Errorf("failed to build get hackathon query: %w", err)
	}

	hackathon, err := scanHackathon(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHackathonNotFound
		}
		logger.Error().Err(err).Int64("hackathonID", id).Msg("Error scanning hackathon row by ID")
		return nil, fmt.Errorf("error querying hackathon ID=%d: %w", id, err)
	}

	return hackathon, nil
}

// CreateHackathon inserts a new hackathon
func (r *HackathonRepository) CreateHackathon(ctx context.Context, hackathon *models.Hackathon) (int64, error) {
	querySql, args, err := r.sb.Insert("hackathons").
		Columns(
			"title", "description", "start_date", "end_date", "location",
			"is_online", "max_team_size", "prize_pool", "requirements",
			"link", "registration_deadline", "organizer_id",
		).
		Values(
			hackathon.Title, hackathon.Description, hackathon.StartDate, hackathon.EndDate,
			helpers.GetNullString(hackathon.Location),
			hackathon.IsOnline, helpers.GetNullInt64(hackathon.MaxTeamSize),
			helpers.GetNullString(hackathon.PrizePool), helpers.GetNullString(hackathon.Requirements),
			helpers.GetNullString(hackathon.Link), hackathon.RegistrationDeadline,
			hackathon.OrganizerID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create hackathon SQL")
		return 0, fmt.Errorf("failed to build create hackathon query: %w", err)
	}

	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&hackathon.ID, &hackathon.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create hackathon query")
		return 0, fmt.Errorf("error inserting hackathon: %w", err)
	}

	logger.Info().Int64("hackathonID", hackathon.ID).Int64("organizerID", hackathon.OrganizerID).Msg("Hackathon created")
	return hackathon.ID, nil
}

// UpdateHackathon updates an existing hackathon
func (r *HackathonRepository) UpdateHackathon(ctx context.Context, hackathon *models.Hackathon) error {
	querySql, args, err := r.sb.Update("hackathons").
		SetMap(map[string]interface{}{
			"title":                 hackathon.Title,
			"description":           hackathon.Description,
			"start_date":            hackathon.StartDate,
			"end_date":              hackathon.EndDate,
			"location":              helpers.GetNullString(hackathon.Location),
			"is_online":             hackathon.IsOnline,
			"max_team_size":         helpers.GetNullInt64(hackathon.MaxTeamSize),
			"prize_pool":            helpers.GetNullString(hackathon.PrizePool),
			"requirements":          helpers.GetNullString(hackathon.Requirements),
			"link":                  helpers.GetNullString(hackathon.Link),
			"registration_deadline": hackathon.RegistrationDeadline,
		}).
		Where(squirrel.Eq{"id": hackathon.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Int64("hackathonID", hackathon.ID).Msg("Error building update hackathon SQL")
		return fmt.Errorf("failed to build update hackathon query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("hackathonID", hackathon.ID).Msg("Error executing update hackathon query")
		return fmt.Errorf("error updating hackathon ID=%d: %w", hackathon.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHackathonNotFound
	}

	return nil
}

// DeleteHackathon removes a hackathon
func (r *HackathonRepository) DeleteHackathon(ctx context.Context, id int64) error {
	querySql, args, err := r.sb.Delete("hackathons").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Int64("hackathonID", id).Msg("Error building delete hackathon SQL")
		return fmt.Errorf("failed to build delete hackathon query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("hackathonID", id).Msg("Error executing delete hackathon query")
		return fmt.Errorf("error deleting hackathon ID=%d: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHackathonNotFound
	}

	logger.Info().Int64("hackathonID", id).Msg("Hackathon deleted")
	return nil
}
