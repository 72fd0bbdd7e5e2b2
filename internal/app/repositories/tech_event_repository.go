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

// TechEventRepository handles tech event database operations
type TechEventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTechEventRepository creates a new TechEventRepository
func NewTechEventRepository(db *pgxpool.Pool) *TechEventRepository {
	return &TechEventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *TechEventRepository) selectEvents() squirrel.SelectBuilder {
	return r.sb.Select(
		"e.id", "e.title", "e.type", "e.description", "e.event_date",
		"e.location", "e.is_online", "e.max_participants",
		"e.registration_deadline", "e.is_free", "e.ticket_price", "e.link",
		"e.organizer_id", "e.created_at",
		"COALESCE(p.full_name, '') as organizer_name",
	).
		From("tech_events e").
		LeftJoin("profiles p ON e.organizer_id = p.id")
}

func scanTechEvent(row pgx.Row) (*models.TechEvent, error) {
	var event models.TechEvent
	var location, link sql.NullString
	var maxParticipants sql.NullInt64
	var registrationDeadline sql.NullTime
	var ticketPrice sql.NullFloat64

	err := row.Scan(
		&event.ID, &event.Title, &event.Type, &event.Description, &event.EventDate,
		&location, &event.IsOnline, &maxParticipants,
		&registrationDeadline, &event.IsFree, &ticketPrice, &link,
		&event.OrganizerID, &event.CreatedAt,
		&event.OrganizerName,
	)
	if err != nil {
		return nil, err
	}

	if location.Valid {
		event.Location = &location.String
	}
	if link.Valid {
		event.Link = &link.String
	}
	if maxParticipants.Valid {
		event.MaxParticipants = &maxParticipants.Int64
	}
	if registrationDeadline.Valid {
		event.RegistrationDeadline = &registrationDeadline.Time
	}
	if ticketPrice.Valid {
		event.TicketPrice = &ticketPrice.Float64
	}

	return &event, nil
}

// GetAllTechEvents retrieves every tech event ordered by event date, soonest first
func (r *TechEventRepository) GetAllTechEvents(ctx context.Context) ([]models.TechEvent, error) {
	querySql, args, err := r.selectEvents().
		OrderBy("e.event_date ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all tech events SQL")
		return nil, fmt.Errorf("failed to build get tech events query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all tech events query")
		return nil, fmt.Errorf("failed to query tech events: %w", err)
	}
	defer rows.Close()

	events := []models.TechEvent{}
	for rows.Next() {
		event, err := scanTechEvent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning tech event row")
			return nil, fmt.Errorf("failed to scan tech event row: %w", err)
		}
		events = append(events, *event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tech event rows: %w", err)
	}

	return events, nil
}

// GetTechEventByID retrieves a tech event by its ID including the organizer name
func (r *TechEventRepository) GetTechEventByID(ctx context.Context, id int64) (*models.TechEvent, error) {
	querySql, args, err := r.selectEvents().
		Where(squirrel.Eq{"e.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get tech event by ID SQL")
		return nil, fmt.Errorf("failed to build get tech event query: %w", err)
	}

	event, err := scanTechEvent(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error scanning tech event row by ID")
		return nil, fmt.Errorf("error querying tech event ID=%d: %w", id, err)
	}

	return event, nil
}

// CreateTechEvent inserts a new tech event
func (r *TechEventRepository) CreateTechEvent(ctx context.Context, event *models.TechEvent) (int64, error) {
	querySql, args, err := r.sb.Insert("tech_events").
		Columns(
			"title", "type", "description", "event_date", "location",
			"is_online", "max_participants", "registration_deadline",
			"is_free", "ticket_price", "link", "organizer_id",
		).
		Values(
			event.Title, event.Type, event.Description, event.EventDate,
			helpers.GetNullString(event.Location),
			event.IsOnline, helpers.GetNullInt64(event.MaxParticipants), event.RegistrationDeadline,
			event.IsFree, helpers.GetNullFloat64(event.TicketPrice), helpers.GetNullString(event.Link), event.OrganizerID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create tech event SQL")
		return 0, fmt.Errorf("failed to build create tech event query: %w", err)
	}

	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&event.ID, &event.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create tech event query")
		return 0, fmt.Errorf("error inserting tech event: %w", err)
	}

	logger.Info().Int64("eventID", event.ID).Int64("organizerID", event.OrganizerID).Msg("Tech event created")
	return event.ID, nil
}

// UpdateTechEvent updates an existing tech event
func (r *TechEventRepository) UpdateTechEvent(ctx context.Context, event *models.TechEvent) error {
	querySql, args, err := r.sb.Update("tech_events").
		SetMap(map[string]interface{}{
			"title":                 event.Title,
			"type":                  event.Type,
			"description":           event.Description,
			"event_date":            event.EventDate,
			"location":              helpers.GetNullString(event.Location),
			"is_online":             event.IsOnline,
			"max_participants":      helpers.GetNullInt64(event.MaxParticipants),
			"registration_deadline": event.RegistrationDeadline,
			"is_free":               event.IsFree,
			"ticket_price":          helpers.GetNullFloat64(event.TicketPrice),
			"link":                  helpers.GetNullString(event.Link),
		}).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Int64("eventID", event.ID).Msg("Error building update tech event SQL")
		return fmt.Errorf("failed to build update tech event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", event.ID).Msg("Error executing update tech event query")
		return fmt.Errorf("error updating tech event ID=%d: %w", event.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// DeleteTechEvent removes a tech event
func (r *TechEventRepository) DeleteTechEvent(ctx context.Context, id int64) error {
	querySql, args, err := r.sb.Delete("tech_events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Error building delete tech event SQL")
		return fmt.Errorf("failed to build delete tech event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Error executing delete tech event query")
		return fmt.Errorf("error deleting tech event ID=%d: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	logger.Info().Int64("eventID", id).Msg("Tech event deleted")
	return nil
}
