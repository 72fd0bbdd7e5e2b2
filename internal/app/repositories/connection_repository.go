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
	"github.com/profilytics/backend/internal/pkg/dberrors"
	"github.com/profilytics/backend/internal/pkg/logger"
)

// ConnectionRepository handles connection graph database operations
type ConnectionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewConnectionRepository creates a new ConnectionRepository
func NewConnectionRepository(db *pgxpool.Pool) *ConnectionRepository {
	return &ConnectionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateConnection inserts a pending connection request. The unordered-pair
// unique index rejects the insert when a row exists in either direction.
func (r *ConnectionRepository) CreateConnection(ctx context.Context, requesterID, addresseeID int64) (*models.Connection, error) {
	connection := &models.Connection{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      models.ConnectionStatusPending,
	}

	querySql, args, err := r.sb.Insert("connections").
		Columns("requester_id", "addressee_id", "status").
		Values(requesterID, addresseeID, connection.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create connection SQL")
		return nil, fmt.Errorf("failed to build create connection query: %w", err)
	}

	err = r.db.QueryRow(ctx, querySql, args...).Scan(&connection.ID, &connection.CreatedAt, &connection.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrConnectionExists
		}
		logger.Error().Err(err).Int64("requesterID", requesterID).Int64("addresseeID", addresseeID).Msg("Error executing create connection query")
		return nil, fmt.Errorf("error inserting connection: %w", err)
	}

	logger.Info().Int64("requesterID", requesterID).Int64("addresseeID", addresseeID).Msg("Connection request created")
	return connection, nil
}

// GetConnectionByPair retrieves the connection between two profiles in either direction
func (r *ConnectionRepository) GetConnectionByPair(ctx context.Context, profileA, profileB int64) (*models.Connection, error) {
	querySql, args, err := r.sb.Select("id", "requester_id", "addressee_id", "status", "created_at", "updated_at").
		From("connections").
		Where(squirrel.Or{
			squirrel.Eq{"requester_id": profileA, "addressee_id": profileB},
			squirrel.Eq{"requester_id": profileB, "addressee_id": profileA},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get connection by pair SQL")
		return nil, fmt.Errorf("failed to build get connection query: %w", err)
	}

	var connection models.Connection
	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&connection.ID, &connection.RequesterID, &connection.AddresseeID,
		&connection.Status, &connection.CreatedAt, &connection.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrConnectionNotFound
		}
		logger.Error().Err(err).Msg("Error scanning connection row")
		return nil, fmt.Errorf("error querying connection: %w", err)
	}

	return &connection, nil
}

// UpdateConnectionStatus sets the status of the pending request from requesterID to addresseeID
func (r *ConnectionRepository) UpdateConnectionStatus(ctx context.Context, requesterID, addresseeID int64, status models.ConnectionStatus) error {
	querySql, args, err := r.sb.Update("connections").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{
			"requester_id": requesterID,
			"addressee_id": addresseeID,
			"status":       models.ConnectionStatusPending,
		}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update connection SQL")
		return fmt.Errorf("failed to build update connection query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("requesterID", requesterID).Int64("addresseeID", addresseeID).Msg("Error executing update connection query")
		return fmt.Errorf("error updating connection: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConnectionNotFound
	}

	logger.Info().Int64("requesterID", requesterID).Int64("addresseeID", addresseeID).Str("status", string(status)).Msg("Connection status updated")
	return nil
}

// GetConnectionsForProfile retrieves every connection touching a profile, with
// the other side's profile joined. Newest first.
func (r *ConnectionRepository) GetConnectionsForProfile(ctx context.Context, profileID int64) ([]models.Connection, error) {
	querySql, args, err := r.sb.Select(
		"c.id", "c.requester_id", "c.addressee_id", "c.status", "c.created_at", "c.updated_at",
		"p.id", "p.full_name", "p.headline", "p.avatar_url",
	).
		From("connections c").
		Join("profiles p ON p.id = CASE WHEN c.requester_id = ? THEN c.addressee_id ELSE c.requester_id END", profileID).
		Where(squirrel.Or{
			squirrel.Eq{"c.requester_id": profileID},
			squirrel.Eq{"c.addressee_id": profileID},
		}).
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get connections SQL")
		return nil, fmt.Errorf("failed to build get connections query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("profileID", profileID).Msg("Error executing get connections query")
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}
	defer rows.Close()

	connections := []models.Connection{}
	for rows.Next() {
		var connection models.Connection
		var peer models.Profile
		var headline, avatarURL sql.NullString

		err := rows.Scan(
			&connection.ID, &connection.RequesterID, &connection.AddresseeID,
			&connection.Status, &connection.CreatedAt, &connection.UpdatedAt,
			&peer.ID, &peer.FullName, &headline, &avatarURL,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning connection row")
			return nil, fmt.Errorf("failed to scan connection row: %w", err)
		}

		if headline.Valid {
			peer.Headline = &headline.String
		}
		if avatarURL.Valid {
			peer.AvatarURL = &avatarURL.String
		}
		connection.Peer = &peer

		connections = append(connections, connection)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating connection rows: %w", err)
	}

	return connections, nil
}
