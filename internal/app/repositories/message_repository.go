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

// MessageRepository handles message database operations
type MessageRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *MessageRepository) selectMessages() squirrel.SelectBuilder {
	return r.sb.Select(
		"m.id", "m.content", "m.sender_id", "m.receiver_id", "m.community_id",
		"m.type", "m.read", "m.created_at",
		"COALESCE(p.full_name, '') as sender_name",
	).
		From("messages m").
		LeftJoin("profiles p ON m.sender_id = p.id")
}

func scanMessage(row pgx.Row) (*models.Message, error) {
	var message models.Message
	var receiverID, communityID sql.NullInt64

	err := row.Scan(
		&message.ID, &message.Content, &message.SenderID, &receiverID, &communityID,
		&message.Type, &message.Read, &message.CreatedAt,
		&message.SenderName,
	)
	if err != nil {
		return nil, err
	}

	if receiverID.Valid {
		message.ReceiverID = &receiverID.Int64
	}
	if communityID.Valid {
		message.CommunityID = &communityID.Int64
	}

	return &message, nil
}

// CreateMessage inserts a message and returns the stored row with the sender name joined
func (r *MessageRepository) CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	querySql, args, err := r.sb.Insert("messages").
		Columns("content", "sender_id", "receiver_id", "community_id", "type").
		Values(
			message.Content, message.SenderID,
			message.ReceiverID, message.CommunityID, message.Type,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create message SQL")
		return nil, fmt.Errorf("failed to build create message query: %w", err)
	}

	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&message.ID, &message.CreatedAt); err != nil {
		// The receiver or community may have been deleted between the
		// service's membership check and this insert.
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("senderID", message.SenderID).Msg("Error executing create message query")
		return nil, fmt.Errorf("error inserting message: %w", err)
	}

	// Re-read with the sender profile joined so subscribers get a complete row
	return r.GetMessageByID(ctx, message.ID)
}

// GetMessageByID retrieves a message by its ID including the sender name
func (r *MessageRepository) GetMessageByID(ctx context.Context, id int64) (*models.Message, error) {
	querySql, args, err := r.selectMessages().
		Where(squirrel.Eq{"m.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get message by ID SQL")
		return nil, fmt.Errorf("failed to build get message query: %w", err)
	}

	message, err := scanMessage(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMessageNotFound
		}
		logger.Error().Err(err).Int64("messageID", id).Msg("Error scanning message row by ID")
		return nil, fmt.Errorf("error querying message ID=%d: %w", id, err)
	}

	return message, nil
}

// GetDirectConversation retrieves all direct messages between two profiles,
// both directions, oldest first.
func (r *MessageRepository) GetDirectConversation(ctx context.Context, profileA, profileB int64) ([]models.Message, error) {
	querySql, args, err := r.selectMessages().
		Where(squirrel.Eq{"m.type": models.MessageTypeDirect}).
		Where(squirrel.Or{
			squirrel.Eq{"m.sender_id": profileA, "m.receiver_id": profileB},
			squirrel.Eq{"m.sender_id": profileB, "m.receiver_id": profileA},
		}).
		OrderBy("m.created_at ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get direct conversation SQL")
		return nil, fmt.Errorf("failed to build get direct conversation query: %w", err)
	}

	return r.queryMessages(ctx, querySql, args)
}

// GetCommunityConversation retrieves all messages of a community, oldest first
func (r *MessageRepository) GetCommunityConversation(ctx context.Context, communityID int64) ([]models.Message, error) {
	querySql, args, err := r.selectMessages().
		Where(squirrel.Eq{"m.community_id": communityID}).
		OrderBy("m.created_at ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get community conversation SQL")
		return nil, fmt.Errorf("failed to build get community conversation query: %w", err)
	}

	return r.queryMessages(ctx, querySql, args)
}

func (r *MessageRepository) queryMessages(ctx context.Context, querySql string, args []interface{}) ([]models.Message, error) {
	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing messages query")
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning message row")
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, *message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, nil
}

// MarkMessageRead marks a direct message read. Only the receiver's id matches.
func (r *MessageRepository) MarkMessageRead(ctx context.Context, messageID, receiverID int64) error {
	querySql, args, err := r.sb.Update("messages").
		Set("read", true).
		Where(squirrel.Eq{"id": messageID, "receiver_id": receiverID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building mark message read SQL")
		return fmt.Errorf("failed to build mark message read query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("messageID", messageID).Msg("Error executing mark message read query")
		return fmt.Errorf("error marking message read: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}

	return nil
}
