package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/db"
	"github.com/profilytics/backend/internal/pkg/apperrors"
	"github.com/profilytics/backend/internal/pkg/dberrors"
	"github.com/profilytics/backend/internal/pkg/logger"
)

// UserRepository handles user account database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateUserWithProfile inserts a user account and its empty profile in one
// transaction. The profile shares the user's id.
func (r *UserRepository) CreateUserWithProfile(ctx context.Context, user *models.User, fullName string) error {
	err := db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		userSql, userArgs, err := r.sb.Insert("users").
			Columns("email", "password").
			Values(user.Email, user.Password).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building create user SQL")
			return fmt.Errorf("failed to build create user query: %w", err)
		}

		if err := tx.QueryRow(ctx, userSql, userArgs...).Scan(&user.ID, &user.CreatedAt); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
			return fmt.Errorf("error inserting user: %w", err)
		}

		profileSql, profileArgs, err := r.sb.Insert("profiles").
			Columns("id", "full_name").
			Values(user.ID, fullName).
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building create profile SQL")
			return fmt.Errorf("failed to build create profile query: %w", err)
		}

		if _, err := tx.Exec(ctx, profileSql, profileArgs...); err != nil {
			logger.Error().Err(err).Int64("userID", user.ID).Msg("Error executing create profile query")
			return fmt.Errorf("error inserting profile: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("User registered")
	return nil
}

// GetUserByEmail retrieves a user account by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	querySql, args, err := r.sb.Select("id", "email", "password", "created_at").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by email SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	var user models.User
	err = r.db.QueryRow(ctx, querySql, args...).Scan(&user.ID, &user.Email, &user.Password, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning user row by email")
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user account by id
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	querySql, args, err := r.sb.Select("id", "email", "password", "created_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by ID SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	var user models.User
	err = r.db.QueryRow(ctx, querySql, args...).Scan(&user.ID, &user.Email, &user.Password, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row by ID")
		return nil, fmt.Errorf("error querying user ID=%d: %w", id, err)
	}

	return &user, nil
}
