package services

import (
	"context"
	"errors"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/pkg/apperrors"
)

// connectionStore is the connection graph access the connection service needs
type connectionStore interface {
	CreateConnection(ctx context.Context, requesterID, addresseeID int64) (*models.Connection, error)
	GetConnectionByPair(ctx context.Context, profileA, profileB int64) (*models.Connection, error)
	UpdateConnectionStatus(ctx context.Context, requesterID, addresseeID int64, status models.ConnectionStatus) error
	GetConnectionsForProfile(ctx context.Context, profileID int64) ([]models.Connection, error)
}

// connectionProfileStore resolves the profile a connection is addressed to
type connectionProfileStore interface {
	GetProfileByID(ctx context.Context, id int64) (*models.Profile, error)
}

// ConnectionService defines the interface for the connection graph
type ConnectionService interface {
	RequestConnection(ctx context.Context, actorID, addresseeID int64) (*models.Connection, error)
	RespondToConnection(ctx context.Context, actorID, requesterID int64, status models.ConnectionStatus) error
	GetConnections(ctx context.Context, actorID int64) ([]models.Connection, error)
}

// connectionServiceImpl implements ConnectionService
type connectionServiceImpl struct {
	connectionRepo connectionStore
	profileRepo    connectionProfileStore
}

// NewConnectionService creates a new ConnectionService
func NewConnectionService(connectionRepo connectionStore, profileRepo connectionProfileStore) ConnectionService {
	return &connectionServiceImpl{
		connectionRepo: connectionRepo,
		profileRepo:    profileRepo,
	}
}

// RequestConnection files a pending connection request from the acting user.
// At most one connection exists per pair of profiles regardless of direction.
func (s *connectionServiceImpl) RequestConnection(ctx context.Context, actorID, addresseeID int64) (*models.Connection, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}
	if actorID == addresseeID {
		return nil, apperrors.ErrSelfConnection
	}

	if _, err := s.profileRepo.GetProfileByID(ctx, addresseeID); err != nil {
		return nil, err
	}

	// A settled or pending connection in either direction blocks a new
	// request. The unique pair index backstops concurrent requests.
	if _, err := s.connectionRepo.GetConnectionByPair(ctx, actorID, addresseeID); err == nil {
		return nil, apperrors.ErrConnectionExists
	} else if !errors.Is(err, apperrors.ErrConnectionNotFound) {
		return nil, err
	}

	return s.connectionRepo.CreateConnection(ctx, actorID, addresseeID)
}

// RespondToConnection accepts or rejects a pending request addressed to the
// acting user. Only the addressee may respond.
func (s *connectionServiceImpl) RespondToConnection(ctx context.Context, actorID, requesterID int64, status models.ConnectionStatus) error {
	if actorID == 0 {
		return apperrors.ErrAuthRequired
	}
	if status != models.ConnectionStatusAccepted && status != models.ConnectionStatusRejected {
		return apperrors.NewValidationError("status must be accepted or rejected")
	}

	return s.connectionRepo.UpdateConnectionStatus(ctx, requesterID, actorID, status)
}

// GetConnections lists all connections of the acting user in either direction,
// with the peer profile attached to each entry.
func (s *connectionServiceImpl) GetConnections(ctx context.Context, actorID int64) ([]models.Connection, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	return s.connectionRepo.GetConnectionsForProfile(ctx, actorID)
}
