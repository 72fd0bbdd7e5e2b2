package services

import (
	"context"
	"errors"
	"testing"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/pkg/apperrors"
)

type fakeConnectionStore struct {
	connections []*models.Connection
	nextID      int64
	createCalls int
}

func newFakeConnectionStore() *fakeConnectionStore {
	return &fakeConnectionStore{nextID: 1}
}

func (f *fakeConnectionStore) pair(profileA, profileB int64) *models.Connection {
	for _, connection := range f.connections {
		if (connection.RequesterID == profileA && connection.AddresseeID == profileB) ||
			(connection.RequesterID == profileB && connection.AddresseeID == profileA) {
			return connection
		}
	}
	return nil
}

func (f *fakeConnectionStore) CreateConnection(ctx context.Context, requesterID, addresseeID int64) (*models.Connection, error) {
	f.createCalls++
	if f.pair(requesterID, addresseeID) != nil {
		return nil, apperrors.ErrConnectionExists
	}
	connection := &models.Connection{
		ID:          f.nextID,
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      models.ConnectionStatusPending,
	}
	f.nextID++
	f.connections = append(f.connections, connection)
	copied := *connection
	return &copied, nil
}

func (f *fakeConnectionStore) GetConnectionByPair(ctx context.Context, profileA, profileB int64) (*models.Connection, error) {
	connection := f.pair(profileA, profileB)
	if connection == nil {
		return nil, apperrors.ErrConnectionNotFound
	}
	copied := *connection
	return &copied, nil
}

func (f *fakeConnectionStore) UpdateConnectionStatus(ctx context.Context, requesterID, addresseeID int64, status models.ConnectionStatus) error {
	for _, connection := range f.connections {
		if connection.RequesterID == requesterID && connection.AddresseeID == addresseeID &&
			connection.Status == models.ConnectionStatusPending {
			connection.Status = status
			return nil
		}
	}
	return apperrors.ErrConnectionNotFound
}

func (f *fakeConnectionStore) GetConnectionsForProfile(ctx context.Context, profileID int64) ([]models.Connection, error) {
	var out []models.Connection
	for _, connection := range f.connections {
		if connection.RequesterID == profileID || connection.AddresseeID == profileID {
			out = append(out, *connection)
		}
	}
	return out, nil
}

type fakeConnectionProfiles struct {
	profiles map[int64]*models.Profile
}

func (f *fakeConnectionProfiles) GetProfileByID(ctx context.Context, id int64) (*models.Profile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	return profile, nil
}

func newConnectionFixture(profileIDs ...int64) (*fakeConnectionStore, ConnectionService) {
	store := newFakeConnectionStore()
	profiles := &fakeConnectionProfiles{profiles: make(map[int64]*models.Profile)}
	for _, id := range profileIDs {
		profiles.profiles[id] = &models.Profile{ID: id}
	}
	return store, NewConnectionService(store, profiles)
}

func TestRequestConnectionRejectsSelf(t *testing.T) {
	store, service := newConnectionFixture(1)

	_, err := service.RequestConnection(context.Background(), 1, 1)
	if !errors.Is(err, apperrors.ErrSelfConnection) {
		t.Fatalf("err = %v, want ErrSelfConnection", err)
	}
	if store.createCalls != 0 {
		t.Errorf("createCalls = %d, want 0", store.createCalls)
	}
}

func TestRequestConnectionDuplicateEitherDirection(t *testing.T) {
	store, service := newConnectionFixture(1, 2)

	if _, err := service.RequestConnection(context.Background(), 1, 2); err != nil {
		t.Fatalf("RequestConnection: %v", err)
	}
	if _, err := service.RequestConnection(context.Background(), 1, 2); !errors.Is(err, apperrors.ErrConnectionExists) {
		t.Fatalf("same direction err = %v, want ErrConnectionExists", err)
	}
	if _, err := service.RequestConnection(context.Background(), 2, 1); !errors.Is(err, apperrors.ErrConnectionExists) {
		t.Fatalf("reverse direction err = %v, want ErrConnectionExists", err)
	}

	// The pair lookup catches duplicates before any insert is attempted
	if store.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", store.createCalls)
	}
}

func TestRespondToConnection(t *testing.T) {
	store, service := newConnectionFixture(1, 2)

	if _, err := service.RequestConnection(context.Background(), 1, 2); err != nil {
		t.Fatalf("RequestConnection: %v", err)
	}

	// Only the addressee holds a pending request to respond to
	if err := service.RespondToConnection(context.Background(), 1, 2, models.ConnectionStatusAccepted); !errors.Is(err, apperrors.ErrConnectionNotFound) {
		t.Fatalf("requester respond err = %v, want ErrConnectionNotFound", err)
	}

	if err := service.RespondToConnection(context.Background(), 2, 1, models.ConnectionStatusAccepted); err != nil {
		t.Fatalf("RespondToConnection: %v", err)
	}
	connection, err := store.GetConnectionByPair(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("GetConnectionByPair: %v", err)
	}
	if connection.Status != models.ConnectionStatusAccepted {
		t.Errorf("status = %s, want accepted", connection.Status)
	}

	// A settled connection cannot be responded to again
	if err := service.RespondToConnection(context.Background(), 2, 1, models.ConnectionStatusRejected); !errors.Is(err, apperrors.ErrConnectionNotFound) {
		t.Fatalf("second respond err = %v, want ErrConnectionNotFound", err)
	}
}
