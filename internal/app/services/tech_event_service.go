package services

import (
	"context"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/pkg/apperrors"
	"github.com/profilytics/backend/internal/pkg/helpers"
)

// techEventStore is the event access the tech event service needs
type techEventStore interface {
	GetAllTechEvents(ctx context.Context) ([]models.TechEvent, error)
	GetTechEventByID(ctx context.Context, id int64) (*models.TechEvent, error)
	CreateTechEvent(ctx context.Context, event *models.TechEvent) (int64, error)
	UpdateTechEvent(ctx context.Context, event *models.TechEvent) error
	DeleteTechEvent(ctx context.Context, id int64) error
}

// TechEventService defines the interface for tech event operations
type TechEventService interface {
	GetTechEvents(ctx context.Context, search string, page, size int) (*dto.PaginatedResponse, error)
	GetTechEvent(ctx context.Context, id int64) (*models.TechEvent, error)
	CreateTechEvent(ctx context.Context, actorID int64, req *dto.CreateTechEventRequest) (*models.TechEvent, error)
	UpdateTechEvent(ctx context.Context, actorID, id int64, req *dto.UpdateTechEventRequest) (*models.TechEvent, error)
	DeleteTechEvent(ctx context.Context, actorID, id int64) error
}

// techEventServiceImpl implements TechEventService
type techEventServiceImpl struct {
	eventRepo techEventStore
}

// NewTechEventService creates a new TechEventService
func NewTechEventService(eventRepo techEventStore) TechEventService {
	return &techEventServiceImpl{eventRepo: eventRepo}
}

func techEventSearchFields(event models.TechEvent) []string {
	fields := []string{event.Title, event.Type, event.Description}
	if event.Location != nil {
		fields = append(fields, *event.Location)
	}
	return fields
}

// GetTechEvents loads the full calendar, applies the search filter, then paginates
func (s *techEventServiceImpl) GetTechEvents(ctx context.Context, search string, page, size int) (*dto.PaginatedResponse, error) {
	events, err := s.eventRepo.GetAllTechEvents(ctx)
	if err != nil {
		return nil, err
	}

	filtered := helpers.FilterBySearch(events, search, techEventSearchFields)

	start, end := helpers.CalculateSliceIndices(page, size, len(filtered))
	return &dto.PaginatedResponse{
		Items:      filtered[start:end],
		Pagination: helpers.NewPaginationInfo(int64(len(filtered)), page, size),
	}, nil
}

// GetTechEvent retrieves a single tech event
func (s *techEventServiceImpl) GetTechEvent(ctx context.Context, id int64) (*models.TechEvent, error) {
	return s.eventRepo.GetTechEventByID(ctx, id)
}

// CreateTechEvent publishes a tech event on behalf of the acting user
func (s *techEventServiceImpl) CreateTechEvent(ctx context.Context, actorID int64, req *dto.CreateTechEventRequest) (*models.TechEvent, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	event := &models.TechEvent{
		Title:                req.Title,
		Type:                 req.Type,
		Description:          req.Description,
		EventDate:            req.EventDate,
		Location:             req.Location,
		IsOnline:             req.IsOnline,
		MaxParticipants:      req.MaxParticipants,
		RegistrationDeadline: req.RegistrationDeadline,
		IsFree:               req.IsFree,
		TicketPrice:          req.TicketPrice,
		Link:                 req.Link,
		OrganizerID:          actorID,
	}

	if !event.IsFree && event.TicketPrice == nil {
		return nil, apperrors.NewValidationError("ticketPrice is required for paid events")
	}

	if _, err := s.eventRepo.CreateTechEvent(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// UpdateTechEvent edits an event. Only the organizer may edit.
func (s *techEventServiceImpl) UpdateTechEvent(ctx context.Context, actorID, id int64, req *dto.UpdateTechEventRequest) (*models.TechEvent, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	event, err := s.eventRepo.GetTechEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != actorID {
		return nil, apperrors.ErrPermissionDenied
	}

	event.Title = req.Title
	event.Type = req.Type
	event.Description = req.Description
	event.EventDate = req.EventDate
	event.Location = req.Location
	event.IsOnline = req.IsOnline
	event.MaxParticipants = req.MaxParticipants
	event.RegistrationDeadline = req.RegistrationDeadline
	event.IsFree = req.IsFree
	event.TicketPrice = req.TicketPrice
	event.Link = req.Link

	if !event.IsFree && event.TicketPrice == nil {
		return nil, apperrors.NewValidationError("ticketPrice is required for paid events")
	}

	if err := s.eventRepo.UpdateTechEvent(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteTechEvent removes an event. Only the organizer may delete.
func (s *techEventServiceImpl) DeleteTechEvent(ctx context.Context, actorID, id int64) error {
	if actorID == 0 {
		return apperrors.ErrAuthRequired
	}

	event, err := s.eventRepo.GetTechEventByID(ctx, id)
	if err != nil {
		return err
	}
	if event.OrganizerID != actorID {
		return apperrors.ErrPermissionDenied
	}

	return s.eventRepo.DeleteTechEvent(ctx, id)
}
