package services

import (
	"context"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/pkg/apperrors"
	"github.com/profilytics/backend/internal/pkg/helpers"
)

// hackathonStore is the hackathon access the hackathon service needs
type hackathonStore interface {
	GetAllHackathons(ctx context.Context) ([]models.Hackathon, error)
	GetHackathonByID(ctx context.Context, id int64) (*models.Hackathon, error)
	CreateHackathon(ctx context.Context, hackathon *models.Hackathon) (int64, error)
	UpdateHackathon(ctx context.Context, hackathon *models.Hackathon) error
	DeleteHackathon(ctx context.Context, id int64) error
}

// HackathonService defines the interface for hackathon operations
type HackathonService interface {
	GetHackathons(ctx context.Context, search string, page, size int) (*dto.PaginatedResponse, error)
	GetHackathon(ctx context.Context, id int64) (*models.Hackathon, error)
	CreateHackathon(ctx context.Context, actorID int64, req *dto.CreateHackathonRequest) (*models.Hackathon, error)
	UpdateHackathon(ctx context.Context, actorID, id int64, req *dto.UpdateHackathonRequest) (*models.Hackathon, error)
	DeleteHackathon(ctx context.Context, actorID, id int64) error
}

// hackathonServiceImpl implements HackathonService
type hackathonServiceImpl struct {
	hackathonRepo hackathonStore
}

// NewHackathonService creates a new HackathonService
func NewHackathonService(hackathonRepo hackathonStore) HackathonService {
	return &hackathonServiceImpl{hackathonRepo: hackathonRepo}
}

func hackathonSearchFields(hackathon models.Hackathon) []string {
	fields := []string{hackathon.Title, hackathon.Description}
	if hackathon.Location != nil {
		fields = append(fields, *hackathon.Location)
	}
	return fields
}

// GetHackathons loads all hackathons, applies the search filter, then paginates
func (s *hackathonServiceImpl) GetHackathons(ctx context.Context, search string, page, size int) (*dto.PaginatedResponse, error) {
	hackathons, err := s.hackathonRepo.GetAllHackathons(ctx)
	if err != nil {
		return nil, err
	}

	filtered := helpers.FilterBySearch(hackathons, search, hackathonSearchFields)

	start, end := helpers.CalculateSliceIndices(page, size, len(filtered))
	return &dto.PaginatedResponse{
		Items:      filtered[start:end],
		Pagination: helpers.NewPaginationInfo(int64(len(filtered)), page, size),
	}, nil
}

// GetHackathon retrieves a single hackathon
func (s *hackathonServiceImpl) GetHackathon(ctx context.Context, id int64) (*models.Hackathon, error) {
	return s.hackathonRepo.GetHackathonByID(ctx, id)
}

// CreateHackathon publishes a hackathon on behalf of the acting user
func (s *hackathonServiceImpl) CreateHackathon(ctx context.Context, actorID int64, req *dto.CreateHackathonRequest) (*models.Hackathon, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewValidationError("endDate must not be before startDate")
	}

	hackathon := &models.Hackathon{
		Title:                req.Title,
		Description:          req.Description,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		Location:             req.Location,
		IsOnline:             req.IsOnline,
		MaxTeamSize:          req.MaxTeamSize,
		PrizePool:            req.PrizePool,
		Requirements:         req.Requirements,
		Link:                 req.Link,
		RegistrationDeadline: req.RegistrationDeadline,
		OrganizerID:          actorID,
	}

	if _, err := s.hackathonRepo.CreateHackathon(ctx, hackathon); err != nil {
		return nil, err
	}

	return hackathon, nil
}

// UpdateHackathon edits a hackathon. Only the organizer may edit.
func (s *hackathonServiceImpl) UpdateHackathon(ctx context.Context, actorID, id int64, req *dto.UpdateHackathonRequest) (*models.Hackathon, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewValidationError("endDate must not be before startDate")
	}

	hackathon, err := s.hackathonRepo.GetHackathonByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hackathon.OrganizerID != actorID {
		return nil, apperrors.ErrPermissionDenied
	}

	hackathon.Title = req.Title
	hackathon.Description = req.Description
	hackathon.StartDate = req.StartDate
	hackathon.EndDate = req.EndDate
	hackathon.Location = req.Location
	hackathon.IsOnline = req.IsOnline
	hackathon.MaxTeamSize = req.MaxTeamSize
	hackathon.PrizePool = req.PrizePool
	hackathon.Requirements = req.Requirements
	hackathon.Link = req.Link
	hackathon.RegistrationDeadline = req.RegistrationDeadline

	if err := s.hackathonRepo.UpdateHackathon(ctx, hackathon); err != nil {
		return nil, err
	}

	return hackathon, nil
}

// DeleteHackathon removes a hackathon. Only the organizer may delete.
func (s *hackathonServiceImpl) DeleteHackathon(ctx context.Context, actorID, id int64) error {
	if actorID == 0 {
		return apperrors.ErrAuthRequired
	}

	hackathon, err := s.hackathonRepo.GetHackathonByID(ctx, id)
	if err != nil {
		return err
	}
	if hackathon.OrganizerID != actorID {
		return apperrors.ErrPermissionDenied
	}

	return s.hackathonRepo.DeleteHackathon(ctx, id)
}
