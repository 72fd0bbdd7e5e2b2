package services

import (
	"context"
	"errors"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/pkg/apperrors"
	"github.com/profilytics/backend/internal/pkg/helpers"
)

// communityStore is the community access the community service needs
type communityStore interface {
	GetAllCommunities(ctx context.Context) ([]models.Community, error)
	GetCommunityByID(ctx context.Context, id int64) (*models.Community, error)
	CreateCommunity(ctx context.Context, community *models.Community) (int64, error)
	UpdateCommunity(ctx context.Context, community *models.Community) error
	DeleteCommunity(ctx context.Context, id int64) error
}

// memberStore is the membership access the community service needs
type memberStore interface {
	CreateMember(ctx context.Context, communityID, profileID int64) (*models.CommunityMember, error)
	GetMember(ctx context.Context, communityID, profileID int64) (*models.CommunityMember, error)
	GetMembers(ctx context.Context, communityID int64) ([]models.CommunityMember, error)
	ApproveMember(ctx context.Context, communityID, profileID int64) error
	DeleteMember(ctx context.Context, communityID, profileID int64) error
}

// CommunityService defines the interface for community and membership operations
type CommunityService interface {
	GetCommunities(ctx context.Context, search string, page, size int) (*dto.PaginatedResponse, error)
	GetCommunity(ctx context.Context, id int64) (*models.Community, error)
	CreateCommunity(ctx context.Context, actorID int64, req *dto.CreateCommunityRequest) (*models.Community, error)
	UpdateCommunity(ctx context.Context, actorID, id int64, req *dto.UpdateCommunityRequest) (*models.Community, error)
	DeleteCommunity(ctx context.Context, actorID, id int64) error

	RequestJoin(ctx context.Context, actorID, communityID int64) (*models.CommunityMember, error)
	GetMembers(ctx context.Context, communityID int64) ([]models.CommunityMember, error)
	ApproveMember(ctx context.Context, actorID, communityID, profileID int64) error
	RemoveMember(ctx context.Context, actorID, communityID, profileID int64) error
}

// communityServiceImpl implements CommunityService
type communityServiceImpl struct {
	communityRepo communityStore
	memberRepo    memberStore
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(communityRepo communityStore, memberRepo memberStore) CommunityService {
	return &communityServiceImpl{
		communityRepo: communityRepo,
		memberRepo:    memberRepo,
	}
}

func communitySearchFields(community models.Community) []string {
	fields := []string{community.Name, community.Description}
	if community.CollegeName != nil {
		fields = append(fields, *community.CollegeName)
	}
	return fields
}

// validateCommunityType checks the cross-field rules per community type.
// External communities point somewhere, so they need a link; private ones are
// scoped to a college.
func validateCommunityType(communityType models.CommunityType, link, collegeName *string) error {
	switch communityType {
	case models.CommunityTypeExternal:
		if link == nil || *link == "" {
			return apperrors.NewValidationError("link is required for external communities")
		}
	case models.CommunityTypePrivate:
		if collegeName == nil || *collegeName == "" {
			return apperrors.NewValidationError("collegeName is required for private communities")
		}
	}
	return nil
}

// GetCommunities loads all communities, applies the search filter, then paginates
func (s *communityServiceImpl) GetCommunities(ctx context.Context, search string, page, size int) (*dto.PaginatedResponse, error) {
	communities, err := s.communityRepo.GetAllCommunities(ctx)
	if err != nil {
		return nil, err
	}

	filtered := helpers.FilterBySearch(communities, search, communitySearchFields)

	start, end := helpers.CalculateSliceIndices(page, size, len(filtered))
	return &dto.PaginatedResponse{
		Items:      filtered[start:end],
		Pagination: helpers.NewPaginationInfo(int64(len(filtered)), page, size),
	}, nil
}

// GetCommunity retrieves a single community
func (s *communityServiceImpl) GetCommunity(ctx context.Context, id int64) (*models.Community, error) {
	return s.communityRepo.GetCommunityByID(ctx, id)
}

// CreateCommunity creates a community on behalf of the acting user.
// is_private is always derived from the community type, never taken from input.
func (s *communityServiceImpl) CreateCommunity(ctx context.Context, actorID int64, req *dto.CreateCommunityRequest) (*models.Community, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	communityType := models.CommunityType(req.CommunityType)
	if err := validateCommunityType(communityType, req.Link, req.CollegeName); err != nil {
		return nil, err
	}

	community := &models.Community{
		Name:          req.Name,
		Description:   req.Description,
		Link:          req.Link,
		CommunityType: communityType,
		IsPrivate:     communityType == models.CommunityTypePrivate,
		CollegeName:   req.CollegeName,
		CreatorID:     actorID,
	}

	if _, err := s.communityRepo.CreateCommunity(ctx, community); err != nil {
		return nil, err
	}

	return community, nil
}

// UpdateCommunity edits a community. Only the creator may edit.
func (s *communityServiceImpl) UpdateCommunity(ctx context.Context, actorID, id int64, req *dto.UpdateCommunityRequest) (*models.Community, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	communityType := models.CommunityType(req.CommunityType)
	if err := validateCommunityType(communityType, req.Link, req.CollegeName); err != nil {
		return nil, err
	}

	community, err := s.communityRepo.GetCommunityByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if community.CreatorID != actorID {
		return nil, apperrors.ErrPermissionDenied
	}

	community.Name = req.Name
	community.Description = req.Description
	community.Link = req.Link
	community.CommunityType = communityType
	community.IsPrivate = communityType == models.CommunityTypePrivate
	community.CollegeName = req.CollegeName

	if err := s.communityRepo.UpdateCommunity(ctx, community); err != nil {
		return nil, err
	}

	return community, nil
}

// DeleteCommunity removes a community. Only the creator may delete.
func (s *communityServiceImpl) DeleteCommunity(ctx context.Context, actorID, id int64) error {
	if actorID == 0 {
		return apperrors.ErrAuthRequired
	}

	community, err := s.communityRepo.GetCommunityByID(ctx, id)
	if err != nil {
		return err
	}
	if community.CreatorID != actorID {
		return apperrors.ErrPermissionDenied
	}

	return s.communityRepo.DeleteCommunity(ctx, id)
}

// RequestJoin files a join request for the acting user. A repeat request, or a
// request while already a member, changes nothing and reports the conflict.
func (s *communityServiceImpl) RequestJoin(ctx context.Context, actorID, communityID int64) (*models.CommunityMember, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	if _, err := s.communityRepo.GetCommunityByID(ctx, communityID); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.CreateMember(ctx, communityID, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyRequested) {
			// Distinguish a pending request from full membership
			existing, lookupErr := s.memberRepo.GetMember(ctx, communityID, actorID)
			if lookupErr == nil && existing.Status == models.MemberStatusApproved {
				return nil, apperrors.ErrAlreadyMember
			}
		}
		return nil, err
	}

	return member, nil
}

// GetMembers lists all membership rows of a community with member profiles
func (s *communityServiceImpl) GetMembers(ctx context.Context, communityID int64) ([]models.CommunityMember, error) {
	if _, err := s.communityRepo.GetCommunityByID(ctx, communityID); err != nil {
		return nil, err
	}

	return s.memberRepo.GetMembers(ctx, communityID)
}

// ApproveMember approves a pending join request. Only the community creator
// may approve; approval also enables messaging for the member.
func (s *communityServiceImpl) ApproveMember(ctx context.Context, actorID, communityID, profileID int64) error {
	if actorID == 0 {
		return apperrors.ErrAuthRequired
	}

	community, err := s.communityRepo.GetCommunityByID(ctx, communityID)
	if err != nil {
		return err
	}
	if community.CreatorID != actorID {
		return apperrors.ErrPermissionDenied
	}

	return s.memberRepo.ApproveMember(ctx, communityID, profileID)
}

// RemoveMember rejects a pending request or removes a member; both delete the
// membership row. The creator may remove anyone; a member may remove themselves.
func (s *communityServiceImpl) RemoveMember(ctx context.Context, actorID, communityID, profileID int64) error {
	if actorID == 0 {
		return apperrors.ErrAuthRequired
	}

	community, err := s.communityRepo.GetCommunityByID(ctx, communityID)
	if err != nil {
		return err
	}
	if community.CreatorID != actorID && actorID != profileID {
		return apperrors.ErrPermissionDenied
	}

	return s.memberRepo.DeleteMember(ctx, communityID, profileID)
}
