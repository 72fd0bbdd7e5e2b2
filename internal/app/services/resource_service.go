package services

import (
	"context"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/pkg/apperrors"
	"github.com/profilytics/backend/internal/pkg/helpers"
)

// resourceStore is the resource access the resource service needs
type resourceStore interface {
	GetAllResources(ctx context.Context) ([]models.Resource, error)
	GetResourceByID(ctx context.Context, id int64) (*models.Resource, error)
	CreateResource(ctx context.Context, resource *models.Resource) (int64, error)
	DeleteResource(ctx context.Context, id int64) error
}

// ResourceService defines the interface for learning resource operations.
// Resources are create-and-delete only; there is no edit flow.
type ResourceService interface {
	GetResources(ctx context.Context, search string, page, size int) (*dto.PaginatedResponse, error)
	GetResource(ctx context.Context, id int64) (*models.Resource, error)
	CreateResource(ctx context.Context, actorID int64, req *dto.CreateResourceRequest) (*models.Resource, error)
	DeleteResource(ctx context.Context, actorID, id int64) error
}

// resourceServiceImpl implements ResourceService
type resourceServiceImpl struct {
	resourceRepo resourceStore
}

// NewResourceService creates a new ResourceService
func NewResourceService(resourceRepo resourceStore) ResourceService {
	return &resourceServiceImpl{resourceRepo: resourceRepo}
}

func resourceSearchFields(resource models.Resource) []string {
	return []string{resource.Title, resource.Description, resource.Type}
}

// GetResources loads all resources, applies the search filter, then paginates
func (s *resourceServiceImpl) GetResources(ctx context.Context, search string, page, size int) (*dto.PaginatedResponse, error) {
	resources, err := s.resourceRepo.GetAllResources(ctx)
	if err != nil {
		return nil, err
	}

	filtered := helpers.FilterBySearch(resources, search, resourceSearchFields)

	start, end := helpers.CalculateSliceIndices(page, size, len(filtered))
	return &dto.PaginatedResponse{
		Items:      filtered[start:end],
		Pagination: helpers.NewPaginationInfo(int64(len(filtered)), page, size),
	}, nil
}

// GetResource retrieves a single resource
func (s *resourceServiceImpl) GetResource(ctx context.Context, id int64) (*models.Resource, error) {
	return s.resourceRepo.GetResourceByID(ctx, id)
}

// CreateResource shares a resource on behalf of the acting user
func (s *resourceServiceImpl) CreateResource(ctx context.Context, actorID int64, req *dto.CreateResourceRequest) (*models.Resource, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	resource := &models.Resource{
		Title:         req.Title,
		Description:   req.Description,
		URL:           req.URL,
		Type:          req.Type,
		Content:       req.Content,
		ContributorID: actorID,
	}

	if _, err := s.resourceRepo.CreateResource(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

// DeleteResource removes a resource. Only the contributor may delete.
func (s *resourceServiceImpl) DeleteResource(ctx context.Context, actorID, id int64) error {
	if actorID == 0 {
		return apperrors.ErrAuthRequired
	}

	resource, err := s.resourceRepo.GetResourceByID(ctx, id)
	if err != nil {
		return err
	}
	if resource.ContributorID != actorID {
		return apperrors.ErrPermissionDenied
	}

	return s.resourceRepo.DeleteResource(ctx, id)
}
