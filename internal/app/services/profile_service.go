package services

import (
	"context"
	"errors"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/pkg/apperrors"
)

// profileStore is the profile access the profile service needs
type profileStore interface {
	GetProfileByID(ctx context.Context, id int64) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) error
}

// profileDetailStore is the education, experience and skill access the
// profile service needs
type profileDetailStore interface {
	CreateEducation(ctx context.Context, education *models.Education) (int64, error)
	GetEducationForProfile(ctx context.Context, profileID int64) ([]models.Education, error)
	DeleteEducation(ctx context.Context, id, profileID int64) error
	CreateExperience(ctx context.Context, experience *models.Experience) (int64, error)
	GetExperiencesForProfile(ctx context.Context, profileID int64) ([]models.Experience, error)
	DeleteExperience(ctx context.Context, id, profileID int64) error
	GetSkillByName(ctx context.Context, name string) (*models.Skill, error)
	CreateSkill(ctx context.Context, name string) (*models.Skill, error)
	LinkSkillToProfile(ctx context.Context, profileID, skillID int64) error
	UnlinkSkillFromProfile(ctx context.Context, profileID, skillID int64) error
	GetSkillsForProfile(ctx context.Context, profileID int64) ([]models.ProfileSkill, error)
}

// ProfileService defines the interface for profile operations
type ProfileService interface {
	GetProfile(ctx context.Context, id int64) (*dto.ProfileDetailResponse, error)
	UpdateOwnProfile(ctx context.Context, actorID int64, req *dto.UpdateProfileRequest) (*models.Profile, error)
	AddEducation(ctx context.Context, actorID int64, req *dto.AddEducationRequest) (*models.Education, error)
	DeleteEducation(ctx context.Context, actorID, id int64) error
	AddExperience(ctx context.Context, actorID int64, req *dto.AddExperienceRequest) (*models.Experience, error)
	DeleteExperience(ctx context.Context, actorID, id int64) error
	AddSkills(ctx context.Context, actorID int64, req *dto.AddSkillsRequest) ([]models.ProfileSkill, error)
	RemoveSkill(ctx context.Context, actorID, skillID int64) error
}

// profileServiceImpl implements ProfileService
type profileServiceImpl struct {
	profileRepo profileStore
	detailRepo  profileDetailStore
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo profileStore, detailRepo profileDetailStore) ProfileService {
	return &profileServiceImpl{profileRepo: profileRepo, detailRepo: detailRepo}
}

// GetProfile retrieves a profile together with its education, experience
// and skill entries
func (s *profileServiceImpl) GetProfile(ctx context.Context, id int64) (*dto.ProfileDetailResponse, error) {
	profile, err := s.profileRepo.GetProfileByID(ctx, id)
	if err != nil {
		return nil, err
	}

	experiences, err := s.detailRepo.GetExperiencesForProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	education, err := s.detailRepo.GetEducationForProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	skills, err := s.detailRepo.GetSkillsForProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileDetailResponse{
		Profile:     profile,
		Experiences: experiences,
		Education:   education,
		Skills:      skills,
	}, nil
}

// UpdateOwnProfile applies the given fields to the acting user's own profile.
// Ownership holds by construction: the updated row id is the actor's id.
func (s *profileServiceImpl) UpdateOwnProfile(ctx context.Context, actorID int64, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	profile, err := s.profileRepo.GetProfileByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Headline != nil {
		profile.Headline = req.Headline
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Location != nil {
		profile.Location = req.Location
	}
	if req.Website != nil {
		profile.Website = req.Website
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}
	if req.CoverURL != nil {
		profile.CoverURL = req.CoverURL
	}

	if err := s.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// AddEducation adds an education entry to the acting user's profile
func (s *profileServiceImpl) AddEducation(ctx context.Context, actorID int64, req *dto.AddEducationRequest) (*models.Education, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	education := &models.Education{
		ProfileID:   actorID,
		School:      req.School,
		Degree:      req.Degree,
		Field:       req.Field,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}

	if _, err := s.detailRepo.CreateEducation(ctx, education); err != nil {
		return nil, err
	}

	return education, nil
}

// DeleteEducation removes one of the acting user's education entries
func (s *profileServiceImpl) DeleteEducation(ctx context.Context, actorID, id int64) error {
	if actorID == 0 {
		return apperrors.ErrAuthRequired
	}

	return s.detailRepo.DeleteEducation(ctx, id, actorID)
}

// AddExperience adds a work experience entry to the acting user's profile
func (s *profileServiceImpl) AddExperience(ctx context.Context, actorID int64, req *dto.AddExperienceRequest) (*models.Experience, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	experience := &models.Experience{
		ProfileID:   actorID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}

	if _, err := s.detailRepo.CreateExperience(ctx, experience); err != nil {
		return nil, err
	}

	return experience, nil
}

// DeleteExperience removes one of the acting user's experience entries
func (s *profileServiceImpl) DeleteExperience(ctx context.Context, actorID, id int64) error {
	if actorID == 0 {
		return apperrors.ErrAuthRequired
	}

	return s.detailRepo.DeleteExperience(ctx, id, actorID)
}

// AddSkills attaches the named skills to the acting user's profile. Skill
// names not yet in the catalog are created first; names already attached are
// left as they are. The full skill list is returned.
func (s *profileServiceImpl) AddSkills(ctx context.Context, actorID int64, req *dto.AddSkillsRequest) ([]models.ProfileSkill, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	for _, name := range req.Skills {
		skill, err := s.detailRepo.GetSkillByName(ctx, name)
		if errors.Is(err, apperrors.ErrSkillNotFound) {
			skill, err = s.detailRepo.CreateSkill(ctx, name)
		}
		if err != nil {
			return nil, err
		}

		if err := s.detailRepo.LinkSkillToProfile(ctx, actorID, skill.ID); err != nil {
			return nil, err
		}
	}

	return s.detailRepo.GetSkillsForProfile(ctx, actorID)
}

// RemoveSkill detaches a skill from the acting user's profile
func (s *profileServiceImpl) RemoveSkill(ctx context.Context, actorID, skillID int64) error {
	if actorID == 0 {
		return apperrors.ErrAuthRequired
	}

	return s.detailRepo.UnlinkSkillFromProfile(ctx, actorID, skillID)
}
