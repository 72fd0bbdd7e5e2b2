package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/pkg/apperrors"
)

type fakeProfileStore struct {
	profiles map[int64]*models.Profile
}

func newFakeProfileStore(profiles ...*models.Profile) *fakeProfileStore {
	store := &fakeProfileStore{profiles: map[int64]*models.Profile{}}
	for _, profile := range profiles {
		store.profiles[profile.ID] = profile
	}
	return store
}

func (f *fakeProfileStore) GetProfileByID(ctx context.Context, id int64) (*models.Profile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeProfileStore) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	if _, ok := f.profiles[profile.ID]; !ok {
		return apperrors.ErrProfileNotFound
	}
	copied := *profile
	f.profiles[profile.ID] = &copied
	return nil
}

type fakeProfileDetailStore struct {
	education   []models.Education
	experiences []models.Experience
	skills      map[int64]models.Skill
	links       map[int64]map[int64]bool
	nextID      int64

	createSkillCalls int
	linkCalls        int
}

func newFakeProfileDetailStore() *fakeProfileDetailStore {
	return &fakeProfileDetailStore{
		skills: map[int64]models.Skill{},
		links:  map[int64]map[int64]bool{},
		nextID: 1,
	}
}

func (f *fakeProfileDetailStore) CreateEducation(ctx context.Context, education *models.Education) (int64, error) {
	education.ID = f.nextID
	education.CreatedAt = time.Now()
	f.nextID++
	f.education = append(f.education, *education)
	return education.ID, nil
}

func (f *fakeProfileDetailStore) GetEducationForProfile(ctx context.Context, profileID int64) ([]models.Education, error) {
	out := []models.Education{}
	for _, entry := range f.education {
		if entry.ProfileID == profileID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeProfileDetailStore) DeleteEducation(ctx context.Context, id, profileID int64) error {
	for i, entry := range f.education {
		if entry.ID == id && entry.ProfileID == profileID {
			f.education = append(f.education[:i], f.education[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrEducationNotFound
}

func (f *fakeProfileDetailStore) CreateExperience(ctx context.Context, experience *models.Experience) (int64, error) {
	experience.ID = f.nextID
	experience.CreatedAt = time.Now()
	f.nextID++
	f.experiences = append(f.experiences, *experience)
	return experience.ID, nil
}

func (f *fakeProfileDetailStore) GetExperiencesForProfile(ctx context.Context, profileID int64) ([]models.Experience, error) {
	out := []models.Experience{}
	for _, entry := range f.experiences {
		if entry.ProfileID == profileID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeProfileDetailStore) DeleteExperience(ctx context.Context, id, profileID int64) error {
	for i, entry := range f.experiences {
		if entry.ID == id && entry.ProfileID == profileID {
			f.experiences = append(f.experiences[:i], f.experiences[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrExperienceNotFound
}

func (f *fakeProfileDetailStore) GetSkillByName(ctx context.Context, name string) (*models.Skill, error) {
	for _, skill := range f.skills {
		if skill.Name == name {
			copied := skill
			return &copied, nil
		}
	}
	return nil, apperrors.ErrSkillNotFound
}

func (f *fakeProfileDetailStore) CreateSkill(ctx context.Context, name string) (*models.Skill, error) {
	f.createSkillCalls++
	skill := models.Skill{ID: f.nextID, Name: name}
	f.nextID++
	f.skills[skill.ID] = skill
	return &skill, nil
}

func (f *fakeProfileDetailStore) LinkSkillToProfile(ctx context.Context, profileID, skillID int64) error {
	f.linkCalls++
	if _, ok := f.skills[skillID]; !ok {
		return apperrors.ErrSkillNotFound
	}
	if f.links[profileID] == nil {
		f.links[profileID] = map[int64]bool{}
	}
	f.links[profileID][skillID] = true
	return nil
}

func (f *fakeProfileDetailStore) UnlinkSkillFromProfile(ctx context.Context, profileID, skillID int64) error {
	if !f.links[profileID][skillID] {
		return apperrors.ErrSkillNotFound
	}
	delete(f.links[profileID], skillID)
	return nil
}

func (f *fakeProfileDetailStore) GetSkillsForProfile(ctx context.Context, profileID int64) ([]models.ProfileSkill, error) {
	out := []models.ProfileSkill{}
	for skillID := range f.links[profileID] {
		out = append(out, models.ProfileSkill{SkillID: skillID, Name: f.skills[skillID].Name})
	}
	return out, nil
}

func TestGetProfileIncludesDetails(t *testing.T) {
	profiles := newFakeProfileStore(&models.Profile{ID: 1, FullName: "Ada"})
	details := newFakeProfileDetailStore()
	service := NewProfileService(profiles, details)

	if _, err := details.CreateEducation(context.Background(), &models.Education{
		ProfileID: 1, School: "MIT", Degree: "BSc", Field: "CS", StartDate: time.Now(),
	}); err != nil {
		t.Fatalf("seed education: %v", err)
	}
	if _, err := details.CreateExperience(context.Background(), &models.Experience{
		ProfileID: 1, Title: "Engineer", Company: "Initech", StartDate: time.Now(),
	}); err != nil {
		t.Fatalf("seed experience: %v", err)
	}
	skill, _ := details.CreateSkill(context.Background(), "Go")
	if err := details.LinkSkillToProfile(context.Background(), 1, skill.ID); err != nil {
		t.Fatalf("seed skill link: %v", err)
	}

	resp, err := service.GetProfile(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}

	if resp.Profile.(*models.Profile).FullName != "Ada" {
		t.Error("expected the profile itself in the response")
	}
	if len(resp.Education.([]models.Education)) != 1 {
		t.Error("expected one education entry in the response")
	}
	if len(resp.Experiences.([]models.Experience)) != 1 {
		t.Error("expected one experience entry in the response")
	}
	if len(resp.Skills.([]models.ProfileSkill)) != 1 {
		t.Error("expected one skill in the response")
	}
}

func TestAddSkillsCreatesMissingAndLinks(t *testing.T) {
	profiles := newFakeProfileStore(&models.Profile{ID: 1})
	details := newFakeProfileDetailStore()
	service := NewProfileService(profiles, details)

	existing, _ := details.CreateSkill(context.Background(), "Go")
	details.createSkillCalls = 0

	skills, err := service.AddSkills(context.Background(), 1, &dto.AddSkillsRequest{
		Skills: []string{"Go", "Postgres"},
	})
	if err != nil {
		t.Fatalf("AddSkills returned error: %v", err)
	}

	if details.createSkillCalls != 1 {
		t.Errorf("expected only the unknown name to create a skill, got %d creates", details.createSkillCalls)
	}
	if len(skills) != 2 {
		t.Fatalf("expected 2 skills on the profile, got %d", len(skills))
	}
	if !details.links[1][existing.ID] {
		t.Error("expected the existing skill to be linked, not recreated")
	}
}

func TestAddSkillsIsIdempotentForLinkedSkill(t *testing.T) {
	profiles := newFakeProfileStore(&models.Profile{ID: 1})
	details := newFakeProfileDetailStore()
	service := NewProfileService(profiles, details)

	for i := 0; i < 2; i++ {
		if _, err := service.AddSkills(context.Background(), 1, &dto.AddSkillsRequest{
			Skills: []string{"Go"},
		}); err != nil {
			t.Fatalf("AddSkills round %d returned error: %v", i+1, err)
		}
	}

	skills, err := details.GetSkillsForProfile(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetSkillsForProfile returned error: %v", err)
	}
	if len(skills) != 1 {
		t.Errorf("expected re-adding a linked skill to leave a single entry, got %d", len(skills))
	}
	if details.createSkillCalls != 1 {
		t.Errorf("expected the skill catalog entry to be created once, got %d creates", details.createSkillCalls)
	}
}

func TestProfileDetailWritesRequireAuth(t *testing.T) {
	profiles := newFakeProfileStore(&models.Profile{ID: 1})
	details := newFakeProfileDetailStore()
	service := NewProfileService(profiles, details)

	if _, err := service.AddEducation(context.Background(), 0, &dto.AddEducationRequest{
		School: "MIT", Degree: "BSc", Field: "CS", StartDate: time.Now(),
	}); !errors.Is(err, apperrors.ErrAuthRequired) {
		t.Errorf("AddEducation without actor: got %v, want ErrAuthRequired", err)
	}
	if _, err := service.AddExperience(context.Background(), 0, &dto.AddExperienceRequest{
		Title: "Engineer", Company: "Initech", StartDate: time.Now(),
	}); !errors.Is(err, apperrors.ErrAuthRequired) {
		t.Errorf("AddExperience without actor: got %v, want ErrAuthRequired", err)
	}
	if _, err := service.AddSkills(context.Background(), 0, &dto.AddSkillsRequest{
		Skills: []string{"Go"},
	}); !errors.Is(err, apperrors.ErrAuthRequired) {
		t.Errorf("AddSkills without actor: got %v, want ErrAuthRequired", err)
	}

	if len(details.education) != 0 || len(details.experiences) != 0 || details.linkCalls != 0 {
		t.Error("expected no store writes for unauthenticated calls")
	}
}

func TestDeleteEducationScopedToOwner(t *testing.T) {
	profiles := newFakeProfileStore(&models.Profile{ID: 1}, &models.Profile{ID: 2})
	details := newFakeProfileDetailStore()
	service := NewProfileService(profiles, details)

	entry, err := service.AddEducation(context.Background(), 1, &dto.AddEducationRequest{
		School: "MIT", Degree: "BSc", Field: "CS", StartDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("AddEducation returned error: %v", err)
	}

	if err := service.DeleteEducation(context.Background(), 2, entry.ID); !errors.Is(err, apperrors.ErrEducationNotFound) {
		t.Errorf("delete by non-owner: got %v, want ErrEducationNotFound", err)
	}
	if err := service.DeleteEducation(context.Background(), 1, entry.ID); err != nil {
		t.Errorf("delete by owner returned error: %v", err)
	}
}

func TestDeleteExperienceScopedToOwner(t *testing.T) {
	profiles := newFakeProfileStore(&models.Profile{ID: 1}, &models.Profile{ID: 2})
	details := newFakeProfileDetailStore()
	service := NewProfileService(profiles, details)

	entry, err := service.AddExperience(context.Background(), 1, &dto.AddExperienceRequest{
		Title: "Engineer", Company: "Initech", StartDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("AddExperience returned error: %v", err)
	}

	if err := service.DeleteExperience(context.Background(), 2, entry.ID); !errors.Is(err, apperrors.ErrExperienceNotFound) {
		t.Errorf("delete by non-owner: got %v, want ErrExperienceNotFound", err)
	}
	if err := service.DeleteExperience(context.Background(), 1, entry.ID); err != nil {
		t.Errorf("delete by owner returned error: %v", err)
	}
}

func TestRemoveSkillNotLinked(t *testing.T) {
	profiles := newFakeProfileStore(&models.Profile{ID: 1})
	details := newFakeProfileDetailStore()
	service := NewProfileService(profiles, details)

	if err := service.RemoveSkill(context.Background(), 1, 42); !errors.Is(err, apperrors.ErrSkillNotFound) {
		t.Errorf("removing an unlinked skill: got %v, want ErrSkillNotFound", err)
	}
}
