package services

import (
	"context"
	"errors"
	"testing"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/app/models/dto"
	"github.com/profilytics/backend/internal/pkg/apperrors"
)

type fakeCommunityStore struct {
	communities map[int64]*models.Community

	nextID      int64
	createCalls int
	updateCalls int
}

func newFakeCommunityStore() *fakeCommunityStore {
	return &fakeCommunityStore{communities: make(map[int64]*models.Community), nextID: 1}
}

func (f *fakeCommunityStore) GetAllCommunities(ctx context.Context) ([]models.Community, error) {
	var out []models.Community
	for _, community := range f.communities {
		out = append(out, *community)
	}
	return out, nil
}

func (f *fakeCommunityStore) GetCommunityByID(ctx context.Context, id int64) (*models.Community, error) {
	community, ok := f.communities[id]
	if !ok {
		return nil, apperrors.ErrCommunityNotFound
	}
	copied := *community
	return &copied, nil
}

func (f *fakeCommunityStore) CreateCommunity(ctx context.Context, community *models.Community) (int64, error) {
	f.createCalls++
	community.ID = f.nextID
	f.nextID++
	copied := *community
	f.communities[community.ID] = &copied
	return community.ID, nil
}

func (f *fakeCommunityStore) UpdateCommunity(ctx context.Context, community *models.Community) error {
	f.updateCalls++
	if _, ok := f.communities[community.ID]; !ok {
		return apperrors.ErrCommunityNotFound
	}
	copied := *community
	f.communities[community.ID] = &copied
	return nil
}

func (f *fakeCommunityStore) DeleteCommunity(ctx context.Context, id int64) error {
	if _, ok := f.communities[id]; !ok {
		return apperrors.ErrCommunityNotFound
	}
	delete(f.communities, id)
	return nil
}

type memberKey struct {
	communityID int64
	profileID   int64
}

type fakeMemberStore struct {
	members map[memberKey]*models.CommunityMember
	nextID  int64
}

func newFakeMemberStore() *fakeMemberStore {
	return &fakeMemberStore{members: make(map[memberKey]*models.CommunityMember), nextID: 1}
}

func (f *fakeMemberStore) CreateMember(ctx context.Context, communityID, profileID int64) (*models.CommunityMember, error) {
	key := memberKey{communityID, profileID}
	if _, ok := f.members[key]; ok {
		return nil, apperrors.ErrAlreadyRequested
	}
	member := &models.CommunityMember{
		ID:          f.nextID,
		CommunityID: communityID,
		ProfileID:   profileID,
		Status:      models.MemberStatusPending,
	}
	f.nextID++
	f.members[key] = member
	copied := *member
	return &copied, nil
}

func (f *fakeMemberStore) GetMember(ctx context.Context, communityID, profileID int64) (*models.CommunityMember, error) {
	member, ok := f.members[memberKey{communityID, profileID}]
	if !ok {
		return nil, apperrors.ErrNotMember
	}
	copied := *member
	return &copied, nil
}

func (f *fakeMemberStore) GetMembers(ctx context.Context, communityID int64) ([]models.CommunityMember, error) {
	var out []models.CommunityMember
	for key, member := range f.members {
		if key.communityID == communityID {
			out = append(out, *member)
		}
	}
	return out, nil
}

func (f *fakeMemberStore) ApproveMember(ctx context.Context, communityID, profileID int64) error {
	member, ok := f.members[memberKey{communityID, profileID}]
	if !ok {
		return apperrors.ErrNotMember
	}
	member.Status = models.MemberStatusApproved
	member.CanMessage = true
	return nil
}

func (f *fakeMemberStore) DeleteMember(ctx context.Context, communityID, profileID int64) error {
	key := memberKey{communityID, profileID}
	if _, ok := f.members[key]; !ok {
		return apperrors.ErrNotMember
	}
	delete(f.members, key)
	return nil
}

func stringPtr(s string) *string { return &s }

func TestCreateCommunityExternalRequiresLink(t *testing.T) {
	communityStore := newFakeCommunityStore()
	service := NewCommunityService(communityStore, newFakeMemberStore())

	_, err := service.CreateCommunity(context.Background(), 1, &dto.CreateCommunityRequest{
		Name:          "Gophers",
		Description:   "Go meetups",
		CommunityType: "external",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
	if communityStore.createCalls != 0 {
		t.Errorf("createCalls = %d, want 0", communityStore.createCalls)
	}
}

func TestCreateCommunityPrivateRequiresCollege(t *testing.T) {
	communityStore := newFakeCommunityStore()
	service := NewCommunityService(communityStore, newFakeMemberStore())

	_, err := service.CreateCommunity(context.Background(), 1, &dto.CreateCommunityRequest{
		Name:          "Campus Devs",
		Description:   "students only",
		CommunityType: "private",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}

	community, err := service.CreateCommunity(context.Background(), 1, &dto.CreateCommunityRequest{
		Name:          "Campus Devs",
		Description:   "students only",
		CommunityType: "private",
		CollegeName:   stringPtr("State University"),
	})
	if err != nil {
		t.Fatalf("CreateCommunity: %v", err)
	}
	if !community.IsPrivate {
		t.Error("isPrivate = false, want true for private community")
	}
}

func TestUpdateCommunityRederivesPrivacy(t *testing.T) {
	communityStore := newFakeCommunityStore()
	service := NewCommunityService(communityStore, newFakeMemberStore())

	community, err := service.CreateCommunity(context.Background(), 1, &dto.CreateCommunityRequest{
		Name:          "Campus Devs",
		Description:   "students only",
		CommunityType: "private",
		CollegeName:   stringPtr("State University"),
	})
	if err != nil {
		t.Fatalf("CreateCommunity: %v", err)
	}

	updated, err := service.UpdateCommunity(context.Background(), 1, community.ID, &dto.UpdateCommunityRequest{
		Name:          "Campus Devs",
		Description:   "now open to everyone",
		CommunityType: "public",
	})
	if err != nil {
		t.Fatalf("UpdateCommunity: %v", err)
	}
	if updated.IsPrivate {
		t.Error("isPrivate = true, want false after switching to public")
	}
}

func TestUpdateCommunityRejectsNonCreator(t *testing.T) {
	communityStore := newFakeCommunityStore()
	service := NewCommunityService(communityStore, newFakeMemberStore())

	community, err := service.CreateCommunity(context.Background(), 1, &dto.CreateCommunityRequest{
		Name:          "Gophers",
		Description:   "Go meetups",
		CommunityType: "public",
	})
	if err != nil {
		t.Fatalf("CreateCommunity: %v", err)
	}

	_, err = service.UpdateCommunity(context.Background(), 2, community.ID, &dto.UpdateCommunityRequest{
		Name:          "Taken over",
		Description:   "Go meetups",
		CommunityType: "public",
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestRequestJoinOnceThenConflict(t *testing.T) {
	communityStore := newFakeCommunityStore()
	memberStore := newFakeMemberStore()
	service := NewCommunityService(communityStore, memberStore)

	community, err := service.CreateCommunity(context.Background(), 1, &dto.CreateCommunityRequest{
		Name:          "Gophers",
		Description:   "Go meetups",
		CommunityType: "public",
	})
	if err != nil {
		t.Fatalf("CreateCommunity: %v", err)
	}

	member, err := service.RequestJoin(context.Background(), 7, community.ID)
	if err != nil {
		t.Fatalf("RequestJoin: %v", err)
	}
	if member.Status != models.MemberStatusPending {
		t.Errorf("status = %s, want pending", member.Status)
	}

	if _, err := service.RequestJoin(context.Background(), 7, community.ID); !errors.Is(err, apperrors.ErrAlreadyRequested) {
		t.Fatalf("repeat request err = %v, want ErrAlreadyRequested", err)
	}

	if err := service.ApproveMember(context.Background(), 1, community.ID, 7); err != nil {
		t.Fatalf("ApproveMember: %v", err)
	}
	if _, err := service.RequestJoin(context.Background(), 7, community.ID); !errors.Is(err, apperrors.ErrAlreadyMember) {
		t.Fatalf("request while member err = %v, want ErrAlreadyMember", err)
	}
}

func TestApproveMemberEnablesMessaging(t *testing.T) {
	communityStore := newFakeCommunityStore()
	memberStore := newFakeMemberStore()
	service := NewCommunityService(communityStore, memberStore)

	community, err := service.CreateCommunity(context.Background(), 1, &dto.CreateCommunityRequest{
		Name:          "Gophers",
		Description:   "Go meetups",
		CommunityType: "public",
	})
	if err != nil {
		t.Fatalf("CreateCommunity: %v", err)
	}
	if _, err := service.RequestJoin(context.Background(), 7, community.ID); err != nil {
		t.Fatalf("RequestJoin: %v", err)
	}

	if err := service.ApproveMember(context.Background(), 2, community.ID, 7); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("non-creator approve err = %v, want ErrPermissionDenied", err)
	}

	if err := service.ApproveMember(context.Background(), 1, community.ID, 7); err != nil {
		t.Fatalf("ApproveMember: %v", err)
	}
	member, err := memberStore.GetMember(context.Background(), community.ID, 7)
	if err != nil {
		t.Fatalf("GetMember: %v", err)
	}
	if member.Status != models.MemberStatusApproved || !member.CanMessage {
		t.Errorf("member = %+v, want approved with messaging enabled", member)
	}
}

func TestRemoveMemberAllowsSelfAndCreator(t *testing.T) {
	communityStore := newFakeCommunityStore()
	memberStore := newFakeMemberStore()
	service := NewCommunityService(communityStore, memberStore)

	community, err := service.CreateCommunity(context.Background(), 1, &dto.CreateCommunityRequest{
		Name:          "Gophers",
		Description:   "Go meetups",
		CommunityType: "public",
	})
	if err != nil {
		t.Fatalf("CreateCommunity: %v", err)
	}
	if _, err := service.RequestJoin(context.Background(), 7, community.ID); err != nil {
		t.Fatalf("RequestJoin: %v", err)
	}

	if err := service.RemoveMember(context.Background(), 8, community.ID, 7); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("stranger remove err = %v, want ErrPermissionDenied", err)
	}
	if err := service.RemoveMember(context.Background(), 7, community.ID, 7); err != nil {
		t.Fatalf("self remove: %v", err)
	}

	if _, err := service.RequestJoin(context.Background(), 7, community.ID); err != nil {
		t.Fatalf("re-request after leave: %v", err)
	}
	if err := service.RemoveMember(context.Background(), 1, community.ID, 7); err != nil {
		t.Fatalf("creator remove: %v", err)
	}
}
