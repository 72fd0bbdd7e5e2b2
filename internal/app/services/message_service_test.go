package services

import (
	"context"
	"errors"
	"testing"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/pkg/apperrors"
)

type fakeMessageStore struct {
	messages []*models.Message
	nextID   int64
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{nextID: 1}
}

func (f *fakeMessageStore) CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	message.ID = f.nextID
	f.nextID++
	copied := *message
	f.messages = append(f.messages, &copied)
	return message, nil
}

func (f *fakeMessageStore) GetDirectConversation(ctx context.Context, profileA, profileB int64) ([]models.Message, error) {
	var out []models.Message
	for _, message := range f.messages {
		if message.Type != models.MessageTypeDirect {
			continue
		}
		if (message.SenderID == profileA && *message.ReceiverID == profileB) ||
			(message.SenderID == profileB && *message.ReceiverID == profileA) {
			out = append(out, *message)
		}
	}
	return out, nil
}

func (f *fakeMessageStore) GetCommunityConversation(ctx context.Context, communityID int64) ([]models.Message, error) {
	var out []models.Message
	for _, message := range f.messages {
		if message.CommunityID != nil && *message.CommunityID == communityID {
			out = append(out, *message)
		}
	}
	return out, nil
}

func (f *fakeMessageStore) MarkMessageRead(ctx context.Context, messageID, receiverID int64) error {
	for _, message := range f.messages {
		if message.ID == messageID && message.ReceiverID != nil && *message.ReceiverID == receiverID {
			message.Read = true
			return nil
		}
	}
	return apperrors.ErrMessageNotFound
}

type recordingPublisher struct {
	published []*models.Message
}

func (p *recordingPublisher) Publish(message *models.Message) {
	p.published = append(p.published, message)
}

func TestSendDirectMessagePublishes(t *testing.T) {
	store := newFakeMessageStore()
	publisher := &recordingPublisher{}
	service := NewMessageService(store, newFakeMemberStore(), publisher)

	message, err := service.SendDirectMessage(context.Background(), 1, 2, "hello")
	if err != nil {
		t.Fatalf("SendDirectMessage: %v", err)
	}

	if message.Type != models.MessageTypeDirect {
		t.Errorf("type = %s, want direct", message.Type)
	}
	if message.ReceiverID == nil || *message.ReceiverID != 2 {
		t.Errorf("receiverID = %v, want 2", message.ReceiverID)
	}
	if message.CommunityID != nil {
		t.Errorf("communityID = %v, want nil", message.CommunityID)
	}
	if len(publisher.published) != 1 || publisher.published[0].ID != message.ID {
		t.Fatalf("published = %v, want the persisted message exactly once", publisher.published)
	}
}

func TestSendDirectMessageRejectsSelf(t *testing.T) {
	store := newFakeMessageStore()
	publisher := &recordingPublisher{}
	service := NewMessageService(store, newFakeMemberStore(), publisher)

	_, err := service.SendDirectMessage(context.Background(), 1, 1, "talking to myself")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
	if len(publisher.published) != 0 {
		t.Errorf("published %d events, want 0", len(publisher.published))
	}
}

func TestSendCommunityMessageRequiresApprovedMember(t *testing.T) {
	store := newFakeMessageStore()
	memberStore := newFakeMemberStore()
	publisher := &recordingPublisher{}
	service := NewMessageService(store, memberStore, publisher)

	// No membership at all
	if _, err := service.SendCommunityMessage(context.Background(), 5, 10, "hi"); !errors.Is(err, apperrors.ErrNotMember) {
		t.Fatalf("non-member err = %v, want ErrNotMember", err)
	}

	// Pending membership is not enough
	if _, err := memberStore.CreateMember(context.Background(), 10, 5); err != nil {
		t.Fatalf("CreateMember: %v", err)
	}
	if _, err := service.SendCommunityMessage(context.Background(), 5, 10, "hi"); !errors.Is(err, apperrors.ErrCannotMessage) {
		t.Fatalf("pending member err = %v, want ErrCannotMessage", err)
	}
	if len(publisher.published) != 0 {
		t.Fatalf("published %d events before approval, want 0", len(publisher.published))
	}

	if err := memberStore.ApproveMember(context.Background(), 10, 5); err != nil {
		t.Fatalf("ApproveMember: %v", err)
	}
	message, err := service.SendCommunityMessage(context.Background(), 5, 10, "hi")
	if err != nil {
		t.Fatalf("SendCommunityMessage: %v", err)
	}
	if message.Type != models.MessageTypeCommunity {
		t.Errorf("type = %s, want community", message.Type)
	}
	if message.CommunityID == nil || *message.CommunityID != 10 {
		t.Errorf("communityID = %v, want 10", message.CommunityID)
	}
	if len(publisher.published) != 1 {
		t.Errorf("published %d events, want 1", len(publisher.published))
	}
}

func TestGetCommunityConversationGated(t *testing.T) {
	store := newFakeMessageStore()
	memberStore := newFakeMemberStore()
	service := NewMessageService(store, memberStore, &recordingPublisher{})

	if _, err := service.GetCommunityConversation(context.Background(), 5, 10); !errors.Is(err, apperrors.ErrNotMember) {
		t.Fatalf("non-member err = %v, want ErrNotMember", err)
	}

	if _, err := memberStore.CreateMember(context.Background(), 10, 5); err != nil {
		t.Fatalf("CreateMember: %v", err)
	}
	if err := memberStore.ApproveMember(context.Background(), 10, 5); err != nil {
		t.Fatalf("ApproveMember: %v", err)
	}
	if _, err := service.GetCommunityConversation(context.Background(), 5, 10); err != nil {
		t.Fatalf("approved member read: %v", err)
	}
}

func TestMarkReadOnlyForReceiver(t *testing.T) {
	store := newFakeMessageStore()
	service := NewMessageService(store, newFakeMemberStore(), &recordingPublisher{})

	message, err := service.SendDirectMessage(context.Background(), 1, 2, "hello")
	if err != nil {
		t.Fatalf("SendDirectMessage: %v", err)
	}

	if err := service.MarkRead(context.Background(), 1, message.ID); !errors.Is(err, apperrors.ErrMessageNotFound) {
		t.Fatalf("sender markRead err = %v, want ErrMessageNotFound", err)
	}
	if err := service.MarkRead(context.Background(), 2, message.ID); err != nil {
		t.Fatalf("receiver markRead: %v", err)
	}

	history, err := service.GetDirectConversation(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("GetDirectConversation: %v", err)
	}
	if len(history) != 1 || !history[0].Read {
		t.Fatalf("history = %+v, want one read message", history)
	}
}
