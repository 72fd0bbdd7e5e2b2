package services

import (
	"context"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/pkg/apperrors"
)

// messageStore is the message access the message service needs
type messageStore interface {
	CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error)
	GetDirectConversation(ctx context.Context, profileA, profileB int64) ([]models.Message, error)
	GetCommunityConversation(ctx context.Context, communityID int64) ([]models.Message, error)
	MarkMessageRead(ctx context.Context, messageID, receiverID int64) error
}

// membershipStore gates community conversations on approved membership
type membershipStore interface {
	GetMember(ctx context.Context, communityID, profileID int64) (*models.CommunityMember, error)
}

// Publisher notifies realtime subscribers about a persisted message
type Publisher interface {
	Publish(message *models.Message)
}

// MessageService defines the interface for direct and community messaging
type MessageService interface {
	GetDirectConversation(ctx context.Context, actorID, peerID int64) ([]models.Message, error)
	SendDirectMessage(ctx context.Context, actorID, receiverID int64, content string) (*models.Message, error)
	GetCommunityConversation(ctx context.Context, actorID, communityID int64) ([]models.Message, error)
	SendCommunityMessage(ctx context.Context, actorID, communityID int64, content string) (*models.Message, error)
	MarkRead(ctx context.Context, actorID, messageID int64) error
}

// messageServiceImpl implements MessageService
type messageServiceImpl struct {
	messageRepo messageStore
	memberRepo  membershipStore
	publisher   Publisher
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo messageStore, memberRepo membershipStore, publisher Publisher) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
		memberRepo:  memberRepo,
		publisher:   publisher,
	}
}

// requireMessagingMember checks that the profile is an approved member of the
// community with messaging enabled.
func (s *messageServiceImpl) requireMessagingMember(ctx context.Context, communityID, profileID int64) error {
	member, err := s.memberRepo.GetMember(ctx, communityID, profileID)
	if err != nil {
		return err
	}
	if member.Status != models.MemberStatusApproved || !member.CanMessage {
		return apperrors.ErrCannotMessage
	}
	return nil
}

// GetDirectConversation returns the full direct history between the acting
// user and a peer, oldest first.
func (s *messageServiceImpl) GetDirectConversation(ctx context.Context, actorID, peerID int64) ([]models.Message, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}

	return s.messageRepo.GetDirectConversation(ctx, actorID, peerID)
}

// SendDirectMessage persists a direct message and notifies subscribers
func (s *messageServiceImpl) SendDirectMessage(ctx context.Context, actorID, receiverID int64, content string) (*models.Message, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}
	if receiverID == actorID {
		return nil, apperrors.NewValidationError("cannot send a message to yourself")
	}

	message, err := s.messageRepo.CreateMessage(ctx, &models.Message{
		SenderID:   actorID,
		ReceiverID: &receiverID,
		Type:       models.MessageTypeDirect,
		Content:    content,
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(message)
	return message, nil
}

// GetCommunityConversation returns the community history, oldest first.
// Reading requires approved membership with messaging enabled.
func (s *messageServiceImpl) GetCommunityConversation(ctx context.Context, actorID, communityID int64) ([]models.Message, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}
	if err := s.requireMessagingMember(ctx, communityID, actorID); err != nil {
		return nil, err
	}

	return s.messageRepo.GetCommunityConversation(ctx, communityID)
}

// SendCommunityMessage persists a community message and notifies subscribers
func (s *messageServiceImpl) SendCommunityMessage(ctx context.Context, actorID, communityID int64, content string) (*models.Message, error) {
	if actorID == 0 {
		return nil, apperrors.ErrAuthRequired
	}
	if err := s.requireMessagingMember(ctx, communityID, actorID); err != nil {
		return nil, err
	}

	message, err := s.messageRepo.CreateMessage(ctx, &models.Message{
		SenderID:    actorID,
		CommunityID: &communityID,
		Type:        models.MessageTypeCommunity,
		Content:     content,
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(message)
	return message, nil
}

// MarkRead marks a direct message as read. Only the receiver may do so.
func (s *messageServiceImpl) MarkRead(ctx context.Context, actorID, messageID int64) error {
	if actorID == 0 {
		return apperrors.ErrAuthRequired
	}

	return s.messageRepo.MarkMessageRead(ctx, messageID, actorID)
}
