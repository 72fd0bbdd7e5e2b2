package models

import "time"

// MessageType distinguishes direct and community messages
type MessageType string

// MessageType constants
const (
	MessageTypeDirect    MessageType = "direct"
	MessageTypeCommunity MessageType = "community"
)

// Message represents a chat message in the database.
// Exactly one of ReceiverID / CommunityID is set, matching Type.
type Message struct {
	ID          int64       `json:"id" db:"id"`
	Content     string      `json:"content" db:"content"`
	SenderID    int64       `json:"senderId" db:"sender_id"`
	SenderName  string      `json:"senderName,omitempty"` // Joined from profiles
	ReceiverID  *int64      `json:"receiverId,omitempty" db:"receiver_id"`
	CommunityID *int64      `json:"communityId,omitempty" db:"community_id"`
	Type        MessageType `json:"type" db:"type"`
	Read        bool        `json:"read" db:"read"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}
