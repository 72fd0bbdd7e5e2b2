package models

import "time"

// CommunityType classifies a community
type CommunityType string

// CommunityType constants
const (
	CommunityTypePublic   CommunityType = "public"
	CommunityTypePrivate  CommunityType = "private"
	CommunityTypeExternal CommunityType = "external"
)

// MemberStatus represents a membership state
type MemberStatus string

// MemberStatus constants
const (
	MemberStatusPending  MemberStatus = "pending"
	MemberStatusApproved MemberStatus = "approved"
)

// Community represents a community in the database
type Community struct {
	ID            int64         `json:"id" db:"id"`
	Name          string        `json:"name" db:"name"`
	Description   string        `json:"description" db:"description"`
	Link          *string       `json:"link,omitempty" db:"link"`
	CommunityType CommunityType `json:"communityType" db:"community_type"`
	IsPrivate     bool          `json:"isPrivate" db:"is_private"`
	CollegeName   *string       `json:"collegeName,omitempty" db:"college_name"`
	CreatorID     int64         `json:"creatorId" db:"creator_id"`
	CreatorName   string        `json:"creatorName,omitempty"` // Joined from profiles
	MemberCount   int64         `json:"memberCount,omitempty"` // Approved members, computed on read
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}

// CommunityMember represents a membership row in the database
type CommunityMember struct {
	ID          int64        `json:"id" db:"id"`
	CommunityID int64        `json:"communityId" db:"community_id"`
	ProfileID   int64        `json:"profileId" db:"profile_id"`
	Status      MemberStatus `json:"status" db:"status"`
	CanMessage  bool         `json:"canMessage" db:"can_message"`
	JoinedAt    time.Time    `json:"joinedAt" db:"joined_at"`

	// Relations
	Profile *Profile `json:"profile,omitempty"`
}
