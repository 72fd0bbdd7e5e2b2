package models

import "time"

// ConnectionStatus represents the state of a connection request
type ConnectionStatus string

// ConnectionStatus constants
const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// Connection represents an edge in the connections graph.
// Exactly one row exists per pair of profiles regardless of direction.
type Connection struct {
	ID          int64            `json:"id" db:"id"`
	RequesterID int64            `json:"requesterId" db:"requester_id"`
	AddresseeID int64            `json:"addresseeId" db:"addressee_id"`
	Status      ConnectionStatus `json:"status" db:"status"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time        `json:"updatedAt" db:"updated_at"`

	// Relations
	Peer *Profile `json:"peer,omitempty"` // The other profile from the acting user's side
}
