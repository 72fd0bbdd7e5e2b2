package dto

// CreateConnectionRequest represents a new connection request
type CreateConnectionRequest struct {
	AddresseeID int64 `json:"addresseeId" binding:"required,min=1"`
}

// RespondConnectionRequest represents the addressee's answer to a pending request
type RespondConnectionRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}
