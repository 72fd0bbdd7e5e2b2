package dto

// SendMessageRequest represents data for sending a message to a conversation
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
