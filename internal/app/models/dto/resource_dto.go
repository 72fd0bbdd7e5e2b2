package dto

// CreateResourceRequest represents data for sharing a learning resource.
// Either an external URL or inline content is expected; both may be present.
type CreateResourceRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	URL         *string `json:"url,omitempty" binding:"omitempty,url"`
	Content     *string `json:"content,omitempty"`
}
