package realtime

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/profilytics/backend/internal/app/models"
)

// MembershipChecker resolves a profile's membership row in a community
type MembershipChecker interface {
	GetMember(ctx context.Context, communityID, profileID int64) (*models.CommunityMember, error)
}

// Handler upgrades subscription requests to WebSocket connections
type Handler struct {
	hub     *Hub
	members MembershipChecker
	logger  zerolog.Logger
}

// NewHandler creates a new subscription handler
func NewHandler(hub *Hub, members MembershipChecker, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:     hub,
		members: members,
		logger:  logger,
	}
}

// HandleSubscription godoc
// @Summary Subscribe to message inserts on one conversation
// @Description Upgrades the connection to WebSocket and pushes every new message of the selected conversation. Pass exactly one of communityId or peerId.
// @Tags messages, websocket
// @Produce json
// @Security BearerAuth
// @Param communityId query int false "Community conversation to subscribe to"
// @Param peerId query int false "Direct conversation peer to subscribe to"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 400 {object} dto.ErrorResponse "Neither or both conversation parameters given"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Not an approved member of the community"
// @Router /ws/messages [get]
func (h *Handler) HandleSubscription(c *gin.Context) {
	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}
	userID, ok := userIDValue.(int64)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	communityIDStr := c.Query("communityId")
	peerIDStr := c.Query("peerId")

	var conversation string
	switch {
	case communityIDStr != "" && peerIDStr != "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pass either communityId or peerId, not both"})
		return

	case communityIDStr != "":
		communityID, err := strconv.ParseInt(communityIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid community ID"})
			return
		}

		member, err := h.members.GetMember(c, communityID, userID)
		if err != nil || member.Status != models.MemberStatusApproved || !member.CanMessage {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not an approved member of this community"})
			return
		}
		conversation = CommunityConversation(communityID)

	case peerIDStr != "":
		peerID, err := strconv.ParseInt(peerIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid peer ID"})
			return
		}
		conversation = DirectConversation(userID, peerID)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "A communityId or peerId parameter is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("conversation", conversation).
			Int64("userID", userID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:          h.hub,
		conn:         conn,
		send:         make(chan []byte, 256),
		userID:       userID,
		conversation: conversation,
		logger:       h.logger,
	}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("conversation", conversation).
		Int64("userID", userID).
		Msg("Subscription established")
}
