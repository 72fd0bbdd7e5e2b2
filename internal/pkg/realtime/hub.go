package realtime

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/metrics"
)

// Event is the payload pushed to subscribers when a message row is inserted
type Event struct {
	Type    string          `json:"type"`
	Message *models.Message `json:"message"`
}

// EventTypeMessageInsert is the only event type currently pushed
const EventTypeMessageInsert = "message.insert"

// CommunityConversation builds the subscription key for a community conversation
func CommunityConversation(communityID int64) string {
	return fmt.Sprintf("community:%d", communityID)
}

// DirectConversation builds the subscription key for a direct conversation.
// The pair is normalized so both peers resolve to the same key.
func DirectConversation(profileA, profileB int64) string {
	if profileA > profileB {
		profileA, profileB = profileB, profileA
	}
	return fmt.Sprintf("direct:%d:%d", profileA, profileB)
}

// Hub maintains the set of subscribers per conversation and pushes inserted
// messages to them. Messages enter through Publish, never through the socket.
type Hub struct {
	// Subscribers organized by conversation key
	clients map[string]map[*Client]bool

	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan *Event),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run starts the hub loop, handling registrations and broadcasts
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Publish pushes a persisted message to every subscriber of its conversation,
// the sender's own subscription included.
func (h *Hub) Publish(message *models.Message) {
	h.broadcast <- &Event{Type: EventTypeMessageInsert, Message: message}
}

// SubscriberCount returns the number of subscribers on a conversation
func (h *Hub) SubscriberCount(conversation string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[conversation])
}

func conversationKey(message *models.Message) string {
	if message.CommunityID != nil {
		return CommunityConversation(*message.CommunityID)
	}
	if message.ReceiverID != nil {
		return DirectConversation(message.SenderID, *message.ReceiverID)
	}
	return ""
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.conversation]; !ok {
		h.clients[client.conversation] = make(map[*Client]bool)
	}
	h.clients[client.conversation][client] = true
	metrics.SubscriberConnected()

	h.logger.Info().
		Str("conversation", client.conversation).
		Int64("userID", client.userID).
		Msg("Subscriber registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.conversation]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.send)
	metrics.SubscriberDisconnected()

	if len(clients) == 0 {
		delete(h.clients, client.conversation)
	}

	h.logger.Info().
		Str("conversation", client.conversation).
		Int64("userID", client.userID).
		Msg("Subscriber unregistered")
}

func (h *Hub) broadcastEvent(event *Event) {
	conversation := conversationKey(event.Message)
	if conversation == "" {
		h.logger.Warn().Int64("messageID", event.Message.ID).Msg("Message has no conversation, dropping event")
		return
	}

	h.mu.RLock()
	clients, ok := h.clients[conversation]
	if !ok {
		h.mu.RUnlock()
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.mu.RUnlock()
		h.logger.Error().Err(err).Str("conversation", conversation).Msg("Failed to marshal event")
		return
	}

	// Collect slow subscribers and drop them after releasing the lock
	var dropped []*Client
	for client := range clients {
		select {
		case client.send <- data:
		default:
			dropped = append(dropped, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range dropped {
		h.logger.Warn().
			Str("conversation", conversation).
			Int64("userID", client.userID).
			Msg("Dropping slow subscriber")
		h.unregisterClient(client)
	}

	h.logger.Debug().
		Str("conversation", conversation).
		Int64("messageID", event.Message.ID).
		Msg("Event pushed to subscribers")
}
