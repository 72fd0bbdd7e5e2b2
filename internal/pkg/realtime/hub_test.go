package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/profilytics/backend/internal/app/models"
)

func newTestClient(h *Hub, userID int64, conversation string) *Client {
	return &Client{
		hub:          h,
		send:         make(chan []byte, 8),
		userID:       userID,
		conversation: conversation,
		logger:       zerolog.Nop(),
	}
}

func receiveEvent(t *testing.T, c *Client) *Event {
	t.Helper()
	select {
	case data := <-c.send:
		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		return &event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishReachesAllCommunitySubscribers(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	communityID := int64(7)
	sender := newTestClient(hub, 1, CommunityConversation(communityID))
	other := newTestClient(hub, 2, CommunityConversation(communityID))
	hub.register <- sender
	hub.register <- other

	hub.Publish(&models.Message{
		ID:          42,
		Content:     "hello",
		SenderID:    1,
		CommunityID: &communityID,
		Type:        models.MessageTypeCommunity,
	})

	for _, c := range []*Client{sender, other} {
		event := receiveEvent(t, c)
		if event.Type != EventTypeMessageInsert {
			t.Errorf("event type = %q, want %q", event.Type, EventTypeMessageInsert)
		}
		if event.Message.ID != 42 {
			t.Errorf("message ID = %d, want 42", event.Message.ID)
		}
	}

	// Exactly once per subscriber
	select {
	case <-other.send:
		t.Error("subscriber received a duplicate event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishDirectReachesBothDirections(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	// Both peers subscribe with their own view of the pair
	alice := newTestClient(hub, 3, DirectConversation(3, 9))
	bob := newTestClient(hub, 9, DirectConversation(9, 3))
	hub.register <- alice
	hub.register <- bob

	receiver := int64(9)
	hub.Publish(&models.Message{
		ID:         5,
		Content:    "hi",
		SenderID:   3,
		ReceiverID: &receiver,
		Type:       models.MessageTypeDirect,
	})

	if got := receiveEvent(t, alice).Message.ID; got != 5 {
		t.Errorf("alice received message ID %d, want 5", got)
	}
	if got := receiveEvent(t, bob).Message.ID; got != 5 {
		t.Errorf("bob received message ID %d, want 5", got)
	}
}

func TestPublishDoesNotCrossConversations(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	communityA := int64(1)
	communityB := int64(2)
	inA := newTestClient(hub, 1, CommunityConversation(communityA))
	inB := newTestClient(hub, 2, CommunityConversation(communityB))
	hub.register <- inA
	hub.register <- inB

	hub.Publish(&models.Message{
		ID:          10,
		SenderID:    1,
		CommunityID: &communityA,
		Type:        models.MessageTypeCommunity,
	})

	receiveEvent(t, inA)

	select {
	case <-inB.send:
		t.Error("subscriber of another conversation received the event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	communityID := int64(4)
	client := newTestClient(hub, 1, CommunityConversation(communityID))
	hub.register <- client
	hub.unregister <- client

	// The send channel is closed on unregister
	select {
	case _, open := <-client.send:
		if open {
			t.Error("expected closed send channel after unregister")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel not closed after unregister")
	}

	if count := hub.SubscriberCount(CommunityConversation(communityID)); count != 0 {
		t.Errorf("SubscriberCount = %d after unregister, want 0", count)
	}
}

func TestDirectConversationKeyIsSymmetric(t *testing.T) {
	if DirectConversation(3, 9) != DirectConversation(9, 3) {
		t.Error("direct conversation key should not depend on argument order")
	}
	if DirectConversation(3, 9) == DirectConversation(3, 8) {
		t.Error("different pairs should map to different keys")
	}
}
