package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"agentchat/models"
)

func newTestClient(hub *Hub, sessionID string) *Client {
	return &Client{
		hub:       hub,
		send:      make(chan []byte, 8),
		sessionID: sessionID,
	}
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case payload := <-c.send:
		var event Event
		if err := json.Unmarshal(payload, &event); err != nil {
			t.Fatalf("Invalid event payload: %v", err)
		}
		return event
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for an event")
		return Event{}
	}
}

func TestHubDeliversToSessionClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	watcher := newTestClient(hub, "abc")
	other := newTestClient(hub, "other")
	hub.register <- watcher
	hub.register <- other

	hub.Publish(&models.Message{
		SessionID: "abc",
		Role:      models.RoleUser,
		Text:      "hello",
		Timestamp: time.Now(),
	})

	event := receive(t, watcher)
	if event.Type != EventChatMessage {
		t.Errorf("Expected type %q but got %q", EventChatMessage, event.Type)
	}
	if event.SessionID != "abc" || event.Role != "user" || event.Text != "hello" {
		t.Errorf("Unexpected event: %+v", event)
	}

	select {
	case payload := <-other.send:
		t.Errorf("Client of another session received %s", payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient(hub, "abc")
	hub.register <- client
	hub.unregister <- client

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("Expected the send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for the send channel to close")
	}

	// Publishing after the last client left must not panic or block.
	hub.Publish(&models.Message{SessionID: "abc", Role: models.RoleAgent, Text: "late"})
}
