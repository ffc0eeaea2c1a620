package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"agentchat/models"
)

// Event is pushed to live clients whenever a message is stored.
type Event struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

const EventChatMessage = "chat.message"

// Hub maintains active clients per session and fans stored messages out to
// them.
type Hub struct {
	clients    map[string]map[*Client]bool // sessionID -> clients
	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Publish enqueues a stored message for delivery to the session's clients.
// It never blocks the chat path; events are dropped if the hub is saturated.
func (h *Hub) Publish(msg *models.Message) {
	event := &Event{
		Type:      EventChatMessage,
		SessionID: msg.SessionID,
		Role:      msg.Role,
		Text:      msg.Text,
		Timestamp: msg.Timestamp,
	}
	select {
	case h.broadcast <- event:
	default:
		logrus.Warn("Dropping websocket event, broadcast queue full")
	}
}

// Run starts the hub's processing loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.sessionID] == nil {
				h.clients[client.sessionID] = make(map[*Client]bool)
			}
			h.clients[client.sessionID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.sessionID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.sessionID)
					}
				}
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			payload := marshalEvent(event)

			h.mu.Lock()
			for client := range h.clients[event.SessionID] {
				select {
				case client.send <- payload:
				default:
					delete(h.clients[event.SessionID], client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

func marshalEvent(e *Event) []byte {
	b, err := json.Marshal(e)
	if err != nil {
		logrus.Errorf("Failed to marshal websocket event: %v", err)
		return []byte("{}")
	}
	return b
}
