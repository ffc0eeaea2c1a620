package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"agentchat/agent"
	"agentchat/dto"
	"agentchat/models"
	"agentchat/monitoring"
	"agentchat/repositories"
	"agentchat/websocket"
)

// ChatHandler handles incoming user messages, runs the agent and persists
// both sides of the exchange
type ChatHandler struct {
	MessageRepo repositories.MessageRepository
	SessionRepo repositories.SessionRepository
	Runner      agent.Runner
	Hub         *websocket.Hub
}

func NewChatHandler(msgRepo repositories.MessageRepository, sessionRepo repositories.SessionRepository, runner agent.Runner, hub *websocket.Hub) *ChatHandler {
	return &ChatHandler{
		MessageRepo: msgRepo,
		SessionRepo: sessionRepo,
		Runner:      runner,
		Hub:         hub,
	}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, dto.ChatResponse{Response: "Error: Session ID is missing."})
		return
	}

	if h.Runner == nil {
		writeJSON(w, http.StatusInternalServerError, dto.ChatResponse{Response: "Error: Agent runner is not initialized. Check server logs."})
		monitoring.ChatFailures.WithLabelValues("runner_not_initialized").Inc()
		return
	}

	var requestData struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ChatResponse{Response: "Error: Invalid JSON."})
		monitoring.ChatFailures.WithLabelValues("invalid_json").Inc()
		return
	}

	userInput := strings.TrimSpace(requestData.Message)
	if userInput == "" {
		writeJSON(w, http.StatusBadRequest, dto.ChatResponse{Response: "Please provide a message."})
		return
	}

	session, created, err := h.SessionRepo.GetOrCreate(sessionID)
	if err != nil {
		logrus.Errorf("Session initialization error: %v", err)
		writeJSON(w, http.StatusInternalServerError, dto.ChatResponse{Response: "Error: Could not initialize session."})
		monitoring.ChatFailures.WithLabelValues("session_init").Inc()
		return
	}
	if created {
		monitoring.SessionsCreated.Inc()
	}

	userMessage := &models.Message{
		SessionID: session.ID,
		Role:      models.RoleUser,
		Text:      userInput,
	}
	if err := h.MessageRepo.Save(userMessage); err != nil {
		logrus.Errorf("Database save error: %v", err)
		writeJSON(w, http.StatusInternalServerError, dto.ChatResponse{Response: "Error: Could not save message."})
		monitoring.ChatFailures.WithLabelValues("save_user_message").Inc()
		return
	}
	monitoring.MessagesSaved.WithLabelValues(models.RoleUser).Inc()
	h.Hub.Publish(userMessage)

	reply, err := h.Runner.Run(r.Context(), session.ID, userInput)
	if err != nil {
		logrus.Errorf("Agent error: %v", err)
		writeJSON(w, http.StatusInternalServerError, dto.ChatResponse{Response: "An agent error occurred: " + err.Error()})
		monitoring.ChatFailures.WithLabelValues("agent").Inc()
		return
	}

	// Persist the agent reply only on success
	agentMessage := &models.Message{
		SessionID: session.ID,
		Role:      models.RoleAgent,
		Text:      reply,
	}
	if err := h.MessageRepo.Save(agentMessage); err != nil {
		logrus.Errorf("Database save error: %v", err)
	} else {
		monitoring.MessagesSaved.WithLabelValues(models.RoleAgent).Inc()
		h.Hub.Publish(agentMessage)
	}

	writeJSON(w, http.StatusOK, dto.ChatResponse{Response: reply})
}
