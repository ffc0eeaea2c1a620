package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"agentchat/dto"
	"agentchat/repositories"
)

// HistoryHandler serves the stored conversation for a session together with
// the list of all known sessions
type HistoryHandler struct {
	MessageRepo repositories.MessageRepository
}

func NewHistoryHandler(msgRepo repositories.MessageRepository) *HistoryHandler {
	return &HistoryHandler{MessageRepo: msgRepo}
}

func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		// The index page always hands out a session ID, but keep the
		// empty answer for direct API callers.
		writeJSON(w, http.StatusOK, dto.HistoryResponse{
			History:  []dto.MessageDTO{},
			Sessions: []string{},
		})
		return
	}

	messages, err := h.MessageRepo.History(sessionID)
	if err != nil {
		logrus.Errorf("Database load error: %v", err)
		http.Error(w, "Error fetching history", http.StatusInternalServerError)
		return
	}

	sessions, err := h.MessageRepo.SessionIDs()
	if err != nil {
		logrus.Errorf("Database session load error: %v", err)
		http.Error(w, "Error fetching sessions", http.StatusInternalServerError)
		return
	}
	if sessions == nil {
		sessions = []string{}
	}

	history := make([]dto.MessageDTO, len(messages))
	for i, msg := range messages {
		history[i] = dto.MessageDTO{Role: msg.Role, Text: msg.Text}
	}

	writeJSON(w, http.StatusOK, dto.HistoryResponse{
		History:          history,
		CurrentSessionID: sessionID,
		Sessions:         sessions,
	})
}
