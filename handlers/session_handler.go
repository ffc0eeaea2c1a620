package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
)

// SessionHandler serves the chat page and hands out session IDs
type SessionHandler struct {
	Template *template.Template
}

func NewSessionHandler(tmpl *template.Template) *SessionHandler {
	return &SessionHandler{Template: tmpl}
}

// Index redirects to a fresh session when none is given, otherwise renders
// the chat page for the current session.
func (h *SessionHandler) Index(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		id, err := NewSessionID()
		if err != nil {
			http.Error(w, "Could not create session", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/?session_id="+id, http.StatusFound)
		return
	}

	data := struct {
		CurrentSessionID string
	}{CurrentSessionID: sessionID}

	if err := h.Template.Execute(w, data); err != nil {
		logrus.Errorf("Template render error: %v", err)
	}
}

// NewSessionID returns a short URL-safe hex ID, e.g. "a3b7c4d8".
func NewSessionID() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
