package dto

// MessageDTO is a Data Transfer Object for one history entry
type MessageDTO struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// HistoryResponse is the payload of GET /history
type HistoryResponse struct {
	History          []MessageDTO `json:"history"`
	CurrentSessionID string       `json:"current_session_id,omitempty"`
	Sessions         []string     `json:"sessions"`
}

// ChatResponse is the payload of POST /chat, for replies and errors alike
type ChatResponse struct {
	Response string `json:"response"`
}
