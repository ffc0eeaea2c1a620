package models

import "time"

// Roles a message can carry.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

// Message represents a single chat turn in a session
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"index;not null" json:"session_id"`
	Role      string    `gorm:"not null" json:"role"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// TableName overrides the table name used by GORM
func (Message) TableName() string {
	return "messages"
}
