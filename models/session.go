package models

import "time"

// Session is a chat thread, identified by a short hex ID carried in the
// session_id query parameter.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name used by GORM
func (Session) TableName() string {
	return "sessions"
}
