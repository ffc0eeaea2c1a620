package repositories

import "agentchat/models"

type MessageRepository interface {
	Save(message *models.Message) error
	History(sessionID string) ([]models.Message, error)
	SessionIDs() ([]string, error)
}

type SessionRepository interface {
	// GetOrCreate loads the session row, creating it on first use. The bool
	// reports whether a new row was created.
	GetOrCreate(id string) (*models.Session, bool, error)
	Exists(id string) (bool, error)
}
