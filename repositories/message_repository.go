package repositories

import (
	"agentchat/models"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Save(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) History(sessionID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("session_id = ?", sessionID).
		Order("timestamp ASC").
		Find(&messages).Error
	return messages, err
}

// SessionIDs returns every session that holds at least one message, ordered
// by last activity, most recent first.
func (r *messageRepository) SessionIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Message{}).
		Select("session_id").
		Group("session_id").
		Order("MAX(timestamp) DESC").
		Pluck("session_id", &ids).Error
	return ids, err
}
