package repositories

import (
	"errors"

	"agentchat/models"

	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) GetOrCreate(id string) (*models.Session, bool, error) {
	session := models.Session{ID: id}
	res := r.db.FirstOrCreate(&session, models.Session{ID: id})
	if res.Error != nil {
		return nil, false, res.Error
	}
	return &session, res.RowsAffected > 0, nil
}

func (r *sessionRepository) Exists(id string) (bool, error) {
	var session models.Session
	err := r.db.Select("id").Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}
