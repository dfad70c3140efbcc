package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionStore interface {
	Create(session *models.Session) error
	FindByToken(token string) (*models.Session, error)
	Delete(token string) error
}

type SessionRepositoryImpl struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionStore {
	return &SessionRepositoryImpl{db: db}
}

func (r *SessionRepositoryImpl) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *SessionRepositoryImpl) FindByToken(token string) (*models.Session, error) {
	var session models.Session
	err := r.db.First(&session, "session_id = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Delete is a no-op when the token does not exist; logout is idempotent.
func (r *SessionRepositoryImpl) Delete(token string) error {
	return r.db.Delete(&models.Session{}, "session_id = ?", token).Error
}
