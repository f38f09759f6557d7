package repositories

import (
	"portfolio-server/db"
	"portfolio-server/entities"
)

type sessionPgRepository struct {
	db db.Database
}

func NewSessionPgRepository(database db.Database) SessionRepository {
	return &sessionPgRepository{db: database}
}

func (r *sessionPgRepository) Create(session *entities.Session) error {
	return r.db.GetDB().Create(session).Error
}

func (r *sessionPgRepository) GetByToken(token string) (*entities.Session, error) {
	var session entities.Session
	err := r.db.GetDB().Where("token = ?", token).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionPgRepository) Delete(token string) error {
	return r.db.GetDB().Where("token = ?", token).Delete(&entities.Session{}).Error
}
