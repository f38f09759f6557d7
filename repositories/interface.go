package repositories

import "portfolio-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByEmail(email string) (*entities.User, error)
	GetByID(id uint) (*entities.User, error)
}

type SessionRepository interface {
	Create(session *entities.Session) error
	GetByToken(token string) (*entities.Session, error)
	Delete(token string) error
}

type AboutMeRepository interface {
	GetByUserID(userID uint) (*entities.AboutMe, error)
	ReplaceForUser(about *entities.AboutMe) error
}

type ContactRepository interface {
	GetByUserID(userID uint) (*entities.Contact, error)
	ReplaceForUser(contact *entities.Contact) error
}

type ProjectRepository interface {
	Create(project *entities.Project) error
	GetByID(id uint) (*entities.Project, error)
	GetByUserID(userID uint) ([]entities.Project, error)
	Update(project *entities.Project) error
	Delete(id uint) error
}
