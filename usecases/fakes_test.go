package usecases

import (
	"portfolio-server/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repositories backing the use case tests. They honor the same
// contracts as the postgres implementations: monotonic ids, gorm sentinel
// errors, unique email on insert.

type fakeUserRepo struct {
	users  []entities.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{nextID: 1} }

func (f *fakeUserRepo) Create(user *entities.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByID(id uint) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeSessionRepo struct {
	sessions map[string]entities.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]entities.Session)}
}

func (f *fakeSessionRepo) Create(session *entities.Session) error {
	if session.Token == "" {
		session.Token = uuid.New().String()
	}
	f.sessions[session.Token] = *session
	return nil
}

func (f *fakeSessionRepo) GetByToken(token string) (*entities.Session, error) {
	s, ok := f.sessions[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	session := s
	return &session, nil
}

func (f *fakeSessionRepo) Delete(token string) error {
	delete(f.sessions, token)
	return nil
}

type fakeAboutMeRepo struct {
	rows   []entities.AboutMe
	nextID uint
}

func newFakeAboutMeRepo() *fakeAboutMeRepo { return &fakeAboutMeRepo{nextID: 1} }

func (f *fakeAboutMeRepo) GetByUserID(userID uint) (*entities.AboutMe, error) {
	for _, r := range f.rows {
		if r.UserID == userID {
			row := r
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAboutMeRepo) ReplaceForUser(about *entities.AboutMe) error {
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.UserID != about.UserID {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	about.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *about)
	return nil
}

func (f *fakeAboutMeRepo) countForUser(userID uint) int {
	n := 0
	for _, r := range f.rows {
		if r.UserID == userID {
			n++
		}
	}
	return n
}

type fakeContactRepo struct {
	rows   []entities.Contact
	nextID uint
}

func newFakeContactRepo() *fakeContactRepo { return &fakeContactRepo{nextID: 1} }

func (f *fakeContactRepo) GetByUserID(userID uint) (*entities.Contact, error) {
	for _, r := range f.rows {
		if r.UserID == userID {
			row := r
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContactRepo) ReplaceForUser(contact *entities.Contact) error {
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.UserID != contact.UserID {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	contact.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *contact)
	return nil
}

func (f *fakeContactRepo) countForUser(userID uint) int {
	n := 0
	for _, r := range f.rows {
		if r.UserID == userID {
			n++
		}
	}
	return n
}

type fakeProjectRepo struct {
	rows   []entities.Project
	nextID uint
}

func newFakeProjectRepo() *fakeProjectRepo { return &fakeProjectRepo{nextID: 1} }

func (f *fakeProjectRepo) Create(project *entities.Project) error {
	project.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *project)
	return nil
}

func (f *fakeProjectRepo) GetByID(id uint) (*entities.Project, error) {
	for _, r := range f.rows {
		if r.ID == id {
			row := r
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProjectRepo) GetByUserID(userID uint) ([]entities.Project, error) {
	var out []entities.Project
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(project *entities.Project) error {
	for i, r := range f.rows {
		if r.ID == project.ID {
			f.rows[i] = *project
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeProjectRepo) Delete(id uint) error {
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	return nil
}
