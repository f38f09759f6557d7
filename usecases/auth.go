package usecases

import (
	"errors"
	"strings"

	"portfolio-server/auth"
	"portfolio-server/entities"
	"portfolio-server/repositories"

	"gorm.io/gorm"
)

const minPasswordLength = 6

type AuthUseCase struct {
	UserRepo    repositories.UserRepository
	SessionRepo repositories.SessionRepository
}

func NewAuthUseCase(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository) *AuthUseCase {
	return &AuthUseCase{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
	}
}

// SignUp validates the registration form, creates the user, and logs them in
// by issuing a session. The unique index on users.email is the authoritative
// duplicate guard; the lookup before the insert only exists to answer with a
// friendly message in the common case.
func (uc *AuthUseCase) SignUp(username, email, password, confirm string) (*entities.Session, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	confirm = strings.TrimSpace(confirm)

	if username == "" || email == "" || password == "" || confirm == "" {
		return nil, ErrFieldsRequired
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	if _, err := uc.UserRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{Username: username, Email: email, PasswordHash: hash}
	if err := uc.UserRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return uc.startSession(user)
}

// LogIn verifies credentials and issues a session. Lookup failure and a wrong
// password answer identically so the response never reveals which was wrong.
func (uc *AuthUseCase) LogIn(email, password string) (*entities.Session, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return nil, ErrFieldsRequired
	}

	user, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		return nil, ErrBadCredentials
	}
	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}

	return uc.startSession(user)
}

// LogOut discards the session unconditionally. An unknown token is not an
// error; the outcome is the same.
func (uc *AuthUseCase) LogOut(token string) error {
	if token == "" {
		return nil
	}
	return uc.SessionRepo.Delete(token)
}

// SessionFromToken resolves an opaque client token to its server-side session.
func (uc *AuthUseCase) SessionFromToken(token string) (*entities.Session, error) {
	if token == "" {
		return nil, ErrBadCredentials
	}
	return uc.SessionRepo.GetByToken(token)
}

func (uc *AuthUseCase) startSession(user *entities.User) (*entities.Session, error) {
	session := &entities.Session{UserID: user.ID, Username: user.Username}
	if err := uc.SessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}
