package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUseCase() (*AuthUseCase, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	return NewAuthUseCase(users, sessions), users, sessions
}

func TestSignUp_CreatesUserAndSession(t *testing.T) {
	uc, users, sessions := newAuthUseCase()

	session, err := uc.SignUp("alice", "alice@x.com", "secret1", "secret1")
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Len(t, users.users, 1)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, users.users[0].ID, session.UserID)
	assert.NotEmpty(t, session.Token)

	stored, err := sessions.GetByToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, stored.UserID)
}

func TestSignUp_TrimsFields(t *testing.T) {
	uc, users, _ := newAuthUseCase()

	_, err := uc.SignUp("  alice  ", "  alice@x.com  ", "secret1", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", users.users[0].Username)
	assert.Equal(t, "alice@x.com", users.users[0].Email)
}

func TestSignUp_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		confirm  string
		wantErr  error
	}{
		{"empty username", "", "a@x.com", "secret1", "secret1", ErrFieldsRequired},
		{"empty email", "alice", "", "secret1", "secret1", ErrFieldsRequired},
		{"whitespace password", "alice", "a@x.com", "   ", "   ", ErrFieldsRequired},
		{"short password", "alice", "a@x.com", "five5", "five5", ErrPasswordTooShort},
		{"mismatch", "alice", "a@x.com", "secret1", "secret2", ErrPasswordMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, users, _ := newAuthUseCase()
			_, err := uc.SignUp(tt.username, tt.email, tt.password, tt.confirm)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, users.users, "no user row on validation failure")
		})
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	uc, users, _ := newAuthUseCase()

	_, err := uc.SignUp("alice", "alice@x.com", "secret1", "secret1")
	require.NoError(t, err)

	_, err = uc.SignUp("bob", "alice@x.com", "secret2", "secret2")
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.Len(t, users.users, 1)
}

func TestLogIn_Scenario(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	session, err := uc.SignUp("alice", "alice@x.com", "secret1", "secret1")
	require.NoError(t, err)
	require.NotNil(t, session)

	_, err = uc.LogIn("alice@x.com", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	session, err = uc.LogIn("alice@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
}

func TestLogIn_UnknownEmailSameError(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	_, err := uc.SignUp("alice", "alice@x.com", "secret1", "secret1")
	require.NoError(t, err)

	_, errUnknown := uc.LogIn("nobody@x.com", "secret1")
	_, errWrongPass := uc.LogIn("alice@x.com", "wrongpass")

	// Neither answer may reveal which part was wrong
	assert.ErrorIs(t, errUnknown, ErrBadCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestLogOut_DiscardsSession(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	session, err := uc.SignUp("alice", "alice@x.com", "secret1", "secret1")
	require.NoError(t, err)

	require.NoError(t, uc.LogOut(session.Token))

	_, err = uc.SessionFromToken(session.Token)
	assert.Error(t, err)
}

func TestLogOut_UnknownTokenIsNoop(t *testing.T) {
	uc, _, _ := newAuthUseCase()
	assert.NoError(t, uc.LogOut("no-such-token"))
	assert.NoError(t, uc.LogOut(""))
}

func TestSessionFromToken(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	session, err := uc.SignUp("alice", "alice@x.com", "secret1", "secret1")
	require.NoError(t, err)

	resolved, err := uc.SessionFromToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, resolved.UserID)
	assert.Equal(t, "alice", resolved.Username)

	_, err = uc.SessionFromToken("forged-token")
	assert.Error(t, err)
}
