package httpHandler

import (
	"net/http"

	"portfolio-server/entities"
	"portfolio-server/usecases"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie holding the opaque session token. The token is
// meaningless without the server-side sessions row it points at.
const SessionCookie = "session_token"

const sessionKey = "session"

// RequireSession resolves the session cookie into a session value for this
// request. Anonymous requests are redirected to the login page and the
// protected handler never runs.
func RequireSession(authUC *usecases.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		session, err := authUC.SessionFromToken(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// CurrentSession returns the session RequireSession attached to the request.
func CurrentSession(c *gin.Context) *entities.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*entities.Session)
	return session
}
