package handlers

import (
	"log"
	"net/http"

	httpHandler "portfolio-server/handlers/http"
	"portfolio-server/usecases"
	"portfolio-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler serves the preview refresh socket. Open preview tabs hold a
// connection and get a push whenever one of the user's sections is saved.
type WSHandler struct {
	mgr    *ws.Manager
	authUC *usecases.AuthUseCase
}

func NewWSHandler(mgr *ws.Manager, authUC *usecases.AuthUseCase) *WSHandler {
	return &WSHandler{mgr: mgr, authUC: authUC}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandlePreviewWS upgrades to websocket for an authenticated session.
// GET /ws/preview
func (h *WSHandler) HandlePreviewWS(c *gin.Context) {
	token, err := c.Cookie(httpHandler.SessionCookie)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	session, err := h.authUC.SessionFromToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	h.mgr.Register(session.UserID, conn)
	log.Printf("preview connected for user %d", session.UserID)

	defer func() {
		h.mgr.Unregister(session.UserID, conn)
		log.Printf("preview disconnected for user %d", session.UserID)
	}()

	// The page never sends anything meaningful; the read loop exists to
	// detect the close and to drain pings from the browser.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("read error from user %d: %v", session.UserID, err)
			}
			return
		}
	}
}
