package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// RefreshEvent tells an open preview page to re-render after a section save.
type RefreshEvent struct {
	Event   string `json:"event"`
	Section string `json:"section"`
}

// Manager keeps track of active preview websocket connections. A user may
// have several tabs open at once, so each user id maps to a set of conns.
type Manager struct {
	mu          sync.RWMutex
	connections map[uint]map[*websocket.Conn]struct{} // userID -> conns
}

func NewManager() *Manager {
	return &Manager{connections: make(map[uint]map[*websocket.Conn]struct{})}
}

// Register adds a connection for a user.
func (m *Manager) Register(userID uint, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.connections[userID] == nil {
		m.connections[userID] = make(map[*websocket.Conn]struct{})
	}
	m.connections[userID][conn] = struct{}{}
}

// Unregister removes and closes a connection.
func (m *Manager) Unregister(userID uint, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conns, ok := m.connections[userID]; ok {
		if _, ok := conns[conn]; ok {
			_ = conn.Close()
			delete(conns, conn)
		}
		if len(conns) == 0 {
			delete(m.connections, userID)
		}
	}
}

// NotifyRefresh pushes a refresh event for the named section to every open
// connection the user has. Write failures just drop that connection's event;
// the page will catch up on its next full load.
func (m *Manager) NotifyRefresh(userID uint, section string) {
	payload, err := json.Marshal(RefreshEvent{Event: "refresh", Section: section})
	if err != nil {
		return
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for conn := range m.connections[userID] {
		_ = conn.WriteMessage(websocket.TextMessage, payload)
	}
}

// ConnectionCount returns how many connections a user currently has.
func (m *Manager) ConnectionCount(userID uint) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections[userID])
}
