package api

import (
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"agri-connect/internal/shared/jwt"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn serializes writes to one websocket connection. gorilla allows
// at most one concurrent writer, and two goroutines write here: the
// handler's ping ticker and the push consumer via SendToUser.
type wsConn struct {
	sock *websocket.Conn
	mu   sync.Mutex
}

func (c *wsConn) writeJSON(payload interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sock.WriteJSON(payload)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sock.WriteMessage(websocket.PingMessage, nil)
}

func (c *wsConn) close() {
	c.sock.Close()
}

// WSManager tracks one realtime connection per user and pushes
// notifications to it as they are created. The websocket channel is an
// optimization on top of the polling baseline: a user with no
// connection simply picks the notification up on the next poll.
type WSManager struct {
	conns map[string]*wsConn
	mu    sync.RWMutex
}

func NewWSManager() *WSManager {
	return &WSManager{conns: make(map[string]*wsConn)}
}

// Register wraps the socket for serialized writes and replaces any
// previous connection for the user.
func (m *WSManager) Register(userID string, sock *websocket.Conn) *wsConn {
	conn := &wsConn{sock: sock}

	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.conns[userID]; ok {
		old.close()
	}
	m.conns[userID] = conn
	return conn
}

func (m *WSManager) Unregister(userID string, conn *wsConn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conns[userID] == conn {
		delete(m.conns, userID)
	}
}

// SendToUser pushes a payload to the user's connection, if any.
func (m *WSManager) SendToUser(userID string, payload interface{}) error {
	m.mu.RLock()
	conn, ok := m.conns[userID]
	m.mu.RUnlock()

	if !ok {
		return nil // not connected, polling will catch up
	}
	return conn.writeJSON(payload)
}

// UserWSHandler upgrades /ws/users/{id}?token= to a websocket. The
// session token must belong to the user in the path.
func (h *Handler) UserWSHandler(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 || parts[0] != "ws" || parts[1] != "users" {
		http.Error(w, "invalid path", http.StatusBadRequest)
		return
	}
	userID := parts[2]

	claims, err := jwt.ParseToken(r.URL.Query().Get("token"))
	if err != nil || claims.UserID != userID {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	sock, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	conn := h.ws.Register(userID, sock)
	log.Printf("ws connected: user %s", userID)

	sock.SetReadDeadline(time.Now().Add(60 * time.Second))
	sock.SetPongHandler(func(string) error {
		sock.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := sock.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			h.ws.Unregister(userID, conn)
			conn.close()
			log.Printf("ws disconnected: user %s", userID)
			return
		case <-ticker.C:
			if err := conn.ping(); err != nil {
				h.ws.Unregister(userID, conn)
				conn.close()
				return
			}
		}
	}
}
