package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

const writeWait = 10 * time.Second

// Client is one live socket. conn.WriteJSON is not safe for concurrent use,
// so every write goes through writeMu.
type Client struct {
	UserID  int64
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// Send writes to this socket only; a reply never follows the user to a newer
// connection.
func (c *Client) Send(message domain.ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(message)
}

func (c *Client) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// ConnectionManager tracks the current socket of each user
type ConnectionManager struct {
	clients map[int64]*Client
	mu      sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{clients: make(map[int64]*Client)}
}

// AddConnection registers conn for the user, closing any previous socket.
func (cm *ConnectionManager) AddConnection(userID int64, conn *websocket.Conn) *Client {
	client := &Client{UserID: userID, conn: conn}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	if old, exists := cm.clients[userID]; exists {
		old.conn.Close()
	}
	cm.clients[userID] = client
	return client
}

// RemoveConnection closes the client's socket and forgets it if it is still
// the user's current one.
func (cm *ConnectionManager) RemoveConnection(client *Client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	client.conn.Close()
	if current, exists := cm.clients[client.UserID]; exists && current == client {
		delete(cm.clients, client.UserID)
	}
}

// Count returns the number of live connections
func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.clients)
}
