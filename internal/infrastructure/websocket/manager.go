package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"flatmatch/pkg/logger"
)

// Client represents one connected WebSocket user.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Manager tracks all active WebSocket connections, one per user. Connection
// lifecycle and incoming traffic are handed to the hooks registered with
// SetHandlers.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex

	onConnect    func(*Client)
	onDisconnect func(*Client)
	onMessage    func(*Client, []byte)
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// SetHandlers registers the lifecycle and message hooks. Must be called
// before Start.
func (m *Manager) SetHandlers(onConnect, onDisconnect func(*Client), onMessage func(*Client, []byte)) {
	m.onConnect = onConnect
	m.onDisconnect = onDisconnect
	m.onMessage = onMessage
}

// Start runs the manager's main loop in a goroutine
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				// A reconnect replaces the previous connection.
				if prev, ok := m.clients[client.UserID]; ok {
					close(prev.Send)
				}
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				logger.Info("Client registered: %s", client.UserID)

				if m.onConnect != nil {
					m.onConnect(client)
				}

			case client := <-m.Unregister:
				m.mutex.Lock()
				current, ok := m.clients[client.UserID]
				if ok && current == client {
					delete(m.clients, client.UserID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Info("Client unregistered: %s", client.UserID)

				if ok && current == client && m.onDisconnect != nil {
					m.onDisconnect(client)
				}

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser sends a message to a specific user if connected.
func (m *Manager) SendToUser(userID string, message []byte) {
	m.mutex.RLock()
	client, ok := m.clients[userID]
	m.mutex.RUnlock()

	if !ok {
		return
	}

	select {
	case client.Send <- message:
	default:
		logger.Warn("Dropping message for slow client %s", userID)
	}
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("WebSocket read error for %s: %v", c.UserID, err)
			}
			break
		}

		if m.onMessage != nil {
			m.onMessage(c, message)
		}
	}
}

// WritePump sends messages to the WebSocket connection
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Error("WebSocket write error for %s: %v", c.UserID, err)
			return
		}
	}
}
