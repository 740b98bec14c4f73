package ws

import (
	"sync"

	"tasmeem_backend/internal/logger"
	"tasmeem_backend/internal/models"
)

// Event is the envelope pushed to connected clients.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Manager tracks one live connection per user and fans order-thread events
// out to them. It satisfies services.MessageNotifier.
type Manager struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			if old, ok := m.clients[client.UserID]; ok {
				close(old.Send)
			}
			m.clients[client.UserID] = client
			m.mu.Unlock()
			logger.Debug("WebSocket client registered", "user_id", client.UserID)

		case client := <-m.unregister:
			m.mu.Lock()
			if current, ok := m.clients[client.UserID]; ok && current == client {
				close(client.Send)
				delete(m.clients, client.UserID)
			}
			m.mu.Unlock()
			logger.Debug("WebSocket client unregistered", "user_id", client.UserID)
		}
	}
}

// NotifyMessage pushes a stored message to both ends of the conversation.
// Offline users simply miss the push; the thread itself is authoritative.
func (m *Manager) NotifyMessage(message *models.Message) {
	event := Event{Type: "message", Payload: message}
	m.sendTo(message.ReceiverID, event)
	m.sendTo(message.SenderID, event)
}

func (m *Manager) sendTo(userID string, event Event) {
	m.mu.RLock()
	client, ok := m.clients[userID]
	m.mu.RUnlock()
	if !ok {
		return
	}

	select {
	case client.Send <- event:
	default:
		// Send buffer full means the reader is gone or stuck.
		go func() { m.unregister <- client }()
	}
}

func (m *Manager) IsConnected(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.clients[userID]
	return exists
}

func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
