package websocket

import (
	"sync"

	"github.com/coder/websocket"
)

// ClientManager tracks the live carousel connections.
type ClientManager struct {
	clients map[string]*Client
	mu      sync.RWMutex
}

// NewClientManager creates a new ClientManager.
func NewClientManager() *ClientManager {
	return &ClientManager{clients: make(map[string]*Client)}
}

// Add registers a client.
func (m *ClientManager) Add(client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[client.ID] = client
}

// Remove unregisters a client and stops its sequencer.
func (m *ClientManager) Remove(clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if client, ok := m.clients[clientID]; ok {
		client.Close()
		delete(m.clients, clientID)
	}
}

// Count returns the number of connected clients.
func (m *ClientManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// GetAll returns all currently connected clients.
func (m *ClientManager) GetAll() []*Client {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]*Client, 0, len(m.clients))
	for _, client := range m.clients {
		all = append(all, client)
	}
	return all
}

// CloseAll disconnects every client with StatusGoingAway.
func (m *ClientManager) CloseAll(reason string) {
	for _, client := range m.GetAll() {
		client.Close()
		client.Disconnect(websocket.StatusGoingAway, reason)
	}
}
