package connection

import (
	"sync"

	"github.com/gorilla/websocket"
)

// SeatNone marks a connection watching a game without holding a seat
const SeatNone = -1

// Client represents a connected player
type Client struct {
	ID         string
	Conn       *websocket.Conn
	Send       chan []byte
	PlayerName string
	GameID     string // game the connection is bound to, empty until joined
	Seat       int    // SeatNone for spectators
}

// Seated is the lookup shape for connections bound to a game
type Seated struct {
	ClientID string
	Seat     int
}

// Manager handles all client connections
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

// NewManager creates a new connection manager
func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start begins processing connection events
func (m *Manager) Start() {
	for {
		select {
		case client := <-m.Register:
			m.mutex.Lock()
			m.clients[client.ID] = client
			m.mutex.Unlock()
		case client := <-m.Unregister:
			m.mutex.Lock()
			if _, ok := m.clients[client.ID]; ok {
				delete(m.clients, client.ID)
				close(client.Send)
			}
			m.mutex.Unlock()
		}
	}
}

// BindGame attaches a client to a game at the given seat
func (m *Manager) BindGame(clientID, gameID string, seat int) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if client, ok := m.clients[clientID]; ok {
		client.GameID = gameID
		client.Seat = seat
		return true
	}
	return false
}

// SendToClient sends a message to one connection
func (m *Manager) SendToClient(clientID string, message []byte) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if client, ok := m.clients[clientID]; ok {
		client.Send <- message
		return true
	}
	return false
}

// SendToGame sends a message to every connection bound to a game,
// spectators included.
func (m *Manager) SendToGame(gameID string, message []byte) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, client := range m.clients {
		if client.GameID == gameID {
			client.Send <- message
		}
	}
}

// AtGame lists the connections bound to a game and the seats they hold
func (m *Manager) AtGame(gameID string) []Seated {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var seated []Seated
	for _, client := range m.clients {
		if client.GameID == gameID {
			seated = append(seated, Seated{ClientID: client.ID, Seat: client.Seat})
		}
	}
	return seated
}
