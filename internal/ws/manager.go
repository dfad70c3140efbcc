package ws

import (
	"sync"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
)

// Event is one moderation lifecycle change pushed to connected admin
// dashboards.
type Event struct {
	Event   string          `json:"event"`
	Posting *models.Posting `json:"posting"`
	At      time.Time       `json:"at"`
}

// Manager fans moderation events out to connected admin clients. It
// implements services.ModerationNotifier.
type Manager struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 64),
	}
}

// Run owns the client set. Call in its own goroutine.
func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			m.clients[client.ID] = client
			m.mu.Unlock()
			logger.Debug("ws client registered", "id", client.ID, "total", m.count())

		case client := <-m.unregister:
			m.mu.Lock()
			if _, ok := m.clients[client.ID]; ok {
				close(client.Send)
				delete(m.clients, client.ID)
			}
			m.mu.Unlock()
			logger.Debug("ws client unregistered", "id", client.ID, "total", m.count())

		case event := <-m.broadcast:
			m.broadcastEvent(event)
		}
	}
}

// NotifyModeration queues the event for broadcast. Never blocks the calling
// mutation: a full queue drops the event.
func (m *Manager) NotifyModeration(event string, posting *models.Posting) {
	select {
	case m.broadcast <- Event{Event: event, Posting: posting, At: time.Now()}:
	default:
		logger.Warn("ws broadcast queue full, event dropped", "event", event)
	}
}

func (m *Manager) broadcastEvent(event Event) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for id, client := range m.clients {
		select {
		case client.Send <- event:
		default:
			// Slow consumer: disconnect instead of blocking the feed.
			go func(c *Client) { m.unregister <- c }(client)
			logger.Warn("ws client too slow, disconnecting", "id", id)
		}
	}
}

func (m *Manager) count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
