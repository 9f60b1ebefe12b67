package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Event types published for session state changes
const (
	EventLogin     = "session.login"
	EventNavigated = "session.navigated"
	EventSidebar   = "session.sidebar"
	EventLogout    = "session.logout"
)

// Event is a session state change pushed to every connection of the session
type Event struct {
	// Type is one of the Event* constants
	Type string `json:"type"`

	// Session the event belongs to
	SessionID string `json:"sessionId"`

	ActiveView       string `json:"activeView,omitempty"`
	SidebarCollapsed bool   `json:"sidebarCollapsed"`

	// Timestamp when the state changed
	Timestamp time.Time `json:"timestamp"`
}

// Hub maintains the set of active clients and fans events out to them
type Hub struct {
	// Registered clients organized by session ID
	clients map[string]map[*Client]bool

	// Channel for events to deliver
	broadcast chan *Event

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Mutex for event listeners
	listenersMu sync.RWMutex

	// Event listeners
	listeners []chan *Event

	// Logger for Hub operations
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Event, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[string]map[*Client]bool),
		listeners:  []chan *Event{},
		logger:     logger,
	}
}

// Run handles client registrations and broadcasts until ctx is done
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Register adds a client unless the hub has stopped
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client unless the hub has stopped
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// registerClient registers a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.sessionID]; !ok {
		h.clients[client.sessionID] = make(map[*Client]bool)
	}
	h.clients[client.sessionID][client] = true

	h.logger.Info().
		Str("sessionID", client.sessionID).
		Int64("userID", client.userID).
		Msg("Client registered")
}

// unregisterClient unregisters a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.clients[client.sessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.send)

	// If no more clients in this session, clean up
	if len(clients) == 0 {
		delete(h.clients, client.sessionID)
	}

	h.logger.Info().
		Str("sessionID", client.sessionID).
		Int64("userID", client.userID).
		Msg("Client unregistered")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, clients := range h.clients {
		for client := range clients {
			h.removeLocked(client)
		}
	}
}

// broadcastEvent delivers an event to every client of its session
func (h *Hub) broadcastEvent(event *Event) {
	h.notifyListeners(event)

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("sessionID", event.SessionID).
			Msg("Failed to marshal event for broadcast")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[event.SessionID]
	if !ok {
		h.logger.Debug().
			Str("sessionID", event.SessionID).
			Msg("No clients in session for broadcast")
		return
	}

	for client := range clients {
		select {
		case client.send <- data:
		default:
			// Client's send buffer is full, drop it
			h.removeLocked(client)
		}
	}

	h.logger.Debug().
		Str("sessionID", event.SessionID).
		Str("type", event.Type).
		Int("clientCount", len(clients)).
		Msg("Event broadcasted to session")
}

// notifyListeners sends an event to all registered listeners
func (h *Hub) notifyListeners(event *Event) {
	h.listenersMu.RLock()
	defer h.listenersMu.RUnlock()

	for _, listener := range h.listeners {
		select {
		case listener <- event:
		default:
			h.logger.Warn().Msg("Skipped slow event listener")
		}
	}
}

// Publish queues an event for delivery. It never blocks the caller.
func (h *Hub) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case h.broadcast <- &event:
	default:
		h.logger.Warn().
			Str("sessionID", event.SessionID).
			Str("type", event.Type).
			Msg("Event queue full, dropping event")
	}
}

// GetClientsCount returns the number of connected clients for a session
func (h *Hub) GetClientsCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.clients[sessionID]; ok {
		return len(clients)
	}
	return 0
}

// AddListener registers a channel to receive all events
func (h *Hub) AddListener(listener chan *Event) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()

	h.listeners = append(h.listeners, listener)
	h.logger.Info().Msg("Added new event listener")
}

// RemoveListener removes a listener from the hub
func (h *Hub) RemoveListener(listener chan *Event) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()

	for i, l := range h.listeners {
		if l == listener {
			h.listeners[i] = h.listeners[len(h.listeners)-1]
			h.listeners = h.listeners[:len(h.listeners)-1]
			h.logger.Info().Msg("Removed event listener")
			break
		}
	}
}
