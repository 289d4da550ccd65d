// internal/realtime/hub.go
// WebSocket hub broadcasting schedule updates to subscribed clients

package realtime

import (
	"encoding/json"
	"log"
	"sync"
)

// Event types pushed to clients
const (
	EventScheduleGenerated = "schedule_generated"
	EventScheduleCleared   = "schedule_cleared"
	EventMatchUpdated      = "match_updated"
)

// Message is the envelope sent to subscribed clients
type Message struct {
	Type         string      `json:"type"`
	TournamentID string      `json:"tournament_id,omitempty"`
	Data         interface{} `json:"data,omitempty"`
}

// Hub maintains active websocket connections grouped by tournament
type Hub struct {
	subscribers map[string]map[*Client]bool // tournament id -> clients

	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message

	logger *log.Logger
	mu     sync.RWMutex
}

// NewHub creates a new hub
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		broadcast:   make(chan *Message, 256),
		logger:      logger,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)

		case client := <-h.unregister:
			h.removeClient(client)
			client.close()

		case message := <-h.broadcast:
			h.send(message)
		}
	}
}

// Broadcast queues an event for every client subscribed to the tournament
func (h *Hub) Broadcast(tournamentID, eventType string, data interface{}) {
	h.broadcast <- &Message{
		Type:         eventType,
		TournamentID: tournamentID,
		Data:         data,
	}
}

// Subscribe adds a client to a tournament's subscriber set
func (h *Hub) Subscribe(client *Client, tournamentID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client.tournaments = append(client.tournaments, tournamentID)
	if h.subscribers[tournamentID] == nil {
		h.subscribers[tournamentID] = make(map[*Client]bool)
	}
	h.subscribers[tournamentID][client] = true

	h.logger.Printf("realtime client subscribed to tournament %s", tournamentID)
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, tournamentID := range client.tournaments {
		if h.subscribers[tournamentID] == nil {
			h.subscribers[tournamentID] = make(map[*Client]bool)
		}
		h.subscribers[tournamentID][client] = true
	}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, tournamentID := range client.tournaments {
		if clients, ok := h.subscribers[tournamentID]; ok {
			delete(clients, client)
			if len(clients) == 0 {
				delete(h.subscribers, tournamentID)
			}
		}
	}
}

func (h *Hub) send(message *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Printf("failed to marshal realtime message: %v", err)
		return
	}

	for client := range h.subscribers[message.TournamentID] {
		select {
		case client.send <- data:
		default:
			// Slow consumer: drop the connection rather than block the hub
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}
