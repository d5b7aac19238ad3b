// Package hub pushes order changes to connected fulfillment screens over websockets.
package hub

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/fundraiser-shop/utils"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// writeWait bounds a single write; a client that stops reading is dropped after it.
const writeWait = 5 * time.Second

// conn is the subset of *websocket.Conn the hub uses.
type conn interface {
	SetWriteDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub keeps the connected admin clients. It implements services.EventPublisher.
type Hub struct {
	mu      sync.Mutex
	clients map[conn]struct{}
}

func New() *Hub {
	return &Hub{clients: make(map[conn]struct{})}
}

// Register -> adds a connection to the broadcast set
func (h *Hub) Register(c conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

// Unregister -> drops and closes a connection
func (h *Hub) Unregister(c conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.Close()
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish broadcasts an event to every client. Clients that fail a write are dropped.
func (h *Hub) Publish(event string, data interface{}) {
	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling message: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		err := c.SetWriteDeadline(time.Now().Add(writeWait))
		if err == nil {
			err = c.WriteMessage(websocket.TextMessage, payload)
		}
		if err != nil {
			utils.ErrorLogger.Printf("Error sending %s to client: %v", event, err)
			delete(h.clients, c)
			c.Close()
		}
	}
	utils.InfoLogger.Debugf("Broadcast %s to %d clients", event, len(h.clients))
}
