package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hub tracks connected clients and fans messages out to them. Broadcasts go
// to everyone; notification pushes target the sockets of a single user.
type Hub struct {
	clients     map[*Client]bool
	userClients map[uuid.UUID][]*Client
	broadcast   chan []byte
	Register    chan *Client
	unregister  chan *Client
	mu          sync.RWMutex
	logger      *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		userClients: make(map[uuid.UUID][]*Client),
		broadcast:   make(chan []byte, 64),
		Register:    make(chan *Client),
		unregister:  make(chan *Client),
		logger:      logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.userClients[client.UserID] = append(h.userClients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Debug("websocket client registered", zap.String("userID", client.UserID.String()))
		case client := <-h.unregister:
			h.mu.Lock()
			h.dropClient(client)
			h.mu.Unlock()
			h.logger.Debug("websocket client disconnected", zap.String("userID", client.UserID.String()))
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					h.dropClient(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// dropClient removes a client from both tracking maps and closes its send
// channel. Caller must hold h.mu. Keeping the maps in sync here matters:
// a client left in userClients after its channel closed would make the next
// SendToUser panic.
func (h *Hub) dropClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)
	remaining := h.userClients[client.UserID][:0]
	for _, c := range h.userClients[client.UserID] {
		if c != client {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == 0 {
		delete(h.userClients, client.UserID)
	} else {
		h.userClients[client.UserID] = remaining
	}
}

// Broadcast sends an envelope to every connected client.
func (h *Hub) Broadcast(payload interface{}, messageType string) error {
	message, err := json.Marshal(Envelope{
		Type:      messageType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	h.broadcast <- message
	return nil
}

// SendToUser delivers an envelope to every open socket of one user. A user
// with no open sockets is not an error.
func (h *Hub) SendToUser(userID uuid.UUID, payload interface{}, messageType string) error {
	message, err := json.Marshal(Envelope{
		Type:      messageType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		h.logger.Error("failed to marshal websocket envelope", zap.Error(err))
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.userClients[userID] {
		select {
		case client.Send <- message:
		default:
		}
	}
	return nil
}
