package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func registerClient(t *testing.T, hub *Hub, userID uuid.UUID) *Client {
	t.Helper()
	client := &Client{Hub: hub, Send: make(chan []byte, 256), UserID: userID}
	hub.Register <- client
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return hub.clients[client]
	}, time.Second, 5*time.Millisecond)
	return client
}

func TestSendToUserDeliversToRegisteredClient(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	userID := uuid.New()
	client := registerClient(t, hub, userID)

	err := hub.SendToUser(userID, map[string]string{"title": "hello"}, TypeNotification)
	require.NoError(t, err)

	select {
	case frame := <-client.Send:
		require.Contains(t, string(frame), TypeNotification)
	case <-time.After(time.Second):
		t.Fatal("no frame delivered")
	}
}

func TestUnregisterForgetsUserSockets(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	userID := uuid.New()
	client := registerClient(t, hub, userID)

	hub.unregister <- client
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.userClients[userID]) == 0
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, hub.SendToUser(userID, map[string]string{"title": "late"}, TypeNotification))
}

func TestSlowClientEvictionAlsoForgetsUserSockets(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	userID := uuid.New()
	client := registerClient(t, hub, userID)

	for i := 0; i < cap(client.Send); i++ {
		client.Send <- []byte("backlog")
	}

	// Full send buffer makes the broadcast loop evict the client.
	require.NoError(t, hub.Broadcast(TableChange{Table: "maintenance_requests", Event: "UPDATE"}, TypeTableChanged))
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return !hub.clients[client] && len(hub.userClients[userID]) == 0
	}, time.Second, 5*time.Millisecond)

	// A push to the evicted user's ID must not reach the closed channel.
	require.NoError(t, hub.SendToUser(userID, map[string]string{"title": "scrap"}, TypeNotification))
}
