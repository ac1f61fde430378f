package websocket

import "time"

// Message types pushed to clients.
const (
	TypeTableChanged = "table_changed"
	TypeNotification = "notification"
)

// Envelope wraps every frame sent to a client so the front end can dispatch
// on the type field.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// TableChange tells subscribers that rows of a table changed; they are
// expected to refetch the affected list rather than patch it.
type TableChange struct {
	Table string `json:"table"`
	Event string `json:"event"`
}
