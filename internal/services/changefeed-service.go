package services

import (
	"go.uber.org/zap"

	"gearguard/pkg/websocket"
)

// ChangeFeedInterface announces committed writes to connected clients.
// Clients refetch the named table; the feed never carries row data.
type ChangeFeedInterface interface {
	TableChanged(table, event string)
}

type ChangeFeed struct {
	hub    *websocket.Hub
	logger *zap.Logger
}

func NewChangeFeed(hub *websocket.Hub, logger *zap.Logger) ChangeFeedInterface {
	return &ChangeFeed{hub: hub, logger: logger}
}

func (f *ChangeFeed) TableChanged(table, event string) {
	err := f.hub.Broadcast(websocket.TableChange{Table: table, Event: event}, websocket.TypeTableChanged)
	if err != nil {
		f.logger.Warn("failed to broadcast table change",
			zap.String("table", table),
			zap.String("event", event),
			zap.Error(err),
		)
	}
}
