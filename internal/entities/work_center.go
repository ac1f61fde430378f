package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type WorkCenter struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Location    null.String `json:"location"`
	Description null.String `json:"description"`
	Capacity    int         `json:"capacity"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type ShortWorkCenter struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	Location null.String `json:"location"`
}
