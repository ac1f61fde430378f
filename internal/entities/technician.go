package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// Technician is a user-linked worker record eligible for request assignment.
// Created lazily the first time a user self-assigns a request.
type Technician struct {
	ID             uuid.UUID   `json:"id"`
	UserID         *uuid.UUID  `json:"user_id"`
	TeamID         *uuid.UUID  `json:"team_id"`
	Specialization null.String `json:"specialization"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`

	Profile *ShortProfile `json:"profile,omitempty"`
}

type ShortTechnician struct {
	ID       uuid.UUID   `json:"id"`
	UserID   *uuid.UUID  `json:"user_id"`
	FullName null.String `json:"full_name"`
}
