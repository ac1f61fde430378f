package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// MaintenanceRequest is a ticket tracked from New through In Progress to a
// terminal Repaired, Scrap or Cancelled state.
type MaintenanceRequest struct {
	ID                   uuid.UUID    `json:"id"`
	RequestNumber        string       `json:"request_number"`
	Subject              string       `json:"subject"`
	Description          null.String  `json:"description"`
	EquipmentID          *uuid.UUID   `json:"equipment_id"`
	TeamID               *uuid.UUID   `json:"team_id"`
	AssignedTechnicianID *uuid.UUID   `json:"assigned_technician_id"`
	WorkCenterID         *uuid.UUID   `json:"work_center_id"`
	Type                 string       `json:"type"`
	Status               string       `json:"status"`
	Priority             string       `json:"priority"`
	ScheduledDate        null.Time    `json:"scheduled_date"`
	StartedAt            null.Time    `json:"started_at"`
	CompletedAt          null.Time    `json:"completed_at"`
	EstimatedHours       null.Float64 `json:"estimated_hours"`
	ActualHours          null.Float64 `json:"actual_hours"`
	Cost                 null.Float64 `json:"cost"`
	CreatedBy            *uuid.UUID   `json:"created_by"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`

	// joined rows
	Equipment  *ShortEquipment  `json:"equipment,omitempty"`
	Team       *ShortTeam       `json:"team,omitempty"`
	Technician *ShortTechnician `json:"technician,omitempty"`
	WorkCenter *ShortWorkCenter `json:"work_center,omitempty"`
}

// AnalyticsRow is the minimal projection the reporting aggregator consumes.
type AnalyticsRow struct {
	Status      string       `json:"status"`
	Type        string       `json:"type"`
	CreatedAt   time.Time    `json:"created_at"`
	CompletedAt null.Time    `json:"completed_at"`
	ActualHours null.Float64 `json:"actual_hours"`
	TeamName    null.String  `json:"team_name"`
}
