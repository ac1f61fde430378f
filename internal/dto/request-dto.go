package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type CreateRequestDTO struct {
	RequestNumber  string       `json:"request_number"`
	Subject        string       `json:"subject" validate:"required,min=3"`
	Description    null.String  `json:"description"`
	EquipmentID    *uuid.UUID   `json:"equipment_id"`
	TeamID         *uuid.UUID   `json:"team_id"`
	WorkCenterID   *uuid.UUID   `json:"work_center_id"`
	Type           string       `json:"type" validate:"required,oneof=Preventive Corrective Emergency"`
	Priority       string       `json:"priority" validate:"omitempty,oneof=Low Medium High Critical"`
	Status         string       `json:"status" validate:"omitempty,oneof=New 'In Progress' Repaired Scrap Cancelled"`
	ScheduledDate  null.Time    `json:"scheduled_date"`
	EstimatedHours null.Float64 `json:"estimated_hours" validate:"omitempty"`
}

type UpdateRequestDTO struct {
	Subject        *string      `json:"subject" validate:"omitempty,min=3"`
	Description    null.String  `json:"description"`
	EquipmentID    *uuid.UUID   `json:"equipment_id"`
	TeamID         *uuid.UUID   `json:"team_id"`
	TechnicianID   *uuid.UUID   `json:"assigned_technician_id"`
	WorkCenterID   *uuid.UUID   `json:"work_center_id"`
	Type           *string      `json:"type" validate:"omitempty,oneof=Preventive Corrective Emergency"`
	Priority       *string      `json:"priority" validate:"omitempty,oneof=Low Medium High Critical"`
	Status         *string      `json:"status" validate:"omitempty,oneof=New 'In Progress' Repaired Scrap Cancelled"`
	ScheduledDate  null.Time    `json:"scheduled_date"`
	EstimatedHours null.Float64 `json:"estimated_hours"`
	ActualHours    null.Float64 `json:"actual_hours"`
	Cost           null.Float64 `json:"cost"`
}

type CompleteRequestDTO struct {
	ActualHours float64     `json:"actual_hours" validate:"required,gt=0"`
	Notes       null.String `json:"notes"`
}
