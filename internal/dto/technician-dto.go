package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type UpdateTechnicianDTO struct {
	TeamID         *uuid.UUID  `json:"team_id"`
	Specialization null.String `json:"specialization"`
	Status         *string     `json:"status" validate:"omitempty,oneof=Available Busy 'Off Duty'"`
}
