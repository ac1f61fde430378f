package dto

import (
	"github.com/google/uuid"

	"gearguard/internal/entities"
)

type MoveRequestDTO struct {
	RequestID uuid.UUID `json:"request_id" validate:"required"`
	ToStatus  string    `json:"to_status" validate:"required,oneof=New 'In Progress' Repaired Scrap"`
}

// BoardColumnDTO is one kanban lane with its requests in list order.
type BoardColumnDTO struct {
	Status   string                        `json:"status"`
	Requests []entities.MaintenanceRequest `json:"requests"`
}

type BoardDTO struct {
	Columns []BoardColumnDTO `json:"columns"`
}

// MoveResultDTO reports what a move changed. FromStatus lets a client revert
// its optimistic view if it issued the move blind.
type MoveResultDTO struct {
	Request           *entities.MaintenanceRequest `json:"request"`
	FromStatus        string                       `json:"from_status"`
	ToStatus          string                       `json:"to_status"`
	EquipmentScrapped bool                         `json:"equipment_scrapped"`
}
