package events

import (
	"github.com/google/uuid"

	"gearguard/internal/entities"
)

const (
	RequestMovedName     = "request.moved"
	RequestCreatedName   = "request.created"
	RequestAssignedName  = "request.assigned"
	RequestCompletedName = "request.completed"
)

// RequestMoved fires after a kanban move commits. EquipmentScrapped is set
// when the move also retired the linked equipment.
type RequestMoved struct {
	Request           *entities.MaintenanceRequest
	FromStatus        string
	ToStatus          string
	EquipmentScrapped bool
	MovedBy           uuid.UUID
}

func (RequestMoved) Name() string { return RequestMovedName }

type RequestCreated struct {
	Request   *entities.MaintenanceRequest
	CreatedBy uuid.UUID
}

func (RequestCreated) Name() string { return RequestCreatedName }

type RequestAssigned struct {
	Request      *entities.MaintenanceRequest
	TechnicianID uuid.UUID
	UserID       uuid.UUID
}

func (RequestAssigned) Name() string { return RequestAssignedName }

type RequestCompleted struct {
	Request     *entities.MaintenanceRequest
	CompletedBy uuid.UUID
}

func (RequestCompleted) Name() string { return RequestCompletedName }
