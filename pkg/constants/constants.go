package constants

// Request statuses. The first four double as the kanban columns.
const (
	RequestStatusNew        = "New"
	RequestStatusInProgress = "In Progress"
	RequestStatusRepaired   = "Repaired"
	RequestStatusScrap      = "Scrap"
	RequestStatusCancelled  = "Cancelled"
)

// BoardColumns is the fixed column set of the kanban view, in display order.
var BoardColumns = []string{
	RequestStatusNew,
	RequestStatusInProgress,
	RequestStatusRepaired,
	RequestStatusScrap,
}

func IsBoardColumn(status string) bool {
	for _, s := range BoardColumns {
		if s == status {
			return true
		}
	}
	return false
}

// Request types and priorities.
const (
	RequestTypePreventive = "Preventive"
	RequestTypeCorrective = "Corrective"
	RequestTypeEmergency  = "Emergency"

	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// Equipment statuses.
const (
	EquipmentStatusActive           = "Active"
	EquipmentStatusInactive         = "Inactive"
	EquipmentStatusUnderMaintenance = "Under Maintenance"
	EquipmentStatusScrap            = "Scrap"
)

// Work center statuses.
const (
	WorkCenterStatusActive   = "Active"
	WorkCenterStatusInactive = "Inactive"
)

// Technician statuses.
const (
	TechnicianStatusAvailable = "Available"
	TechnicianStatusBusy      = "Busy"
	TechnicianStatusOffDuty   = "Off Duty"
)

// Profile roles.
const (
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
	RoleManager    = "manager"
)

// Notification types.
const (
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationInfo    = "info"
	NotificationError   = "error"
)
