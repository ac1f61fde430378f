package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type EquipmentCategory struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}

type ShortCategory struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Equipment struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	SerialNumber string      `json:"serial_number"`
	CategoryID   *uuid.UUID  `json:"category_id"`
	TeamID       *uuid.UUID  `json:"team_id"`
	Status       string      `json:"status"`
	Location     null.String `json:"location"`
	Department   null.String `json:"department"`
	AssignedTo   null.String `json:"assigned_to"`
	PurchaseDate null.Time   `json:"purchase_date"`
	WarrantyDate null.Time   `json:"warranty_expiry_date"`
	Notes        null.String `json:"notes"`
	CreatedBy    *uuid.UUID  `json:"created_by"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	// joined rows
	Category *ShortCategory `json:"category,omitempty"`
	Team     *ShortTeam     `json:"team,omitempty"`
}

type ShortEquipment struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	SerialNumber string    `json:"serial_number"`
}
