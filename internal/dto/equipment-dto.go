package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type CreateEquipmentDTO struct {
	Name         string      `json:"name" validate:"required,min=2"`
	SerialNumber string      `json:"serial_number" validate:"required"`
	CategoryID   *uuid.UUID  `json:"category_id"`
	TeamID       *uuid.UUID  `json:"team_id"`
	Status       string      `json:"status" validate:"omitempty,oneof=Active Inactive 'Under Maintenance' Scrap"`
	Location     null.String `json:"location"`
	Department   null.String `json:"department"`
	AssignedTo   null.String `json:"assigned_to"`
	PurchaseDate null.Time   `json:"purchase_date"`
	WarrantyDate null.Time   `json:"warranty_expiry_date"`
	Notes        null.String `json:"notes"`
}

type UpdateEquipmentDTO struct {
	Name         *string     `json:"name" validate:"omitempty,min=2"`
	SerialNumber *string     `json:"serial_number"`
	CategoryID   *uuid.UUID  `json:"category_id"`
	TeamID       *uuid.UUID  `json:"team_id"`
	Status       *string     `json:"status" validate:"omitempty,oneof=Active Inactive 'Under Maintenance' Scrap"`
	Location     null.String `json:"location"`
	Department   null.String `json:"department"`
	AssignedTo   null.String `json:"assigned_to"`
	PurchaseDate null.Time   `json:"purchase_date"`
	WarrantyDate null.Time   `json:"warranty_expiry_date"`
	Notes        null.String `json:"notes"`
}

type CreateEquipmentCategoryDTO struct {
	Name        string      `json:"name" validate:"required,min=2"`
	Description null.String `json:"description"`
}
