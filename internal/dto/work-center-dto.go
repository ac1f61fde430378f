package dto

import "github.com/aarondl/null/v8"

type CreateWorkCenterDTO struct {
	Name        string      `json:"name" validate:"required,min=2"`
	Location    null.String `json:"location"`
	Description null.String `json:"description"`
	Capacity    int         `json:"capacity" validate:"omitempty,gte=0"`
	Status      string      `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type UpdateWorkCenterDTO struct {
	Name        *string     `json:"name" validate:"omitempty,min=2"`
	Location    null.String `json:"location"`
	Description null.String `json:"description"`
	Capacity    *int        `json:"capacity" validate:"omitempty,gte=0"`
	Status      *string     `json:"status" validate:"omitempty,oneof=Active Inactive"`
}
