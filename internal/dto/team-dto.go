package dto

import "github.com/aarondl/null/v8"

type CreateTeamDTO struct {
	Name        string      `json:"name" validate:"required,min=2"`
	Description null.String `json:"description"`
	Color       string      `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateTeamDTO struct {
	Name        *string     `json:"name" validate:"omitempty,min=2"`
	Description null.String `json:"description"`
	Color       *string     `json:"color" validate:"omitempty,hexcolor"`
}
