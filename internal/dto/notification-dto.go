package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type CreateNotificationDTO struct {
	UserID  uuid.UUID   `json:"user_id" validate:"required"`
	Title   string      `json:"title" validate:"required"`
	Message string      `json:"message" validate:"required"`
	Type    string      `json:"type" validate:"omitempty,oneof=success warning info error"`
	Link    null.String `json:"link"`
}
