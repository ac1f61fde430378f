package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// Profile is the application-facing account record, one-to-one with an
// authenticated identity.
type Profile struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	FullName     null.String `json:"full_name"`
	Role         string      `json:"role"`
	Department   null.String `json:"department"`
	AvatarURL    null.String `json:"avatar_url"`
	PasswordHash string      `json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type ShortProfile struct {
	ID       uuid.UUID   `json:"id"`
	FullName null.String `json:"full_name"`
	Email    string      `json:"email"`
}
