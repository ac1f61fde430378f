package dto

import "gearguard/internal/entities"

type SignUpDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2"`
}

type SignInDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponseDTO struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	Profile      *entities.Profile `json:"profile"`
}

type UpdateProfileDTO struct {
	FullName   *string `json:"full_name" validate:"omitempty,min=2"`
	Department *string `json:"department"`
	AvatarURL  *string `json:"avatar_url" validate:"omitempty,url"`
}
