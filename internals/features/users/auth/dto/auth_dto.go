package dto

import "strings"

type LoginRequest struct {
	RegistrationID string `json:"registration_id" form:"registration_id" validate:"required,numeric,len=10"`
	Password       string `json:"password" form:"password" validate:"required,max=72"`
}

func (r *LoginRequest) Normalize() { r.RegistrationID = strings.TrimSpace(r.RegistrationID) }

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72,nefield=CurrentPassword"`
}
