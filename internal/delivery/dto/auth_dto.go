package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Username     string `json:"username" validate:"required,min=3,max=150"`
	FirstName    string `json:"first_name" validate:"required,max=150"`
	LastName     string `json:"last_name" validate:"required,max=150"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,min=8"`
	Role         string `json:"role" validate:"required,oneof=patient doctor"`
	ImageURL     string `json:"image_url" validate:"omitempty,max=500"`
	AddressLine1 string `json:"address_line1" validate:"required,max=255"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,max=100"`
	Pincode      string `json:"pincode" validate:"required,numeric,min=5,max=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type ProfileResponse struct {
	Role         string `json:"role"`
	ImageURL     string `json:"image_url,omitempty"`
	AddressLine1 string `json:"address_line1"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

type UserResponse struct {
	ID        uuid.UUID        `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	FullName  string           `json:"full_name"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
