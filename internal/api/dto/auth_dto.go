package dto

import "time"

// LoginRequest payload for admin login.
type LoginRequest struct {
	Contact  string `json:"contact"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires"`
}
