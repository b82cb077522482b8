package model

import "time"

// Admin represents a warden or watchman account.
type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminLoginRequest is the payload for admin authentication.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// AdminSignupRequest is the payload for creating a new admin account.
// Role is re-validated against the closed set in the service layer so a
// mixed-case value like "Warden" is accepted but stored normalized.
type AdminSignupRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Role     string `json:"role" binding:"required"`
}

// AdminLoginResponse is returned after successful login. Role and dashboard
// are an initial-routing convenience; the token remains the source of truth.
type AdminLoginResponse struct {
	Token     string          `json:"token"`
	Role      Role            `json:"role"`
	Dashboard DashboardTarget `json:"dashboard"`
	Admin     Admin           `json:"admin"`
}
