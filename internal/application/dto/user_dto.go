package dto

import "time"

// UserResponse perfil de app_users.
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	VitrineID string    `json:"vitrine_id,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateUserRequest cambios de acceso que puede hacer un admin.
type UpdateUserRequest struct {
	Role      string `json:"role" validate:"required,oneof=admin seller"`
	VitrineID string `json:"vitrine_id"`
	Active    bool   `json:"active"`
}
