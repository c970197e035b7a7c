package dto

import (
	"encoding/json"
	"time"
)

// LoginRequest credenciales de inicio de sesión (username o email).
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de sesión y datos del usuario.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// ChangePasswordRequest cambio de contraseña del usuario autenticado.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
}

// CreateUserRequest alta de usuario (solo admin).
type CreateUserRequest struct {
	Username    string          `json:"username" validate:"required,min=3,max=80"`
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=6,max=72"`
	Role        string          `json:"role" validate:"omitempty,oneof=admin user"`
	Permissions json.RawMessage `json:"permissions"`
}

// UpdateUserRequest actualización parcial de usuario (solo admin).
type UpdateUserRequest struct {
	Email       *string         `json:"email" validate:"omitempty,email"`
	Password    *string         `json:"password" validate:"omitempty,min=6,max=72"`
	Role        *string         `json:"role" validate:"omitempty,oneof=admin user"`
	Active      *bool           `json:"is_active"`
	Permissions json.RawMessage `json:"permissions"`
}

// UserResponse usuario sin hash de contraseña.
type UserResponse struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	Role        string          `json:"role"`
	Active      bool            `json:"is_active"`
	Permissions json.RawMessage `json:"permissions,omitempty"`
	LastLogin   *time.Time      `json:"last_login"`
	CreatedAt   time.Time       `json:"created_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
