package entity

import (
	"encoding/json"
	"time"
)

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	Active       bool
	Permissions  json.RawMessage
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// IsValidRole indica si r es un rol conocido.
func IsValidRole(r string) bool { return r == RoleAdmin || r == RoleUser }
