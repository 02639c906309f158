package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         string // admin, manager, user
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
