package domain

import "time"

const (
	RoleAdmin    = "administrador"
	RoleManager  = "gerente"
	RoleEmployee = "empleado"
)

// ValidRole reports whether role belongs to the canonical enumeration.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// User models an authenticated actor in the system. Wire field names follow
// the public API contract; the password hash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"nombre"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"rol"`
	CreatedAt    time.Time `json:"fecha_registro"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
