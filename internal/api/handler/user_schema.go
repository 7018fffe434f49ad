package handler

import "github.com/sirpyerre/inventario-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Name     string `json:"nombre"   validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest carries a partial update; empty fields are ignored.
// The rol field only takes effect when the caller is an administrator.
type updateUserRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"rol"      validate:"omitempty,oneof=administrador gerente empleado"`
}

// --- Response types ---

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"usuario,omitempty"`
}

type userResponse struct {
	User *domain.User `json:"usuario"`
}

type usersResponse struct {
	Users []domain.User `json:"usuarios"`
}

type messageResponse struct {
	Message string `json:"message"`
}
