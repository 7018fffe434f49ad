package ports

import (
	"context"

	"github.com/sirpyerre/inventario-api/internal/core/domain"
)

// AuthService orchestrates registration, login and token-based identity
// resolution.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	AuthenticateToken(ctx context.Context, token string) (*domain.User, error)
}
