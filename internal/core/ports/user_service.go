package ports

import (
	"context"

	"github.com/sirpyerre/inventario-api/internal/core/domain"
)

// UpdateUserInput carries a partial user update. Empty fields are left
// untouched. Role is applied only when the acting caller is an
// administrator; otherwise it is silently ignored.
type UpdateUserInput struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
	Actor    *domain.User
}

// UserService defines the administrative user operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}
