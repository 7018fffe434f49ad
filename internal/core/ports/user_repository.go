package ports

import (
	"context"

	"github.com/sirpyerre/inventario-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user records.
// The store enforces email uniqueness; Create surfaces violations as
// domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
