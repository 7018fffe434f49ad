package ports

import (
	"context"
	"time"

	"github.com/sirpyerre/inventario-api/internal/core/domain"
)

// CreateProductInput carries all data needed to register a new product.
type CreateProductInput struct {
	Name          string
	Price         float64
	Description   string
	ExpiresAt     time.Time
	PurchasedAt   time.Time
	Stock         int
	Supplier      string
	PurchasePrice float64
	ImageURL      string
}

// UpdateProductInput carries a partial product update. Nil fields are left
// untouched.
type UpdateProductInput struct {
	Name          *string
	Price         *float64
	Description   *string
	ExpiresAt     *time.Time
	PurchasedAt   *time.Time
	Stock         *int
	Supplier      *string
	PurchasePrice *float64
	ImageURL      *string
}

// ProductService defines use-case operations for inventory items.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
