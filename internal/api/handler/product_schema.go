package handler

import (
	"time"

	"github.com/sirpyerre/inventario-api/internal/core/domain"
)

// --- Request types ---

type createProductRequest struct {
	Name          string    `json:"nombre"          validate:"required"`
	Price         float64   `json:"precio"          validate:"required,gte=0"`
	Description   string    `json:"descripcion"     validate:"required"`
	ExpiresAt     time.Time `json:"fecha_caducidad" validate:"required"`
	PurchasedAt   time.Time `json:"fecha_compra"    validate:"required"`
	Stock         int       `json:"stock"           validate:"gte=0"`
	Supplier      string    `json:"proveedor"       validate:"required"`
	PurchasePrice float64   `json:"precio_producto" validate:"required,gte=0"`
	ImageURL      string    `json:"imagen_url"      validate:"omitempty,url"`
}

// updateProductRequest carries a partial update; absent fields are left
// untouched, which is why every field is a pointer.
type updateProductRequest struct {
	Name          *string    `json:"nombre"`
	Price         *float64   `json:"precio"          validate:"omitempty,gte=0"`
	Description   *string    `json:"descripcion"`
	ExpiresAt     *time.Time `json:"fecha_caducidad"`
	PurchasedAt   *time.Time `json:"fecha_compra"`
	Stock         *int       `json:"stock"           validate:"omitempty,gte=0"`
	Supplier      *string    `json:"proveedor"`
	PurchasePrice *float64   `json:"precio_producto" validate:"omitempty,gte=0"`
	ImageURL      *string    `json:"imagen_url"      validate:"omitempty,url"`
}

// --- Response types ---

type productResponse struct {
	Product *domain.Product `json:"producto"`
}

type productsResponse struct {
	Products []domain.Product `json:"productos"`
}
