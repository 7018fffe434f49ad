package domain

import "time"

// Product is an inventory item. Monetary amounts keep the original contract:
// Price is the sale price, PurchasePrice what the supplier charged.
type Product struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"nombre" bson:"nombre"`
	Price         float64   `json:"precio" bson:"precio"`
	Description   string    `json:"descripcion" bson:"descripcion"`
	ExpiresAt     time.Time `json:"fecha_caducidad" bson:"fecha_caducidad"`
	PurchasedAt   time.Time `json:"fecha_compra" bson:"fecha_compra"`
	Stock         int       `json:"stock" bson:"stock"`
	Supplier      string    `json:"proveedor" bson:"proveedor"`
	PurchasePrice float64   `json:"precio_producto" bson:"precio_producto"`
	ImageURL      string    `json:"imagen_url,omitempty" bson:"imagen_url,omitempty"`
	CreatedAt     time.Time `json:"fecha_creacion" bson:"fecha_creacion"`
}
