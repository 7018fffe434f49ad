package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sirpyerre/inventario-api/internal/core/domain"
	"github.com/sirpyerre/inventario-api/internal/core/ports"
)

const collectionProducts = "productos"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(collectionProducts)}
}

type mongoProduct struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"nombre"`
	Price         float64            `bson:"precio"`
	Description   string             `bson:"descripcion"`
	ExpiresAt     time.Time          `bson:"fecha_caducidad"`
	PurchasedAt   time.Time          `bson:"fecha_compra"`
	Stock         int                `bson:"stock"`
	Supplier      string             `bson:"proveedor"`
	PurchasePrice float64            `bson:"precio_producto"`
	ImageURL      string             `bson:"imagen_url,omitempty"`
	CreatedAt     time.Time          `bson:"fecha_creacion"`
}

func (mp mongoProduct) toDomain() *domain.Product {
	return &domain.Product{
		ID:            mp.ID.Hex(),
		Name:          mp.Name,
		Price:         mp.Price,
		Description:   mp.Description,
		ExpiresAt:     mp.ExpiresAt.UTC(),
		PurchasedAt:   mp.PurchasedAt.UTC(),
		Stock:         mp.Stock,
		Supplier:      mp.Supplier,
		PurchasePrice: mp.PurchasePrice,
		ImageURL:      mp.ImageURL,
		CreatedAt:     mp.CreatedAt.UTC(),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	doc := mongoProduct{
		Name:          product.Name,
		Price:         product.Price,
		Description:   product.Description,
		ExpiresAt:     product.ExpiresAt,
		PurchasedAt:   product.PurchasedAt,
		Stock:         product.Stock,
		Supplier:      product.Supplier,
		PurchasePrice: product.PurchasePrice,
		ImageURL:      product.ImageURL,
		CreatedAt:     product.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *product
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var mp mongoProduct
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	var products []domain.Product
	for cur.Next(ctx) {
		var mp mongoProduct
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, *mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// Update applies a partial update and returns the resulting document.
func (r *ProductRepository) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	set := bson.M{}
	if input.Name != nil {
		set["nombre"] = *input.Name
	}
	if input.Price != nil {
		set["precio"] = *input.Price
	}
	if input.Description != nil {
		set["descripcion"] = *input.Description
	}
	if input.ExpiresAt != nil {
		set["fecha_caducidad"] = *input.ExpiresAt
	}
	if input.PurchasedAt != nil {
		set["fecha_compra"] = *input.PurchasedAt
	}
	if input.Stock != nil {
		set["stock"] = *input.Stock
	}
	if input.Supplier != nil {
		set["proveedor"] = *input.Supplier
	}
	if input.PurchasePrice != nil {
		set["precio_producto"] = *input.PurchasePrice
	}
	if input.ImageURL != nil {
		set["imagen_url"] = *input.ImageURL
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.M{"_id": oid}

	var mp mongoProduct
	if len(set) == 0 {
		// nothing to change, return the current document
		if err := r.coll.FindOne(ctx, filter).Decode(&mp); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrProductNotFound
			}
			return nil, fmt.Errorf("find product: %w", err)
		}
		return mp.toDomain(), nil
	}

	err = r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
