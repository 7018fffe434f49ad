package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sirpyerre/inventario-api/internal/core/domain"
	"github.com/sirpyerre/inventario-api/internal/core/ports"
)

// ProductService implements inventory CRUD.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:          input.Name,
		Price:         input.Price,
		Description:   input.Description,
		ExpiresAt:     input.ExpiresAt,
		PurchasedAt:   input.PurchasedAt,
		Stock:         input.Stock,
		Supplier:      input.Supplier,
		PurchasePrice: input.PurchasePrice,
		ImageURL:      input.ImageURL,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("nombre", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
