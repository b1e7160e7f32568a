package service

import (
	"context"
	"fmt"
	"strings"

	"bazaar-kart/internal/model"
	"bazaar-kart/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves catalogue products with pagination and optional filters.
func (s *productService) GetAll(ctx context.Context, limit, offset int, category, search string) ([]model.Product, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	category = strings.TrimSpace(category)
	search = strings.TrimSpace(search)

	products, err := s.productRepo.GetAll(ctx, limit, offset, category, search)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Str("category", category).
			Msg("failed to get products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int("limit", limit).
		Int("offset", offset).
		Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single catalogue product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if id <= 0 {
		s.logger.Warn().Int64("product_id", id).Msg("invalid product ID")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Categories retrieves the distinct catalogue categories.
func (s *productService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	s.logger.Debug().Int("count", len(categories)).Msg("retrieved categories")

	return categories, nil
}
