package service

import (
	"context"
	"fmt"
	"strings"

	"bazaar-kart/internal/model"
	"bazaar-kart/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// GetByOrderID retrieves an order record by its human-readable id. A missing
// record and a backend failure both surface as errors; there is no empty
// success.
func (s *orderService) GetByOrderID(ctx context.Context, orderID string) (*model.OrderRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		s.logger.Warn().Msg("order ID is empty")
		return nil, model.ErrOrderNotFound
	}

	rec, err := s.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to fetch order")
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}

	if rec == nil {
		s.logger.Debug().Str("order_id", orderID).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return rec, nil
}
