package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bazaar-kart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Insert persists an order record in a single statement. The order_rec table
// carries a unique constraint on order_id; a violation is reported as
// model.ErrDuplicateOrderID so the caller can regenerate the id and retry.
func (r *orderRepository) Insert(ctx context.Context, rec *model.OrderRecord) error {
	itemList, err := json.Marshal(rec.ItemList)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", rec.OrderID).Msg("failed to encode item list")
		return fmt.Errorf("failed to encode item list: %w", err)
	}

	query := `
		INSERT INTO order_rec (
			order_id, buyer_name, buyer_address, buyer_phone,
			business_id, email, total_calculated_price, item_list, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.pool.Exec(ctx, query,
		rec.OrderID,
		rec.BuyerName,
		rec.BuyerAddress,
		rec.BuyerPhone,
		rec.BusinessID,
		rec.Email,
		rec.TotalCalculatedPrice,
		itemList,
		rec.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Warn().Str("order_id", rec.OrderID).Msg("order id collision")
			return model.ErrDuplicateOrderID
		}
		r.logger.Error().Err(err).Str("order_id", rec.OrderID).Msg("failed to insert order")
		return fmt.Errorf("failed to insert order: %w", err)
	}

	r.logger.Debug().Str("order_id", rec.OrderID).Msg("order inserted successfully")

	return nil
}

// GetByOrderID retrieves the order record matching the human-readable order id.
func (r *orderRepository) GetByOrderID(ctx context.Context, orderID string) (*model.OrderRecord, error) {
	query := `
		SELECT order_id, buyer_name, buyer_address, buyer_phone,
		       business_id, email, total_calculated_price, item_list, created_at
		FROM order_rec
		WHERE order_id = $1
	`

	var rec model.OrderRecord
	var itemList []byte
	err := r.pool.QueryRow(ctx, query, orderID).Scan(
		&rec.OrderID,
		&rec.BuyerName,
		&rec.BuyerAddress,
		&rec.BuyerPhone,
		&rec.BusinessID,
		&rec.Email,
		&rec.TotalCalculatedPrice,
		&itemList,
		&rec.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", orderID).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	if err := json.Unmarshal(itemList, &rec.ItemList); err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to decode item list")
		return nil, fmt.Errorf("failed to decode item list: %w", err)
	}

	return &rec, nil
}
