package repository

import (
	"context"
	"fmt"

	"bazaar-kart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves catalogue products with pagination and optional filters.
func (r *productRepository) GetAll(ctx context.Context, limit, offset int, category, search string) ([]model.Product, error) {
	query := `
		SELECT id, name, description, category, price, price_inr, discounted_price, created_at
		FROM new_products
		WHERE ($3 = '' OR category = $3)
		  AND ($4 = '' OR name ILIKE '%' || $4 || '%')
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset, category, search)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Str("category", category).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.PriceINR, &p.DiscountedPrice, &p.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single catalogue product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id, name, description, category, price, price_inr, discounted_price, created_at
		FROM new_products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.PriceINR, &p.DiscountedPrice, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Categories retrieves the distinct non-empty catalogue categories, sorted.
func (r *productRepository) Categories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category
		FROM new_products
		WHERE category <> ''
		ORDER BY category
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetVendorContacts resolves the owning business and contact email for the
// given product ids. Rows come back in the order the ids were supplied so that
// the caller's "first product wins" rule is deterministic.
func (r *productRepository) GetVendorContacts(ctx context.Context, ids []int64) ([]model.VendorContact, error) {
	if len(ids) == 0 {
		return []model.VendorContact{}, nil
	}

	query := `
		SELECT id, business_id, email
		FROM products
		WHERE id = ANY($1)
		ORDER BY array_position($1::bigint[], id)
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query vendor contacts")
		return nil, fmt.Errorf("failed to query vendor contacts: %w", err)
	}
	defer rows.Close()

	var contacts []model.VendorContact
	for rows.Next() {
		var c model.VendorContact
		if err := rows.Scan(&c.ProductID, &c.BusinessID, &c.Email); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan vendor contact row")
			return nil, fmt.Errorf("failed to scan vendor contact: %w", err)
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating vendor contact rows")
		return nil, fmt.Errorf("error iterating vendor contacts: %w", err)
	}

	return contacts, nil
}
