package service

import (
	"context"

	"bazaar-kart/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for product discovery.
type ProductService interface {
	// GetAll retrieves catalogue products with pagination and optional
	// category and name-search filters.
	GetAll(ctx context.Context, limit, offset int, category, search string) ([]model.Product, error)

	// GetByID retrieves a single catalogue product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Categories retrieves the distinct catalogue categories.
	Categories(ctx context.Context) ([]string, error)
}

// CheckoutService turns a session cart and buyer details into a persisted
// order record.
type CheckoutService interface {
	// Checkout snapshots the cart into an immutable order record, persists it
	// and returns the generated order id. On failure the cart is untouched.
	Checkout(ctx context.Context, cartID uuid.UUID, buyer model.BuyerDetails) (string, error)
}

// OrderService defines read access to persisted orders.
type OrderService interface {
	// GetByOrderID retrieves an order record by its human-readable id.
	GetByOrderID(ctx context.Context, orderID string) (*model.OrderRecord, error)
}
