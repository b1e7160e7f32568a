package repository

import (
	"context"

	"bazaar-kart/internal/model"
)

// ProductRepository defines read access to the product catalogue (new_products)
// and the vendor contact directory (products).
type ProductRepository interface {
	// GetAll retrieves catalogue products with pagination and optional
	// category equality and name search filters. Empty filters match all.
	GetAll(ctx context.Context, limit, offset int, category, search string) ([]model.Product, error)

	// GetByID retrieves a single catalogue product by its ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Categories retrieves the distinct non-empty catalogue categories, sorted.
	Categories(ctx context.Context) ([]string, error)

	// GetVendorContacts resolves the owning business and contact email for the
	// given product ids, in the order the ids were supplied.
	GetVendorContacts(ctx context.Context, ids []int64) ([]model.VendorContact, error)
}

// OrderRepository defines persistence for immutable order records (order_rec).
type OrderRepository interface {
	// Insert persists an order record in a single statement. It returns
	// model.ErrDuplicateOrderID when the generated order id already exists.
	Insert(ctx context.Context, rec *model.OrderRecord) error

	// GetByOrderID retrieves the order record matching the human-readable
	// order id. A missing record is (nil, nil).
	GetByOrderID(ctx context.Context, orderID string) (*model.OrderRecord, error)
}
