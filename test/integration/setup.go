package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, a connection pool and the
// storefront schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing: the catalogue
// (new_products), the vendor contact directory (products) and the order
// archive (order_rec) with its unique order id.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS new_products (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category VARCHAR(100) NOT NULL DEFAULT '',
			price VARCHAR(50),
			price_inr VARCHAR(50) NOT NULL DEFAULT '',
			discounted_price VARCHAR(50),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS products (
			id BIGINT PRIMARY KEY,
			business_id VARCHAR(100) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS order_rec (
			id BIGSERIAL PRIMARY KEY,
			order_id VARCHAR(20) NOT NULL UNIQUE,
			buyer_name VARCHAR(255) NOT NULL,
			buyer_address TEXT NOT NULL,
			buyer_phone VARCHAR(50) NOT NULL,
			business_id VARCHAR(100) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL DEFAULT '',
			total_calculated_price VARCHAR(50) NOT NULL,
			item_list JSONB NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_new_products_category ON new_products(category);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// seedCatalog inserts a small fixed catalogue with matching vendor contacts.
func seedCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	seed := `
		INSERT INTO new_products (id, name, description, category, price, price_inr)
		VALUES
			(1, 'Turmeric Powder', 'Stone-ground turmeric', 'Spices', '85', '85'),
			(2, 'Cardamom', 'Green cardamom pods', 'Spices', '320', '320'),
			(3, 'Handwoven Basket', 'Palm leaf basket', 'Handicrafts', NULL, '450')
		ON CONFLICT (id) DO NOTHING;

		SELECT setval(pg_get_serial_sequence('new_products', 'id'), 100);

		INSERT INTO products (id, business_id, email)
		VALUES
			(1, 'biz-spice-house', 'orders@spicehouse.example.com'),
			(2, 'biz-spice-house', 'orders@spicehouse.example.com'),
			(3, 'biz-weavers', 'hello@weavers.example.com')
		ON CONFLICT (id) DO NOTHING;
	`

	_, err := pool.Exec(ctx, seed)
	if err != nil {
		t.Fatalf("failed to seed catalogue: %v", err)
	}
}
