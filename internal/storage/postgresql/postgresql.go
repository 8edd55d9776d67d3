package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Storage struct {
	DB *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Storage, error) {
	const op = "storage.postgresql.New"

	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Stop() {
	s.DB.Close()
}

// EnsureSchema creates the shop tables when they do not exist yet. Products
// are written only by the seed tool but the table still has to exist for
// the catalog read path.
func (s *Storage) EnsureSchema(ctx context.Context) error {
	const op = "storage.postgresql.EnsureSchema"

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password BYTEA NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			profile_pic TEXT NOT NULL DEFAULT '',
			wallet DOUBLE PRECISION NOT NULL DEFAULT 0.0
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			category TEXT NOT NULL,
			image TEXT NOT NULL,
			link TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			customer_name TEXT NOT NULL,
			customer_address TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			total DOUBLE PRECISION NOT NULL,
			payment_method TEXT NOT NULL,
			delivery_date TEXT NOT NULL
		)`,
		// line is JSON, not JSONB: jsonb normalizes key order and order
		// lines must read back exactly as they were placed
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id BIGINT NOT NULL REFERENCES orders(id),
			position INT NOT NULL,
			line JSON NOT NULL,
			PRIMARY KEY (order_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS wishlist (
			id BIGSERIAL PRIMARY KEY,
			product_id BIGINT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			category TEXT NOT NULL,
			image TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.DB.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
