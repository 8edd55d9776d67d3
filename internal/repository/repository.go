package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db       *pgxpool.Pool
	User     UserRepository
	Product  ProductRepository
	Order    OrderRepository
	Wishlist WishlistRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewRepositoryWithPool(db), nil
}

func NewRepositoryWithPool(db *pgxpool.Pool) *Repository {
	return &Repository{
		db:       db,
		User:     NewUserRepository(db),
		Product:  NewProductRepository(db),
		Order:    NewOrderRepository(db),
		Wishlist: NewWishlistRepository(db),
	}
}

func (r *Repository) Close() {
	r.db.Close()
}
