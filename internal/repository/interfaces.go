package repository

import (
	"context"
	"time"

	"solemate/internal/domain/models"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (int64, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, userID int64) (models.User, error)
}

type ProductRepository interface {
	SaveProduct(ctx context.Context, product models.Product) (int64, error)
	Products(ctx context.Context) ([]models.Product, error)
	DeleteAllProducts(ctx context.Context) error
}

type OrderRepository interface {
	SaveOrder(ctx context.Context, order models.Order) (int64, error)
	Orders(ctx context.Context) ([]models.Order, error)
}

type WishlistRepository interface {
	AddItem(ctx context.Context, item models.WishlistItem) (int64, error)
	Items(ctx context.Context) ([]models.WishlistItem, error)
	RemoveItem(ctx context.Context, productID int64) error
}

type SessionRepository interface {
	SaveSession(ctx context.Context, sessionID string, userID int64, ttl time.Duration) error
	UserID(ctx context.Context, sessionID string) (int64, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
