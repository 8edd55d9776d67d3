package repository

import (
	"context"
	"fmt"

	"solemate/internal/domain/models"
	"solemate/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

type WishlistRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewWishlistRepository(db *pgxpool.Pool) *WishlistRepo {
	return &WishlistRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// AddItem inserts the item unless its product_id is already present. The
// unique index plus ON CONFLICT makes the duplicate check atomic, so two
// concurrent adds of the same product cannot both succeed.
func (r *WishlistRepo) AddItem(ctx context.Context, item models.WishlistItem) (int64, error) {
	const op = "repository.wishlist_repository.AddItem"

	query, args, err := r.sb.Insert("wishlist").
		Columns("product_id", "name", "price", "category", "image").
		Values(item.ProductID, item.Name, item.Price, item.Category, item.Image).
		Suffix("ON CONFLICT (product_id) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		// conflict: no row was inserted
		return 0, fmt.Errorf("%s: %w", op, storage.ErrWishlistDuplicate)
	}

	var id int64
	if err := rows.Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *WishlistRepo) Items(ctx context.Context) ([]models.WishlistItem, error) {
	const op = "repository.wishlist_repository.Items"

	query, args, err := r.sb.Select("id", "product_id", "name", "price", "category", "image").
		From("wishlist").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.WishlistItem, 0)
	for rows.Next() {
		var it models.WishlistItem
		if err := rows.Scan(&it.ID, &it.ProductID, &it.Name, &it.Price, &it.Category, &it.Image); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// RemoveItem is idempotent: deleting an absent product_id is not an error.
func (r *WishlistRepo) RemoveItem(ctx context.Context, productID int64) error {
	const op = "repository.wishlist_repository.RemoveItem"

	query, args, err := r.sb.Delete("wishlist").
		Where(sq.Eq{"product_id": productID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
