package repository

import (
	"context"
	"fmt"

	"solemate/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ProductRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ProductRepo) SaveProduct(ctx context.Context, product models.Product) (int64, error) {
	const op = "repository.product_repository.SaveProduct"

	query, args, err := r.sb.Insert("products").
		Columns("name", "price", "category", "image", "link").
		Values(product.Name, product.Price, product.Category, product.Image, product.Link).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *ProductRepo) Products(ctx context.Context) ([]models.Product, error) {
	const op = "repository.product_repository.Products"

	query, args, err := r.sb.Select("id", "name", "price", "category", "image", "link").
		From("products").
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

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Image, &p.Link); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return products, nil
}

// DeleteAllProducts clears the catalog before a reseed. Only the seed tool
// calls it; the serving API treats products as read-only.
func (r *ProductRepo) DeleteAllProducts(ctx context.Context) error {
	const op = "repository.product_repository.DeleteAllProducts"

	query, args, err := r.sb.Delete("products").ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
