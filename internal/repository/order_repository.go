package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"solemate/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

type OrderRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveOrder writes the order header and its lines in one transaction. Lines
// keep their position so a later read returns them in placement order.
func (r *OrderRepo) SaveOrder(ctx context.Context, order models.Order) (int64, error) {
	const op = "repository.order_repository.SaveOrder"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Insert("orders").
		Columns("customer_name", "customer_address", "customer_phone", "total", "payment_method", "delivery_date").
		Values(order.CustomerName, order.CustomerAddress, order.CustomerPhone, order.Total, order.PaymentMethod, order.DeliveryDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var orderID int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&orderID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for i, line := range order.Items {
		itemQuery, itemArgs, err := r.sb.Insert("order_items").
			Columns("order_id", "position", "line").
			Values(orderID, i, string(line)).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("%s: can't build sql: %w", op, err)
		}

		if _, err := tx.Exec(ctx, itemQuery, itemArgs...); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return orderID, nil
}

func (r *OrderRepo) Orders(ctx context.Context) ([]models.Order, error) {
	const op = "repository.order_repository.Orders"

	query, args, err := r.sb.Select("id", "customer_name", "customer_address", "customer_phone", "total", "payment_method", "delivery_date").
		From("orders").
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

	orders := make([]models.Order, 0)
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.CustomerAddress, &o.CustomerPhone, &o.Total, &o.PaymentMethod, &o.DeliveryDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range orders {
		items, err := r.orderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *OrderRepo) orderItems(ctx context.Context, orderID int64) ([]json.RawMessage, error) {
	const op = "repository.order_repository.orderItems"

	query, args, err := r.sb.Select("line").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]json.RawMessage, 0)
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, json.RawMessage(line))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}
