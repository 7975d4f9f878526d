package order

import (
	"context"

	"carameche/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{
		pool:   pool,
		logger: logger.With().Str("component", "order_repo").Logger(),
	}
}

// Create writes the order header and every line item in one transaction, so
// a failed item write never leaves a header without items.
func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const headerQ = `
INSERT INTO orders (customer_name, total_cents, total_items, status)
VALUES ($1, $2, $3, 'pending')
RETURNING id::text, customer_name, total_cents, total_items, status, created_at
`
	var o domain.Order
	if err := tx.QueryRow(ctx, headerQ, in.CustomerName, in.TotalCents, in.TotalItems).Scan(
		&o.ID,
		&o.CustomerName,
		&o.TotalCents,
		&o.TotalItems,
		&o.Status,
		&o.CreatedAt,
	); err != nil {
		r.logger.Error().Err(err).Str("customer", in.CustomerName).Msg("insert order header failed")
		return nil, err
	}

	const itemQ = `
INSERT INTO order_items (order_id, card_id, card_name, card_number, card_series, card_image, unit_price_cents, quantity, reverse)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	for _, item := range in.Items {
		if _, err := tx.Exec(ctx, itemQ,
			o.ID,
			item.CardID,
			item.CardName,
			item.CardNumber,
			item.CardSeries,
			item.CardImage,
			item.UnitPriceCents,
			item.Quantity,
			item.Reverse,
		); err != nil {
			r.logger.Error().Err(err).Str("order_id", o.ID).Str("card_id", item.CardID).Msg("insert order item failed")
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	o.Items = in.Items
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
	}
	r.logger.Info().Str("order_id", o.ID).Int("items", len(o.Items)).Msg("order created")
	return &o, nil
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerName string) ([]domain.Order, error) {
	const q = `
SELECT id::text, customer_name, total_cents, total_items, status, created_at
FROM orders
WHERE customer_name = $1
ORDER BY created_at DESC
`
	return r.list(ctx, q, customerName)
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id::text, customer_name, total_cents, total_items, status, created_at
FROM orders
ORDER BY created_at DESC
`
	return r.list(ctx, q)
}

func (r *postgresRepo) SetStatus(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id).Str("status", status).Msg("set status failed")
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Info().Str("order_id", id).Str("status", status).Msg("order status updated")
	return nil
}

func (r *postgresRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.TotalCents, &o.TotalItems, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *postgresRepo) listItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const q = `
SELECT id::text, order_id::text, card_id, card_name, card_number, card_series, card_image, unit_price_cents, quantity, reverse
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.CardID,
			&item.CardName,
			&item.CardNumber,
			&item.CardSeries,
			&item.CardImage,
			&item.UnitPriceCents,
			&item.Quantity,
			&item.Reverse,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
