package order

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"apparel-storefront/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in domain.Order, items []domain.OrderItem) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const orderQuery = `
INSERT INTO orders (guest_id, customer_name, customer_email, product_summary, subtotal_cents, shipping_fee_cents, total_cents, payment_status, delivery_status, shipping_address)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id::text, created_at
`
	created := in
	if err := tx.QueryRow(ctx, orderQuery,
		in.GuestID,
		in.CustomerName,
		in.CustomerEmail,
		in.ProductSummary,
		in.SubtotalCents,
		in.ShippingFeeCents,
		in.TotalCents,
		in.PaymentStatus,
		in.DeliveryStatus,
		in.ShippingAddress,
	).Scan(&created.ID, &created.CreatedAt); err != nil {
		r.logger.Printf("order repo: insert guest_id=%s error=%v", in.GuestID, err)
		return nil, err
	}

	const itemQuery = `
INSERT INTO order_items (order_id, product_id, product_name, size, quantity, price_cents)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id::text
`
	created.Items = make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		item.OrderID = created.ID
		if err := tx.QueryRow(ctx, itemQuery,
			created.ID,
			item.ProductID,
			item.ProductName,
			item.Size,
			item.Quantity,
			item.PriceCents,
		).Scan(&item.ID); err != nil {
			r.logger.Printf("order repo: insert item order_id=%s product_id=%s error=%v", created.ID, item.ProductID, err)
			return nil, err
		}
		created.Items = append(created.Items, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created order id=%s items=%d total_cents=%d", created.ID, len(created.Items), created.TotalCents)
	return &created, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const orderQuery = `
SELECT id::text, guest_id, customer_name, customer_email, product_summary, subtotal_cents, shipping_fee_cents, total_cents, payment_status, delivery_status, shipping_address, created_at
FROM orders
WHERE id = $1
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&o.ID,
		&o.GuestID,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.ProductSummary,
		&o.SubtotalCents,
		&o.ShippingFeeCents,
		&o.TotalCents,
		&o.PaymentStatus,
		&o.DeliveryStatus,
		&o.ShippingAddress,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%s error=%v", id, err)
		return nil, err
	}

	const itemsQuery = `
SELECT id::text, order_id::text, product_id::text, product_name, size, quantity, price_cents
FROM order_items
WHERE order_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Size, &item.Quantity, &item.PriceCents); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &o, nil
}
