package product

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

func (r *postgresRepo) List(ctx context.Context, collection string) ([]domain.Product, error) {
	const q = `
SELECT id::text, collection, name, COALESCE(description, ''), price_cents, currency, sizes, COALESCE(image_url, ''), created_at
FROM products
WHERE $1 = '' OR collection = $1
ORDER BY created_at ASC, name ASC
`
	rows, err := r.pool.Query(ctx, q, collection)
	if err != nil {
		r.logger.Printf("product repo: list collection=%s error=%v", collection, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Collection, &p.Name, &p.Description, &p.PriceCents, &p.Currency, &p.Sizes, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows collection=%s error=%v", collection, err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id::text, collection, name, COALESCE(description, ''), price_cents, currency, sizes, COALESCE(image_url, ''), created_at
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Collection, &p.Name, &p.Description, &p.PriceCents, &p.Currency, &p.Sizes, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, collection, name, description, price_cents, currency, sizes, image_url)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''))
ON CONFLICT (collection, name) DO UPDATE
SET description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    currency = EXCLUDED.currency,
    sizes = EXCLUDED.sizes,
    image_url = EXCLUDED.image_url
RETURNING id::text, collection, name, COALESCE(description, ''), price_cents, currency, sizes, COALESCE(image_url, ''), created_at
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q,
		product.ID,
		product.Collection,
		product.Name,
		product.Description,
		product.PriceCents,
		product.Currency,
		product.Sizes,
		product.ImageURL,
	).Scan(&p.ID, &p.Collection, &p.Name, &p.Description, &p.PriceCents, &p.Currency, &p.Sizes, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: upsert collection=%s name=%s error=%v", product.Collection, product.Name, err)
		return nil, err
	}
	return &p, nil
}
