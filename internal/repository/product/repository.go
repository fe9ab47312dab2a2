package product

import (
	"context"

	"apparel-storefront/internal/domain"
)

type Repository interface {
	List(ctx context.Context, collection string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}
