package order

import (
	"context"

	"apparel-storefront/internal/domain"
)

type Repository interface {
	// Create inserts the order and its items in one transaction and returns
	// the stored order with generated IDs and timestamps filled in.
	Create(ctx context.Context, in domain.Order, items []domain.OrderItem) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
