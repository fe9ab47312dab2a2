package cart

import (
	"context"

	"apparel-storefront/internal/domain"
)

// Storage persists a single guest's full line list under one well-known key.
// Save overwrites the previous value wholesale; there is no incremental
// patching. A cart that has never been saved loads as (nil, nil).
type Storage interface {
	Load(ctx context.Context) ([]domain.CartLine, error)
	Save(ctx context.Context, lines []domain.CartLine) error
}
