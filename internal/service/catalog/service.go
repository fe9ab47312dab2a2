package catalog

import (
	"context"

	"apparel-storefront/internal/domain"
	productrepo "apparel-storefront/internal/repository/product"
)

// Service exposes the read side of the product catalog: the two apparel
// collections and individual product lookups.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, collection string) ([]domain.Product, error) {
	return s.repo.List(ctx, collection)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
