package seed

import (
	"context"
	"fmt"

	"apparel-storefront/internal/domain"
	productrepo "apparel-storefront/internal/repository/product"
)

var sizes = []string{"S", "M", "L", "XL", "XXL"}

// Apply inserts the two apparel collections. It is idempotent via the
// repository's upsert; the AWARE IDs are the catalog IDs the storefront has
// always shipped with, so existing carts keep resolving.
func Apply(ctx context.Context, repo productrepo.Repository) error {
	products := []domain.Product{
		{
			ID:          "5a4b3d2c-1e0f-4a9b-8c7d-6e5f4a3b2c1d",
			Collection:  "aware",
			Name:        "AWARE Hoodie White",
			Description: "The AWARE Hoodie combines comfort and purpose, with a minimalist heart and \"Be Aware\" print.",
			PriceCents:  160000,
		},
		{
			ID:          "9b8c7d6e-5f4a-4d3c-2b1a-0f9e8d7c6b5a",
			Collection:  "aware",
			Name:        "AWARE Shirt White",
			Description: "A relaxed fit with a vibrant back design promoting compassion and equality.",
			PriceCents:  70000,
		},
		{
			ID:          "e1f2d3c4-b5a6-4789-9012-34567890abcd",
			Collection:  "aware",
			Name:        "AWARE Sweater White",
			Description: "Bold back print reading \"Love is the Vaccine Against the Stigma\".",
			PriceCents:  140000,
		},
		{
			ID:          "0f1e2d3c-4b5a-4697-8877-665544332211",
			Collection:  "wwp",
			Name:        "WWP Hoodie White",
			Description: "The WWP Hoodie celebrates unity from the World Without Prejudice collection.",
			PriceCents:  160000,
		},
		{
			ID:          "1a2b3c4d-5e6f-4708-9192-a3b4c5d6e7f8",
			Collection:  "wwp",
			Name:        "WWP Shirt White",
			Description: "Everyday tee from the World Without Prejudice collection.",
			PriceCents:  70000,
		},
		{
			ID:          "2b3c4d5e-6f70-4819-a2b3-c4d5e6f70818",
			Collection:  "wwp",
			Name:        "WWP Sweater White",
			Description: "Statement sweater from the World Without Prejudice collection.",
			PriceCents:  140000,
		},
	}

	for _, p := range products {
		p.Currency = "PHP"
		p.Sizes = sizes
		if _, err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s/%s: %w", p.Collection, p.Name, err)
		}
	}

	return nil
}
