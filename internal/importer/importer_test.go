package importer

import (
	"context"
	"strings"
	"testing"

	"apparel-storefront/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `id,collection,name,description,price_cents,currency,sizes,image_url
5a4b3d2c-1e0f-4a9b-8c7d-6e5f4a3b2c1d,aware,AWARE Hoodie White,Comfort and purpose,160000,PHP,S;M;L;XL;XXL,https://example.com/hoodie.jpg
,wwp,WWP Shirt White,Everyday tee,70000,,S;M;L,`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}
	if len(repo.items) != 2 {
		t.Fatalf("expected 2 products saved, got %d", len(repo.items))
	}

	first := repo.items[0]
	if first.ID != "5a4b3d2c-1e0f-4a9b-8c7d-6e5f4a3b2c1d" || first.Collection != "aware" || first.PriceCents != 160000 {
		t.Fatalf("unexpected product data: %+v", first)
	}
	if len(first.Sizes) != 5 || first.Sizes[0] != "S" || first.Sizes[4] != "XXL" {
		t.Fatalf("unexpected sizes: %+v", first.Sizes)
	}

	second := repo.items[1]
	if second.ID != "" || second.Currency != "PHP" {
		t.Fatalf("expected generated id and default currency, got %+v", second)
	}
	if len(second.Sizes) != 3 {
		t.Fatalf("unexpected sizes: %+v", second.Sizes)
	}
}

func TestCSVImporter_InvalidRows(t *testing.T) {
	cases := []struct {
		name string
		csv  string
	}{
		{"missing name", "id,collection,name,price_cents\n,aware,,70000"},
		{"bad price", "id,collection,name,price_cents\n,aware,Shirt,free"},
		{"bad id", "id,collection,name,price_cents\nnot-a-uuid,aware,Shirt,70000"},
	}
	for _, tc := range cases {
		imp := NewCSVImporter(strings.NewReader(tc.csv), &stubProductRepo{})
		if _, err := imp.Run(context.Background()); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestCSVImporter_SkipsBlankRows(t *testing.T) {
	csvData := "id,collection,name,price_cents\n,,,\n,aware,Shirt,70000"
	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 1 || len(repo.items) != 1 {
		t.Fatalf("expected 1 product, got count=%d saved=%d", count, len(repo.items))
	}
}
