package app

import (
	"context"
	"errors"
	"testing"

	"github.com/mhdasif123/SipandSnack/internal/domain"
)

func TestCatalogService(t *testing.T) {
	t.Parallel()

	t.Run("add validates catalog, name, and price", func(t *testing.T) {
		svc := NewCatalogService(&fakeCatalogRepo{})

		tests := []struct {
			name string
			in   AddItemInput
			want error
		}{
			{"unknown catalog", AddItemInput{Catalog: "coffee", Name: "Latte", Price: 20}, domain.ErrInvalidCatalog},
			{"short name", AddItemInput{Catalog: domain.CatalogTea, Name: "X", Price: 10}, domain.ErrNameRequired},
			{"negative price", AddItemInput{Catalog: domain.CatalogSnack, Name: "Samosa", Price: -1}, domain.ErrInvalidPrice},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := svc.Add(context.Background(), tt.in); !errors.Is(err, tt.want) {
					t.Fatalf("expected %v, got %v", tt.want, err)
				}
			})
		}
	})

	t.Run("add accepts a free item", func(t *testing.T) {
		repo := &fakeCatalogRepo{}
		svc := NewCatalogService(repo)

		item, err := svc.Add(context.Background(), AddItemInput{Catalog: domain.CatalogSnack, Name: "Water", Price: 0})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if item.ID == "" {
			t.Fatalf("expected item ID to be set")
		}
		if item.Catalog != domain.CatalogSnack {
			t.Fatalf("expected snack catalog, got %s", item.Catalog)
		}
	})

	t.Run("list rejects unknown catalog", func(t *testing.T) {
		svc := NewCatalogService(&fakeCatalogRepo{})
		if _, err := svc.List(context.Background(), "coffee"); !errors.Is(err, domain.ErrInvalidCatalog) {
			t.Fatalf("expected ErrInvalidCatalog, got %v", err)
		}
	})

	t.Run("update of unknown id succeeds silently", func(t *testing.T) {
		repo := &fakeCatalogRepo{items: []domain.Item{{ID: "t1", Catalog: domain.CatalogTea, Name: "Masala Chai", Price: 15}}}
		svc := NewCatalogService(repo)

		err := svc.Update(context.Background(), UpdateItemInput{Catalog: domain.CatalogTea, ID: "missing", Name: "Green Tea", Price: 10})
		if err != nil {
			t.Fatalf("expected silent no-op, got %v", err)
		}
		if repo.items[0].Name != "Masala Chai" {
			t.Fatalf("expected existing item untouched, got %q", repo.items[0].Name)
		}
	})

	t.Run("remove of unknown id succeeds silently", func(t *testing.T) {
		repo := &fakeCatalogRepo{items: []domain.Item{{ID: "t1", Catalog: domain.CatalogTea, Name: "Masala Chai", Price: 15}}}
		svc := NewCatalogService(repo)

		if err := svc.Remove(context.Background(), domain.CatalogTea, "missing"); err != nil {
			t.Fatalf("expected silent no-op, got %v", err)
		}
		if len(repo.items) != 1 {
			t.Fatalf("expected catalog unchanged, got %d items", len(repo.items))
		}
	})
}

type fakeCatalogRepo struct {
	items []domain.Item
}

func (f *fakeCatalogRepo) ListItems(_ context.Context, catalog domain.Catalog) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(f.items))
	for _, it := range f.items {
		if it.Catalog == catalog {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) CreateItem(_ context.Context, item domain.Item) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeCatalogRepo) UpdateItem(_ context.Context, catalog domain.Catalog, id, name string, price float64) error {
	for i := range f.items {
		if f.items[i].Catalog == catalog && f.items[i].ID == id {
			f.items[i].Name = name
			f.items[i].Price = price
			break
		}
	}
	return nil
}

func (f *fakeCatalogRepo) DeleteItem(_ context.Context, catalog domain.Catalog, id string) error {
	kept := f.items[:0]
	for _, it := range f.items {
		if it.Catalog != catalog || it.ID != id {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}
