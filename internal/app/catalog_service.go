package app

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mhdasif123/SipandSnack/internal/domain"
)

type CatalogRepository interface {
	ListItems(ctx context.Context, catalog domain.Catalog) ([]domain.Item, error)
	CreateItem(ctx context.Context, item domain.Item) error
	// UpdateItem and DeleteItem are silent no-ops for unknown ids.
	UpdateItem(ctx context.Context, catalog domain.Catalog, id, name string, price float64) error
	DeleteItem(ctx context.Context, catalog domain.Catalog, id string) error
}

// CatalogService manages the tea and snack item lists.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) List(ctx context.Context, catalog domain.Catalog) ([]domain.Item, error) {
	if !catalog.Valid() {
		return nil, domain.ErrInvalidCatalog
	}
	return s.repo.ListItems(ctx, catalog)
}

type AddItemInput struct {
	Catalog domain.Catalog
	Name    string
	Price   float64
}

func (s *CatalogService) Add(ctx context.Context, in AddItemInput) (domain.Item, error) {
	if !in.Catalog.Valid() {
		return domain.Item{}, domain.ErrInvalidCatalog
	}
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 {
		return domain.Item{}, domain.ErrNameRequired
	}
	if in.Price < 0 {
		return domain.Item{}, domain.ErrInvalidPrice
	}

	item := domain.Item{
		ID:      uuid.NewString(),
		Catalog: in.Catalog,
		Name:    name,
		Price:   in.Price,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

type UpdateItemInput struct {
	Catalog domain.Catalog
	ID      string
	Name    string
	Price   float64
}

func (s *CatalogService) Update(ctx context.Context, in UpdateItemInput) error {
	if !in.Catalog.Valid() {
		return domain.ErrInvalidCatalog
	}
	if in.ID == "" {
		return domain.ErrInvalidID
	}
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 {
		return domain.ErrNameRequired
	}
	if in.Price < 0 {
		return domain.ErrInvalidPrice
	}
	return s.repo.UpdateItem(ctx, in.Catalog, in.ID, name, in.Price)
}

func (s *CatalogService) Remove(ctx context.Context, catalog domain.Catalog, id string) error {
	if !catalog.Valid() {
		return domain.ErrInvalidCatalog
	}
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteItem(ctx, catalog, id)
}
