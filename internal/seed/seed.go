package seed

import (
	"context"
	"fmt"

	"github.com/mhdasif123/SipandSnack/internal/clock"
	"github.com/mhdasif123/SipandSnack/internal/domain"
	"github.com/mhdasif123/SipandSnack/internal/storage/memory"
)

// Demo loads the sample roster, both catalogs, and a few historical orders
// so a fresh instance has something to show.
func Demo(ctx context.Context, store *memory.Store, clk clock.Clock) error {
	employees := []domain.Employee{
		{ID: "1", Name: "Anjali Sharma"},
		{ID: "2", Name: "Rohan Gupta"},
		{ID: "3", Name: "Priya Singh"},
		{ID: "4", Name: "Vikram Mehta"},
		{ID: "5", Name: "Sunita Rao"},
	}
	for _, e := range employees {
		if err := store.CreateEmployee(ctx, e); err != nil {
			return fmt.Errorf("seed employee %s: %w", e.Name, err)
		}
	}

	items := []domain.Item{
		{ID: "t1", Catalog: domain.CatalogTea, Name: "Masala Chai", Price: 15},
		{ID: "t2", Catalog: domain.CatalogTea, Name: "Green Tea", Price: 10},
		{ID: "t3", Catalog: domain.CatalogTea, Name: "Ginger Tea", Price: 12},
		{ID: "t4", Catalog: domain.CatalogTea, Name: "Lemon Tea", Price: 12},
		{ID: "t5", Catalog: domain.CatalogTea, Name: "Black Coffee", Price: 20},
		{ID: "s1", Catalog: domain.CatalogSnack, Name: "Samosa", Price: 15},
		{ID: "s2", Catalog: domain.CatalogSnack, Name: "Biscuits", Price: 5},
		{ID: "s3", Catalog: domain.CatalogSnack, Name: "Veg Puff", Price: 20},
		{ID: "s4", Catalog: domain.CatalogSnack, Name: "Fruit Salad", Price: 25},
	}
	for _, it := range items {
		if err := store.CreateItem(ctx, it); err != nil {
			return fmt.Errorf("seed item %s: %w", it.Name, err)
		}
	}

	now := clk.Now()
	// Oldest first, so the prepend-only order log ends up newest-first.
	orders := []domain.Order{
		{ID: "o3", EmployeeName: "Priya Singh", Tea: "Ginger Tea", Snack: "Veg Puff", Amount: 22, OrderDate: now.AddDate(0, 0, -7)},
		{ID: "o2", EmployeeName: "Rohan Gupta", Tea: "Green Tea", Snack: "Biscuits", Amount: 15, OrderDate: now.AddDate(0, 0, -2)},
		{ID: "o1", EmployeeName: "Anjali Sharma", Tea: "Masala Chai", Snack: "Samosa", Amount: 25, OrderDate: now.AddDate(0, 0, -1)},
	}
	for _, o := range orders {
		if err := store.CreateOrder(ctx, o); err != nil {
			return fmt.Errorf("seed order %s: %w", o.ID, err)
		}
	}
	return nil
}
