package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mhdasif123/SipandSnack/internal/domain"
)

// Store keeps the roster, both catalogs, and the order log in process
// memory. Nothing survives a restart; that is the deployment model, not an
// accident. One mutex serializes every access, and CreateOrder's duplicate
// check runs in the same critical section as its append, so two concurrent
// submissions for one employee cannot both land on the same day.
type Store struct {
	mu        sync.Mutex
	employees []domain.Employee
	items     []domain.Item
	orders    []domain.Order // newest first
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) ListOrders(_ context.Context) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *Store) FindOrderByEmployeeAndDay(_ context.Context, employeeName string, at time.Time) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o := s.findSameDay(employeeName, at); o != nil {
		found := *o
		return &found, nil
	}
	return nil, nil
}

// CreateOrder prepends the order, keeping the collection newest-first. A
// same-day order for the same employee makes it fail with
// domain.ErrDuplicateOrder instead of appending.
func (s *Store) CreateOrder(_ context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findSameDay(order.EmployeeName, order.OrderDate) != nil {
		return domain.ErrDuplicateOrder
	}
	s.orders = append([]domain.Order{order}, s.orders...)
	return nil
}

// findSameDay must be called with the mutex held.
func (s *Store) findSameDay(employeeName string, at time.Time) *domain.Order {
	for i := range s.orders {
		if s.orders[i].EmployeeName == employeeName && sameDay(s.orders[i].OrderDate, at) {
			return &s.orders[i]
		}
	}
	return nil
}

func (s *Store) ListEmployees(_ context.Context) ([]domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

func (s *Store) CreateEmployee(_ context.Context, employee domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = append(s.employees, employee)
	return nil
}

// UpdateEmployee renames the matching entry. An unknown id is a silent
// no-op; admin screens treat repeated edits as idempotent.
func (s *Store) UpdateEmployee(_ context.Context, id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees[i].Name = name
			break
		}
	}
	return nil
}

// DeleteEmployee removes the matching entry, or does nothing.
func (s *Store) DeleteEmployee(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.employees[:0]
	for _, e := range s.employees {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.employees = kept
	return nil
}

func (s *Store) ListItems(_ context.Context, catalog domain.Catalog) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Item, 0, len(s.items))
	for _, it := range s.items {
		if it.Catalog == catalog {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *Store) CreateItem(_ context.Context, item domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return nil
}

// UpdateItem rewrites name and price of the matching entry. Unknown ids are
// silent no-ops, same as the roster.
func (s *Store) UpdateItem(_ context.Context, catalog domain.Catalog, id, name string, price float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Catalog == catalog && s.items[i].ID == id {
			s.items[i].Name = name
			s.items[i].Price = price
			break
		}
	}
	return nil
}

// DeleteItem removes the matching entry, or does nothing.
func (s *Store) DeleteItem(_ context.Context, catalog domain.Catalog, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.Catalog != catalog || it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
