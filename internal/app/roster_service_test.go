package app

import (
	"context"
	"errors"
	"testing"

	"github.com/mhdasif123/SipandSnack/internal/domain"
)

func TestRosterService(t *testing.T) {
	t.Parallel()

	t.Run("add generates id and trims name", func(t *testing.T) {
		repo := &fakeRosterRepo{}
		svc := NewRosterService(repo)

		employee, err := svc.Add(context.Background(), "  Anjali Sharma  ")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if employee.ID == "" {
			t.Fatalf("expected employee ID to be set")
		}
		if employee.Name != "Anjali Sharma" {
			t.Fatalf("expected trimmed name, got %q", employee.Name)
		}
		if len(repo.employees) != 1 {
			t.Fatalf("expected 1 employee, got %d", len(repo.employees))
		}
	})

	t.Run("add rejects short names", func(t *testing.T) {
		svc := NewRosterService(&fakeRosterRepo{})

		for _, name := range []string{"", " ", "A", " A "} {
			if _, err := svc.Add(context.Background(), name); !errors.Is(err, domain.ErrNameRequired) {
				t.Fatalf("name %q: expected ErrNameRequired, got %v", name, err)
			}
		}
	})

	t.Run("rename validates id and name", func(t *testing.T) {
		svc := NewRosterService(&fakeRosterRepo{})

		if err := svc.Rename(context.Background(), "", "Valid Name"); !errors.Is(err, domain.ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
		if err := svc.Rename(context.Background(), "e1", "x"); !errors.Is(err, domain.ErrNameRequired) {
			t.Fatalf("expected ErrNameRequired, got %v", err)
		}
	})

	t.Run("rename of unknown id succeeds silently", func(t *testing.T) {
		repo := &fakeRosterRepo{}
		svc := NewRosterService(repo)

		if err := svc.Rename(context.Background(), "missing", "New Name"); err != nil {
			t.Fatalf("expected silent no-op, got %v", err)
		}
	})

	t.Run("remove of unknown id succeeds silently", func(t *testing.T) {
		repo := &fakeRosterRepo{employees: []domain.Employee{{ID: "e1", Name: "Anjali Sharma"}}}
		svc := NewRosterService(repo)

		if err := svc.Remove(context.Background(), "missing"); err != nil {
			t.Fatalf("expected silent no-op, got %v", err)
		}
		if len(repo.employees) != 1 {
			t.Fatalf("expected roster unchanged, got %d", len(repo.employees))
		}
	})
}

type fakeRosterRepo struct {
	employees []domain.Employee
}

func (f *fakeRosterRepo) ListEmployees(context.Context) ([]domain.Employee, error) {
	out := make([]domain.Employee, len(f.employees))
	copy(out, f.employees)
	return out, nil
}

func (f *fakeRosterRepo) CreateEmployee(_ context.Context, employee domain.Employee) error {
	f.employees = append(f.employees, employee)
	return nil
}

func (f *fakeRosterRepo) UpdateEmployee(_ context.Context, id, name string) error {
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees[i].Name = name
			break
		}
	}
	return nil
}

func (f *fakeRosterRepo) DeleteEmployee(_ context.Context, id string) error {
	kept := f.employees[:0]
	for _, e := range f.employees {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	f.employees = kept
	return nil
}
