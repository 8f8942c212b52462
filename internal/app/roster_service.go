package app

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mhdasif123/SipandSnack/internal/domain"
)

type RosterRepository interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	CreateEmployee(ctx context.Context, employee domain.Employee) error
	// UpdateEmployee and DeleteEmployee are silent no-ops for unknown ids.
	UpdateEmployee(ctx context.Context, id, name string) error
	DeleteEmployee(ctx context.Context, id string) error
}

// RosterService manages the employee list shown on the order form.
type RosterService struct {
	repo RosterRepository
}

func NewRosterService(repo RosterRepository) *RosterService {
	return &RosterService{repo: repo}
}

func (s *RosterService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.ListEmployees(ctx)
}

func (s *RosterService) Add(ctx context.Context, name string) (domain.Employee, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return domain.Employee{}, domain.ErrNameRequired
	}

	employee := domain.Employee{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := s.repo.CreateEmployee(ctx, employee); err != nil {
		return domain.Employee{}, err
	}
	return employee, nil
}

func (s *RosterService) Rename(ctx context.Context, id, name string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return domain.ErrNameRequired
	}
	return s.repo.UpdateEmployee(ctx, id, name)
}

func (s *RosterService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteEmployee(ctx, id)
}
