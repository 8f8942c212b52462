package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mhdasif123/SipandSnack/internal/clock"
	"github.com/mhdasif123/SipandSnack/internal/domain"
	"github.com/mhdasif123/SipandSnack/internal/window"
)

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	// FindOrderByEmployeeAndDay returns nil when the employee has no order on
	// the calendar day containing at.
	FindOrderByEmployeeAndDay(ctx context.Context, employeeName string, at time.Time) (*domain.Order, error)
	// CreateOrder prepends the order so the collection stays newest-first. It
	// returns domain.ErrDuplicateOrder when the employee already has an order
	// on the same calendar day, checked atomically with the append.
	CreateOrder(ctx context.Context, order domain.Order) error
}

// Notifier is the fire-and-forget side channel poked after a successful
// submission. Its outcome never affects the admission result.
type Notifier interface {
	OrderPlaced(order domain.Order)
}

// OrderService admits candidate orders against the window policy, the
// one-per-day rule, and the amount cap.
type OrderService struct {
	repo      OrderRepository
	clock     clock.Clock
	policy    window.Policy
	notifier  Notifier
	logger    *zap.Logger
	amountCap float64
}

const defaultAmountCap = 25

func NewOrderService(repo OrderRepository, clk clock.Clock, policy window.Policy, notifier Notifier, logger *zap.Logger, opts ...OrderServiceOption) *OrderService {
	svc := &OrderService{
		repo:      repo,
		clock:     clk,
		policy:    policy,
		notifier:  notifier,
		logger:    logger,
		amountCap: defaultAmountCap,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type OrderServiceOption func(*OrderService)

// WithAmountCap overrides the default per-order amount cap.
func WithAmountCap(cap float64) OrderServiceOption {
	return func(s *OrderService) {
		if cap > 0 {
			s.amountCap = cap
		}
	}
}

type SubmitOrderInput struct {
	EmployeeName string
	Tea          string
	Snack        string
	Amount       float64
}

// Submit validates and admits a candidate order. Checks run in a fixed
// order and short-circuit on the first failure; exactly one append happens
// on success and none on failure.
func (s *OrderService) Submit(ctx context.Context, in SubmitOrderInput) (domain.Order, error) {
	if in.EmployeeName == "" {
		return domain.Order{}, domain.ErrEmployeeRequired
	}
	if in.Tea == "" {
		return domain.Order{}, domain.ErrTeaRequired
	}
	if in.Snack == "" {
		return domain.Order{}, domain.ErrSnackRequired
	}
	if in.Amount <= 0 || in.Amount > s.amountCap {
		return domain.Order{}, domain.ErrInvalidAmount
	}

	now := s.clock.Now()
	if st := s.policy.Evaluate(now); !st.Open {
		return domain.Order{}, domain.WindowClosedError{Message: st.Message}
	}

	existing, err := s.repo.FindOrderByEmployeeAndDay(ctx, in.EmployeeName, now)
	if err != nil {
		return domain.Order{}, err
	}
	if existing != nil {
		return domain.Order{}, domain.ErrDuplicateOrder
	}

	order := domain.Order{
		ID:           uuid.NewString(),
		EmployeeName: in.EmployeeName,
		Tea:          in.Tea,
		Snack:        in.Snack,
		Amount:       in.Amount,
		OrderDate:    now,
	}

	// The pre-check above gives the friendly rejection; the store re-checks
	// under its own lock so two concurrent submissions cannot both land.
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return domain.Order{}, err
	}

	s.logger.Info("order admitted",
		zap.String("order_id", order.ID),
		zap.String("employee", order.EmployeeName),
		zap.Float64("amount", order.Amount),
	)
	if s.notifier != nil {
		s.notifier.OrderPlaced(order)
	}
	return order, nil
}

// ListOrders returns every submitted order, newest first.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}
