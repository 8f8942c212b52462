package app

import (
	"context"
	"time"

	"github.com/mhdasif123/SipandSnack/internal/clock"
	"github.com/mhdasif123/SipandSnack/internal/domain"
)

// Range names a relative reporting period resolved against the current time.
type Range string

const (
	RangeDaily   Range = "daily"
	RangeWeekly  Range = "weekly"
	RangeMonthly Range = "monthly"
	RangeAll     Range = "all"
)

// OrderLister is the read access the report projection needs.
type OrderLister interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

// ReportService projects the order log into filtered views and summary
// stats. It never mutates the store.
type ReportService struct {
	orders OrderLister
	clock  clock.Clock
}

func NewReportService(orders OrderLister, clk clock.Clock) *ReportService {
	return &ReportService{orders: orders, clock: clk}
}

// OrdersInRange returns the orders falling inside the named range, newest
// first as stored.
func (s *ReportService) OrdersInRange(ctx context.Context, r Range) ([]domain.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	from, to, err := s.Bounds(r)
	if err != nil {
		return nil, err
	}
	if from == nil {
		return orders, nil
	}
	return FilterBetween(orders, *from, *to), nil
}

// OrdersBetween returns the orders on the inclusive calendar days from..to.
func (s *ReportService) OrdersBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return FilterBetween(orders, startOfDay(from), endOfDay(to)), nil
}

// Bounds resolves a named range to its inclusive bounds at the current time.
// RangeAll has no bounds and returns nil times.
func (s *ReportService) Bounds(r Range) (from, to *time.Time, err error) {
	now := s.clock.Now()
	switch r {
	case RangeDaily:
		f, t := startOfDay(now), endOfDay(now)
		return &f, &t, nil
	case RangeWeekly:
		// Weeks start on Sunday.
		f := startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
		t := endOfDay(f.AddDate(0, 0, 6))
		return &f, &t, nil
	case RangeMonthly:
		f := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		t := f.AddDate(0, 1, 0).Add(-time.Nanosecond)
		return &f, &t, nil
	case RangeAll:
		return nil, nil, nil
	default:
		return nil, nil, domain.ErrInvalidRange
	}
}

// StatsInRange summarizes the orders inside the named range.
func (s *ReportService) StatsInRange(ctx context.Context, r Range) (Stats, error) {
	orders, err := s.OrdersInRange(ctx, r)
	if err != nil {
		return Stats{}, err
	}
	return Summarize(orders), nil
}

// Stats are the dashboard headline numbers for a filtered set of orders.
type Stats struct {
	TotalAmount     float64
	TotalOrders     int
	UniqueEmployees int
}

// Summarize computes stats over orders without touching the store.
func Summarize(orders []domain.Order) Stats {
	seen := make(map[string]struct{}, len(orders))
	st := Stats{TotalOrders: len(orders)}
	for _, o := range orders {
		st.TotalAmount += o.Amount
		seen[o.EmployeeName] = struct{}{}
	}
	st.UniqueEmployees = len(seen)
	return st
}

// FilterBetween keeps orders whose OrderDate falls inside [from, to], both
// bounds inclusive. The input order is preserved and the input slice is not
// modified.
func FilterBetween(orders []domain.Order, from, to time.Time) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.OrderDate.Before(from) || o.OrderDate.After(to) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
