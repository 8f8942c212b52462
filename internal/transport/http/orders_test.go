package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mhdasif123/SipandSnack/internal/app"
	"github.com/mhdasif123/SipandSnack/internal/domain"
)

func TestHandleSubmitOrder(t *testing.T) {
	t.Parallel()

	placed := domain.Order{
		ID:           "order-123",
		EmployeeName: "Anjali Sharma",
		Tea:          "Masala Chai",
		Snack:        "Samosa",
		Amount:       25,
		OrderDate:    time.Date(2025, 6, 3, 15, 10, 0, 0, time.UTC),
	}

	validBody := `{"employee_name":"Anjali Sharma","tea":"Masala Chai","snack":"Samosa","amount":25}`

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			body:           validBody,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"id":"order-123"`,
		},
		{
			name:           "invalid json",
			body:           `{"employee_name":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing employee",
			body:           validBody,
			serviceErr:     domain.ErrEmployeeRequired,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "employee_name_required",
		},
		{
			name:           "missing tea",
			body:           validBody,
			serviceErr:     domain.ErrTeaRequired,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing snack",
			body:           validBody,
			serviceErr:     domain.ErrSnackRequired,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid amount",
			body:           validBody,
			serviceErr:     domain.ErrInvalidAmount,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "invalid_amount",
		},
		{
			name:           "window closed",
			body:           validBody,
			serviceErr:     domain.WindowClosedError{Message: "Ordering is closed. Please check back between 3:00 PM and 3:30 PM."},
			expectedStatus: http.StatusLocked,
			expectedSubstr: "Ordering is closed",
		},
		{
			name:           "duplicate order",
			body:           validBody,
			serviceErr:     domain.ErrDuplicateOrder,
			expectedStatus: http.StatusConflict,
			expectedSubstr: "You have already placed an order today.",
		},
		{
			name:           "internal error",
			body:           validBody,
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubOrderService{order: placed, err: tt.serviceErr}
			req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			HandleSubmitOrder(svc).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected body to contain %q, got %s", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

type stubOrderService struct {
	order domain.Order
	err   error
	calls int
	last  app.SubmitOrderInput
}

func (s *stubOrderService) Submit(_ context.Context, in app.SubmitOrderInput) (domain.Order, error) {
	s.calls++
	s.last = in
	if s.err != nil {
		return domain.Order{}, s.err
	}
	return s.order, nil
}
