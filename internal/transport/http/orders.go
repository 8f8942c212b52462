package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mhdasif123/SipandSnack/internal/app"
	"github.com/mhdasif123/SipandSnack/internal/domain"
	"github.com/mhdasif123/SipandSnack/internal/metrics"
)

// The user re-submits after a duplicate rejection, so the message is spelled
// out for display.
const duplicateOrderMsg = "You have already placed an order today."

// OrderSubmitter is the minimal interface needed to submit an order.
type OrderSubmitter interface {
	Submit(ctx context.Context, in app.SubmitOrderInput) (domain.Order, error)
}

// HandleSubmitOrder returns an HTTP handler for the order form submission.
func HandleSubmitOrder(svc OrderSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitOrderRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			metrics.ObserveAdmission(metrics.ResultInvalid)
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		order, err := svc.Submit(r.Context(), app.SubmitOrderInput{
			EmployeeName: req.EmployeeName,
			Tea:          req.Tea,
			Snack:        req.Snack,
			Amount:       req.Amount,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrEmployeeRequired):
				metrics.ObserveAdmission(metrics.ResultInvalid)
				writeError(w, http.StatusBadRequest, codeEmployeeNameRequired, err.Error())
			case errors.Is(err, domain.ErrTeaRequired):
				metrics.ObserveAdmission(metrics.ResultInvalid)
				writeError(w, http.StatusBadRequest, codeTeaRequired, err.Error())
			case errors.Is(err, domain.ErrSnackRequired):
				metrics.ObserveAdmission(metrics.ResultInvalid)
				writeError(w, http.StatusBadRequest, codeSnackRequired, err.Error())
			case errors.Is(err, domain.ErrInvalidAmount):
				metrics.ObserveAdmission(metrics.ResultInvalid)
				writeError(w, http.StatusBadRequest, codeInvalidAmount, err.Error())
			case errors.Is(err, domain.ErrWindowClosed):
				metrics.ObserveAdmission(metrics.ResultWindowClosed)
				writeError(w, http.StatusLocked, codeWindowClosed, err.Error())
			case errors.Is(err, domain.ErrDuplicateOrder):
				metrics.ObserveAdmission(metrics.ResultDuplicate)
				writeError(w, http.StatusConflict, codeDuplicateOrder, duplicateOrderMsg)
			default:
				metrics.ObserveAdmission(metrics.ResultError)
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		metrics.ObserveAdmission(metrics.ResultAccepted)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(orderResponse{
			ID:           order.ID,
			EmployeeName: order.EmployeeName,
			Tea:          order.Tea,
			Snack:        order.Snack,
			Amount:       order.Amount,
			OrderDate:    order.OrderDate,
		})
	}
}

type submitOrderRequest struct {
	EmployeeName string  `json:"employee_name"`
	Tea          string  `json:"tea"`
	Snack        string  `json:"snack"`
	Amount       float64 `json:"amount"`
}

type orderResponse struct {
	ID           string    `json:"id"`
	EmployeeName string    `json:"employee_name"`
	Tea          string    `json:"tea"`
	Snack        string    `json:"snack"`
	Amount       float64   `json:"amount"`
	OrderDate    time.Time `json:"order_date"`
}

func orderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse{
			ID:           o.ID,
			EmployeeName: o.EmployeeName,
			Tea:          o.Tea,
			Snack:        o.Snack,
			Amount:       o.Amount,
			OrderDate:    o.OrderDate,
		})
	}
	return out
}
