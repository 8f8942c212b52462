package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mhdasif123/SipandSnack/internal/app"
	"github.com/mhdasif123/SipandSnack/internal/domain"
	"github.com/mhdasif123/SipandSnack/internal/export"
)

const dayLayout = "2006-01-02"

// ReportProvider is the minimal interface needed for the admin report
// endpoints.
type ReportProvider interface {
	OrdersInRange(ctx context.Context, r app.Range) ([]domain.Order, error)
	OrdersBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error)
	Bounds(r app.Range) (from, to *time.Time, err error)
	StatsInRange(ctx context.Context, r app.Range) (app.Stats, error)
}

// HandleAdminOrders lists orders filtered by a named range or an explicit
// from/to day pair, newest first.
func HandleAdminOrders(svc ReportProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, _, _, ok := resolveOrders(w, r, svc)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(orderResponses(orders))
	}
}

// HandleAdminStats reports headline numbers for a named range. The
// dashboard defaults to today.
func HandleAdminStats(svc ReportProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("range")
		if name == "" {
			name = string(app.RangeDaily)
		}
		stats, err := svc.StatsInRange(r.Context(), app.Range(name))
		if err != nil {
			writeRangeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(statsResponse{
			TotalAmount:     stats.TotalAmount,
			TotalOrders:     stats.TotalOrders,
			UniqueEmployees: stats.UniqueEmployees,
		})
	}
}

// HandleExportCSV streams the filtered orders as a CSV download.
func HandleExportCSV(svc ReportProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, from, to, ok := resolveOrders(w, r, svc)
		if !ok {
			return
		}
		body, err := export.CSV(orders)
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(from, to, "csv")))
		_, _ = w.Write([]byte(body))
	}
}

// HandleExportPrintable streams the filtered orders as a printable text
// report.
func HandleExportPrintable(svc ReportProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, from, to, ok := resolveOrders(w, r, svc)
		if !ok {
			return
		}
		body := export.PrintableReport(orders, from, to)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(from, to, "txt")))
		_, _ = w.Write([]byte(body))
	}
}

// resolveOrders applies the shared query contract: an explicit from/to day
// pair wins, otherwise a named range (default all). The returned labels
// name the covered period for filenames and titles. On failure the error
// response has already been written and ok is false.
func resolveOrders(w http.ResponseWriter, r *http.Request, svc ReportProvider) (orders []domain.Order, fromLabel, toLabel string, ok bool) {
	q := r.URL.Query()
	fromRaw, toRaw := q.Get("from"), q.Get("to")

	if fromRaw != "" || toRaw != "" {
		from, err := time.ParseInLocation(dayLayout, fromRaw, time.Local)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRange, "invalid from date")
			return nil, "", "", false
		}
		to, err := time.ParseInLocation(dayLayout, toRaw, time.Local)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRange, "invalid to date")
			return nil, "", "", false
		}
		orders, err := svc.OrdersBetween(r.Context(), from, to)
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return nil, "", "", false
		}
		return orders, fromRaw, toRaw, true
	}

	name := q.Get("range")
	if name == "" {
		name = string(app.RangeAll)
	}
	rng := app.Range(name)

	orders, err := svc.OrdersInRange(r.Context(), rng)
	if err != nil {
		writeRangeError(w, err)
		return nil, "", "", false
	}

	fromLabel, toLabel = "start", "end"
	if from, to, err := svc.Bounds(rng); err == nil && from != nil && to != nil {
		fromLabel = from.Format(dayLayout)
		toLabel = to.Format(dayLayout)
	}
	return orders, fromLabel, toLabel, true
}

func writeRangeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		writeError(w, http.StatusBadRequest, codeInvalidRange, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

type statsResponse struct {
	TotalAmount     float64 `json:"total_amount"`
	TotalOrders     int     `json:"total_orders"`
	UniqueEmployees int     `json:"unique_employees"`
}
