package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mhdasif123/SipandSnack/internal/domain"
)

// RosterManager is the minimal interface needed for employee endpoints.
type RosterManager interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Add(ctx context.Context, name string) (domain.Employee, error)
	Rename(ctx context.Context, id, name string) error
	Remove(ctx context.Context, id string) error
}

// HandleListEmployees returns the roster for the order form and admin
// screens.
func HandleListEmployees(svc RosterManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employees, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		resp := make([]employeeResponse, 0, len(employees))
		for _, e := range employees {
			resp = append(resp, employeeResponse{ID: e.ID, Name: e.Name})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// HandleAddEmployee creates a roster entry.
func HandleAddEmployee(svc RosterManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req employeeRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		employee, err := svc.Add(r.Context(), req.Name)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNameRequired):
				writeError(w, http.StatusBadRequest, codeNameRequired, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(employeeResponse{ID: employee.ID, Name: employee.Name})
	}
}

// HandleRenameEmployee renames a roster entry. Unknown ids succeed as
// no-ops.
func HandleRenameEmployee(svc RosterManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req employeeRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		err := svc.Rename(r.Context(), chi.URLParam(r, "id"), req.Name)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case errors.Is(err, domain.ErrNameRequired):
				writeError(w, http.StatusBadRequest, codeNameRequired, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleRemoveEmployee deletes a roster entry. Unknown ids succeed as
// no-ops.
func HandleRemoveEmployee(svc RosterManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Remove(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type employeeRequest struct {
	Name string `json:"name"`
}

type employeeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
