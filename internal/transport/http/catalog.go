package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mhdasif123/SipandSnack/internal/app"
	"github.com/mhdasif123/SipandSnack/internal/domain"
)

// CatalogManager is the minimal interface needed for item endpoints.
type CatalogManager interface {
	List(ctx context.Context, catalog domain.Catalog) ([]domain.Item, error)
	Add(ctx context.Context, in app.AddItemInput) (domain.Item, error)
	Update(ctx context.Context, in app.UpdateItemInput) error
	Remove(ctx context.Context, catalog domain.Catalog, id string) error
}

// HandleListItems returns one catalog for the order form and admin screens.
func HandleListItems(svc CatalogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), domain.Catalog(chi.URLParam(r, "catalog")))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidCatalog):
				writeError(w, http.StatusNotFound, codeInvalidCatalog, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		resp := make([]itemResponse, 0, len(items))
		for _, it := range items {
			resp = append(resp, itemResponse{ID: it.ID, Name: it.Name, Price: it.Price})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// HandleAddItem creates a catalog entry.
func HandleAddItem(svc CatalogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req itemRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		item, err := svc.Add(r.Context(), app.AddItemInput{
			Catalog: domain.Catalog(chi.URLParam(r, "catalog")),
			Name:    req.Name,
			Price:   req.Price,
		})
		if err != nil {
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(itemResponse{ID: item.ID, Name: item.Name, Price: item.Price})
	}
}

// HandleUpdateItem rewrites a catalog entry. Unknown ids succeed as no-ops.
func HandleUpdateItem(svc CatalogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req itemRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		err := svc.Update(r.Context(), app.UpdateItemInput{
			Catalog: domain.Catalog(chi.URLParam(r, "catalog")),
			ID:      chi.URLParam(r, "id"),
			Name:    req.Name,
			Price:   req.Price,
		})
		if err != nil {
			writeCatalogError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleRemoveItem deletes a catalog entry. Unknown ids succeed as no-ops.
func HandleRemoveItem(svc CatalogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Remove(r.Context(), domain.Catalog(chi.URLParam(r, "catalog")), chi.URLParam(r, "id"))
		if err != nil {
			writeCatalogError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCatalog):
		writeError(w, http.StatusNotFound, codeInvalidCatalog, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case errors.Is(err, domain.ErrNameRequired):
		writeError(w, http.StatusBadRequest, codeNameRequired, err.Error())
	case errors.Is(err, domain.ErrInvalidPrice):
		writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

type itemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type itemResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
