package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mhdasif123/SipandSnack/internal/clock"
	"github.com/mhdasif123/SipandSnack/internal/metrics"
)

// Deps carries everything the router mounts.
type Deps struct {
	Orders      OrderSubmitter
	Reports     ReportProvider
	Roster      RosterManager
	Catalog     CatalogManager
	Window      WindowEvaluator
	Clock       clock.Clock
	Login       Credentials
	Logger      *zap.Logger
	CORSOrigins []string
}

// NewRouter wires every endpoint with logging, metrics, and CORS applied.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(d.Logger))
	r.Use(metrics.Middleware())
	r.Use(func(next http.Handler) http.Handler {
		return CORS(d.CORSOrigins, next)
	})

	r.Get("/health", HealthHandler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Get("/window", HandleWindowStatus(d.Window, d.Clock))
	r.Get("/catalog/employees", HandleListEmployees(d.Roster))
	r.Get("/catalog/{catalog}", HandleListItems(d.Catalog))
	r.Post("/orders", HandleSubmitOrder(d.Orders))

	r.Post("/login", HandleLogin(d.Login))
	r.Post("/logout", HandleLogout())

	r.Route("/admin", func(ar chi.Router) {
		ar.Use(RequireSession)
		ar.Get("/orders", HandleAdminOrders(d.Reports))
		ar.Get("/stats", HandleAdminStats(d.Reports))
		ar.Get("/reports/export.csv", HandleExportCSV(d.Reports))
		ar.Get("/reports/export.txt", HandleExportPrintable(d.Reports))
		ar.Post("/employees", HandleAddEmployee(d.Roster))
		ar.Put("/employees/{id}", HandleRenameEmployee(d.Roster))
		ar.Delete("/employees/{id}", HandleRemoveEmployee(d.Roster))
		ar.Post("/catalog/{catalog}", HandleAddItem(d.Catalog))
		ar.Put("/catalog/{catalog}/{id}", HandleUpdateItem(d.Catalog))
		ar.Delete("/catalog/{catalog}/{id}", HandleRemoveItem(d.Catalog))
	})

	r.NotFound(NotFoundHandler())
	r.MethodNotAllowed(MethodNotAllowedHandler())
	return r
}
