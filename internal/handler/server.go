// Package handler implements the HTTP handlers for the Trip Planner.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip_event.go, form.go, export.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/view"
)

// TripEventServicer defines the trip event operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the repo or service layer.
type TripEventServicer interface {
	GetByID(ctx context.Context, id int) (domain.TripEvent, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.TripEvent, int, error)
	Save(ctx context.Context, event domain.TripEvent) error
	Delete(ctx context.Context, id int) error
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	events  TripEventServicer
	export  ExportServicer
	catalog view.Catalog
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(events TripEventServicer, export ExportServicer, catalog view.Catalog, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{events: events, export: export, catalog: catalog, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// Routes returns the chi router serving every endpoint.
// Cross-cutting middleware (request IDs, logging, recovery) is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)

	r.Route("/events", func(r chi.Router) {
		r.Get("/", s.ListTripEvents)
		r.Get("/export", s.GetExport)
		r.Get("/new", s.GetNewForm)
		r.Post("/new", s.PostNewForm)
		r.Get("/{id}/edit", s.GetEditForm)
		r.Post("/{id}/edit", s.PostEditForm)
	})
	return r
}
