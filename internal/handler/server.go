// Package handler implements the HTTP handlers for the schedule board API.
// All handlers are methods on Server; routes are registered by Routes.
// Methods are split into screen-specific files (schedule.go, directory.go,
// views.go, ...) but all share the same Server struct.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/barlev-tours/schedule-board/internal/domain"
	"github.com/barlev-tours/schedule-board/internal/service"
)

// ScheduleServicer defines the work-schedule operations the handlers depend
// on. Defining the interface here (in the consumer package) lets handler
// tests inject a mock without touching the store.
type ScheduleServicer interface {
	List(ctx context.Context, q service.ScheduleQuery) ([]domain.Record, error)
	Create(ctx context.Context, in service.CreateInput) (domain.Record, error)
	Update(ctx context.Context, recordID string, roles map[string]any) (domain.Record, error)
	Delete(ctx context.Context, recordID string) error
	DeleteMany(ctx context.Context, recordIDs []string) error
	ClearAttachment(ctx context.Context, recordID string) error
}

// DirectoryServicer defines the CRUD operations shared by the customers,
// drivers, and vehicles screens.
type DirectoryServicer interface {
	List(ctx context.Context, search string) ([]domain.Record, int, error)
	Create(ctx context.Context, fields map[string]any) (domain.Record, error)
	Update(ctx context.Context, recordID string, fields map[string]any) (domain.Record, error)
	Delete(ctx context.Context, recordID string) error
}

// ExportServicer produces the flat CSV rows for the schedule export.
type ExportServicer interface {
	Export(ctx context.Context, q service.ScheduleQuery) ([]domain.ExportRow, error)
}

// ViewServicer defines the saved grid view operations.
type ViewServicer interface {
	Create(ctx context.Context, view domain.GridView) (domain.GridView, error)
	List(ctx context.Context, grid string) ([]domain.GridView, error)
	Update(ctx context.Context, view domain.GridView) (domain.GridView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Server holds the services behind all API endpoints.
type Server struct {
	schedule  ScheduleServicer
	export    ExportServicer
	views     ViewServicer
	customers DirectoryServicer
	drivers   DirectoryServicer
	vehicles  DirectoryServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	schedule ScheduleServicer,
	export ExportServicer,
	views ViewServicer,
	customers, drivers, vehicles DirectoryServicer,
) *Server {
	return &Server{
		schedule:  schedule,
		export:    export,
		views:     views,
		customers: customers,
		drivers:   drivers,
		vehicles:  vehicles,
	}
}

// Routes registers every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.getHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/schedule", func(r chi.Router) {
			r.Get("/", s.listSchedule)
			r.Post("/", s.createSchedule)
			r.Delete("/", s.deleteScheduleBatch)
			r.Get("/export", s.exportSchedule)
			r.Patch("/{id}", s.updateSchedule)
			r.Delete("/{id}", s.deleteSchedule)
			r.Post("/{id}/attachment/clear", s.clearAttachment)
		})

		r.Route("/pricing", func(r chi.Router) {
			r.Post("/reconcile", s.reconcilePrice)
			r.Post("/profit", s.computeProfit)
		})

		r.Route("/views", func(r chi.Router) {
			r.Get("/", s.listViews)
			r.Post("/", s.createView)
			r.Put("/{id}", s.updateView)
			r.Delete("/{id}", s.deleteView)
		})

		s.directoryRoutes(r, "/customers", func() DirectoryServicer { return s.customers })
		s.directoryRoutes(r, "/drivers", func() DirectoryServicer { return s.drivers })
		s.directoryRoutes(r, "/vehicles", func() DirectoryServicer { return s.vehicles })
	})
}
