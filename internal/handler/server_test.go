package handler_test

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/barlev-tours/schedule-board/internal/domain"
	"github.com/barlev-tours/schedule-board/internal/handler"
	"github.com/barlev-tours/schedule-board/internal/service"
)

// Hand-written function-field doubles for each servicer interface.
// Set only the fields a test needs; unset calls panic loudly.

type mockSchedule struct {
	list            func(ctx context.Context, q service.ScheduleQuery) ([]domain.Record, error)
	create          func(ctx context.Context, in service.CreateInput) (domain.Record, error)
	update          func(ctx context.Context, recordID string, roles map[string]any) (domain.Record, error)
	delete          func(ctx context.Context, recordID string) error
	deleteMany      func(ctx context.Context, recordIDs []string) error
	clearAttachment func(ctx context.Context, recordID string) error
}

func (m *mockSchedule) List(ctx context.Context, q service.ScheduleQuery) ([]domain.Record, error) {
	return m.list(ctx, q)
}
func (m *mockSchedule) Create(ctx context.Context, in service.CreateInput) (domain.Record, error) {
	return m.create(ctx, in)
}
func (m *mockSchedule) Update(ctx context.Context, recordID string, roles map[string]any) (domain.Record, error) {
	return m.update(ctx, recordID, roles)
}
func (m *mockSchedule) Delete(ctx context.Context, recordID string) error {
	return m.delete(ctx, recordID)
}
func (m *mockSchedule) DeleteMany(ctx context.Context, recordIDs []string) error {
	return m.deleteMany(ctx, recordIDs)
}
func (m *mockSchedule) ClearAttachment(ctx context.Context, recordID string) error {
	return m.clearAttachment(ctx, recordID)
}

var _ handler.ScheduleServicer = (*mockSchedule)(nil)

type mockDirectory struct {
	list   func(ctx context.Context, search string) ([]domain.Record, int, error)
	create func(ctx context.Context, fields map[string]any) (domain.Record, error)
	update func(ctx context.Context, recordID string, fields map[string]any) (domain.Record, error)
	delete func(ctx context.Context, recordID string) error
}

func (m *mockDirectory) List(ctx context.Context, search string) ([]domain.Record, int, error) {
	return m.list(ctx, search)
}
func (m *mockDirectory) Create(ctx context.Context, fields map[string]any) (domain.Record, error) {
	return m.create(ctx, fields)
}
func (m *mockDirectory) Update(ctx context.Context, recordID string, fields map[string]any) (domain.Record, error) {
	return m.update(ctx, recordID, fields)
}
func (m *mockDirectory) Delete(ctx context.Context, recordID string) error {
	return m.delete(ctx, recordID)
}

var _ handler.DirectoryServicer = (*mockDirectory)(nil)

type mockExport struct {
	export func(ctx context.Context, q service.ScheduleQuery) ([]domain.ExportRow, error)
}

func (m *mockExport) Export(ctx context.Context, q service.ScheduleQuery) ([]domain.ExportRow, error) {
	return m.export(ctx, q)
}

var _ handler.ExportServicer = (*mockExport)(nil)

type mockViews struct {
	create func(ctx context.Context, view domain.GridView) (domain.GridView, error)
	list   func(ctx context.Context, grid string) ([]domain.GridView, error)
	update func(ctx context.Context, view domain.GridView) (domain.GridView, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (m *mockViews) Create(ctx context.Context, view domain.GridView) (domain.GridView, error) {
	return m.create(ctx, view)
}
func (m *mockViews) List(ctx context.Context, grid string) ([]domain.GridView, error) {
	return m.list(ctx, grid)
}
func (m *mockViews) Update(ctx context.Context, view domain.GridView) (domain.GridView, error) {
	return m.update(ctx, view)
}
func (m *mockViews) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.ViewServicer = (*mockViews)(nil)

// deps bundles the doubles a test wires into the router.
type deps struct {
	schedule  *mockSchedule
	export    *mockExport
	views     *mockViews
	customers *mockDirectory
	drivers   *mockDirectory
	vehicles  *mockDirectory
}

// newRouter builds a chi router with all routes registered against d.
// Nil doubles are replaced with zero-value ones; calling an unset method
// panics, which surfaces as a test failure with a clear stack.
func newRouter(d deps) http.Handler {
	if d.schedule == nil {
		d.schedule = &mockSchedule{}
	}
	if d.export == nil {
		d.export = &mockExport{}
	}
	if d.views == nil {
		d.views = &mockViews{}
	}
	if d.customers == nil {
		d.customers = &mockDirectory{}
	}
	if d.drivers == nil {
		d.drivers = &mockDirectory{}
	}
	if d.vehicles == nil {
		d.vehicles = &mockDirectory{}
	}

	srv := handler.NewServer(d.schedule, d.export, d.views, d.customers, d.drivers, d.vehicles)
	r := chi.NewRouter()
	srv.Routes(r)
	return r
}
