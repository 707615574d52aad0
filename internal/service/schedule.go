package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/barlev-tours/schedule-board/internal/domain"
	"github.com/barlev-tours/schedule-board/internal/teable"
)

// Store defines the table-database operations the services depend on.
// *teable.Client satisfies it; tests inject a function-field mock.
type Store interface {
	ListRecords(ctx context.Context, tableID string, opts teable.ListOptions) (teable.Page, error)
	ListAll(ctx context.Context, tableID string) ([]domain.Record, error)
	CreateRecord(ctx context.Context, tableID string, fields map[string]any) (domain.Record, error)
	UpdateRecord(ctx context.Context, tableID, recordID string, fields map[string]any) (domain.Record, error)
	DeleteRecord(ctx context.Context, tableID, recordID string) error
	DeleteRecords(ctx context.Context, tableID string, recordIDs []string) error
}

// ScheduleService implements the work-schedule operations: the filtered day
// view, trip creation/editing with semantic-to-store field remapping, and
// single/batch deletion.
type ScheduleService struct {
	store   Store
	tableID string
	fm      domain.FieldMap
}

// NewScheduleService constructs a ScheduleService over the given store,
// work-schedule table, and field map.
func NewScheduleService(store Store, tableID string, fm domain.FieldMap) *ScheduleService {
	return &ScheduleService{store: store, tableID: tableID, fm: fm}
}

// FieldMap exposes the configured mapping to collaborators (export, handler).
func (s *ScheduleService) FieldMap() domain.FieldMap {
	return s.fm
}

// List fetches the full schedule table and returns the records matching q,
// in store order. The store is always refetched in full; mutations never
// patch a cached copy.
func (s *ScheduleService) List(ctx context.Context, q ScheduleQuery) ([]domain.Record, error) {
	records, err := s.store.ListAll(ctx, s.tableID)
	if err != nil {
		return nil, fmt.Errorf("service.ScheduleService.List: %w", err)
	}
	return FilterRecords(records, s.fm, q), nil
}

// CreateInput is the trip-creation form payload with semantic field names.
// Price fields carry the raw text of numeric inputs; empty or unparsable
// text is stored as 0, as the form has always submitted it.
type CreateInput struct {
	Date          string `json:"date"` // "2006-01-02", required
	Customer      string `json:"customer"`
	Driver        string `json:"driver"`
	VehicleType   string `json:"vehicleType"`
	VehicleNumber string `json:"vehicleNumber"`
	Pickup        string `json:"pickup"`
	Dropoff       string `json:"dropoff"`
	Description   string `json:"description"`

	CustomerPriceExcl string `json:"customerPriceExcl"`
	CustomerPriceIncl string `json:"customerPriceIncl"`
	DriverPriceExcl   string `json:"driverPriceExcl"`
	DriverPriceIncl   string `json:"driverPriceIncl"`
}

// Create validates in, remaps it to store field keys, and inserts the record.
func (s *ScheduleService) Create(ctx context.Context, in CreateInput) (domain.Record, error) {
	if strings.TrimSpace(in.Date) == "" {
		return domain.Record{}, domain.Validationf("date is required")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return domain.Record{}, domain.Validationf("date must be formatted 2006-01-02")
	}

	fields := map[string]any{
		s.fm.Date:          in.Date,
		s.fm.Customer:      in.Customer,
		s.fm.Driver:        in.Driver,
		s.fm.VehicleType:   in.VehicleType,
		s.fm.VehicleNumber: in.VehicleNumber,
		s.fm.Pickup:        in.Pickup,
		s.fm.Dropoff:       in.Dropoff,
		s.fm.Description:   in.Description,

		s.fm.CustomerPriceExcl: amountOrZero(in.CustomerPriceExcl),
		s.fm.CustomerPriceIncl: amountOrZero(in.CustomerPriceIncl),
		s.fm.DriverPriceExcl:   amountOrZero(in.DriverPriceExcl),
		s.fm.DriverPriceIncl:   amountOrZero(in.DriverPriceIncl),
	}

	rec, err := s.store.CreateRecord(ctx, s.tableID, fields)
	if err != nil {
		return domain.Record{}, fmt.Errorf("service.ScheduleService.Create: %w", err)
	}
	return rec, nil
}

// Update patches a record from a map of semantic role names to new values.
// Empty and nil values are dropped rather than written (an untouched dialog
// field must not blank the stored value), and a bare "2006-01-02" date is
// expanded to the midnight timestamp the store's date field expects.
// Unknown role names are rejected with ErrValidation.
func (s *ScheduleService) Update(ctx context.Context, recordID string, roles map[string]any) (domain.Record, error) {
	if !domain.ValidRecordID(recordID) {
		return domain.Record{}, domain.Validationf("malformed record id %q", recordID)
	}

	fields := make(map[string]any, len(roles))
	for role, value := range roles {
		// The edit dialog submits every field, touched or not; empty values
		// are dropped before key resolution so an optional role left unbound
		// by the deployment never fails the whole patch.
		if value == nil || value == "" {
			continue
		}
		key, ok := s.fm.StoreKey(role)
		if !ok {
			return domain.Record{}, domain.Validationf("unknown field %q", role)
		}
		if role == "date" {
			value = expandDate(value)
		}
		fields[key] = value
	}
	if len(fields) == 0 {
		return domain.Record{}, domain.Validationf("no fields to update")
	}

	rec, err := s.store.UpdateRecord(ctx, s.tableID, recordID, fields)
	if err != nil {
		return domain.Record{}, fmt.Errorf("service.ScheduleService.Update: %w", err)
	}
	return rec, nil
}

// Delete removes one trip record permanently.
func (s *ScheduleService) Delete(ctx context.Context, recordID string) error {
	if !domain.ValidRecordID(recordID) {
		return domain.Validationf("malformed record id %q", recordID)
	}
	if err := s.store.DeleteRecord(ctx, s.tableID, recordID); err != nil {
		return fmt.Errorf("service.ScheduleService.Delete: %w", err)
	}
	return nil
}

// DeleteMany removes the selected trip records in one store call.
func (s *ScheduleService) DeleteMany(ctx context.Context, recordIDs []string) error {
	if len(recordIDs) == 0 {
		return domain.Validationf("no record ids given")
	}
	for _, id := range recordIDs {
		if !domain.ValidRecordID(id) {
			return domain.Validationf("malformed record id %q", id)
		}
	}
	if err := s.store.DeleteRecords(ctx, s.tableID, recordIDs); err != nil {
		return fmt.Errorf("service.ScheduleService.DeleteMany: %w", err)
	}
	return nil
}

// ClearAttachment nulls out the record's attachment field, removing the
// uploaded file reference. The record itself is untouched.
func (s *ScheduleService) ClearAttachment(ctx context.Context, recordID string) error {
	if !domain.ValidRecordID(recordID) {
		return domain.Validationf("malformed record id %q", recordID)
	}
	if s.fm.Attachment == "" {
		return domain.Validationf("no attachment field configured")
	}
	if _, err := s.store.UpdateRecord(ctx, s.tableID, recordID, map[string]any{s.fm.Attachment: nil}); err != nil {
		return fmt.Errorf("service.ScheduleService.ClearAttachment: %w", err)
	}
	return nil
}

// amountOrZero parses the raw text of a numeric form input; anything that is
// not a number becomes 0.
func amountOrZero(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// expandDate turns a bare "2006-01-02" into the midnight UTC timestamp string
// the store's date field stores. Values already carrying a time component
// pass through unchanged.
func expandDate(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if len(s) == 10 && strings.Contains(s, "-") {
		return s + "T00:00:00.000Z"
	}
	return v
}
