package service

import (
	"context"
	"fmt"

	"github.com/barlev-tours/schedule-board/internal/domain"
	"github.com/barlev-tours/schedule-board/internal/teable"
)

// DirectoryService implements CRUD for the entity tables the schedule links
// to: customers, drivers, and vehicles. One parameterized service replaces
// the three near-identical per-table proxies it descends from — the only
// thing that differs between them is the table id.
type DirectoryService struct {
	store   Store
	tableID string
}

// NewDirectoryService constructs a DirectoryService over one directory table.
func NewDirectoryService(store Store, tableID string) *DirectoryService {
	return &DirectoryService{store: store, tableID: tableID}
}

// List returns directory records and the total count. With a search term the
// store does the matching server-side and returns a single page; without one
// the whole table is drained so the grid can filter locally.
func (s *DirectoryService) List(ctx context.Context, search string) ([]domain.Record, int, error) {
	if search != "" {
		page, err := s.store.ListRecords(ctx, s.tableID, teable.ListOptions{Search: search})
		if err != nil {
			return nil, 0, fmt.Errorf("service.DirectoryService.List: %w", err)
		}
		return page.Records, page.Total, nil
	}

	records, err := s.store.ListAll(ctx, s.tableID)
	if err != nil {
		return nil, 0, fmt.Errorf("service.DirectoryService.List: %w", err)
	}
	return records, len(records), nil
}

// Create inserts one directory record. Fields are store-keyed; directory
// tables have no semantic remapping layer, their grids edit raw fields.
func (s *DirectoryService) Create(ctx context.Context, fields map[string]any) (domain.Record, error) {
	if len(fields) == 0 {
		return domain.Record{}, domain.Validationf("no fields given")
	}
	rec, err := s.store.CreateRecord(ctx, s.tableID, fields)
	if err != nil {
		return domain.Record{}, fmt.Errorf("service.DirectoryService.Create: %w", err)
	}
	return rec, nil
}

// Update patches one directory record's fields.
func (s *DirectoryService) Update(ctx context.Context, recordID string, fields map[string]any) (domain.Record, error) {
	if !domain.ValidRecordID(recordID) {
		return domain.Record{}, domain.Validationf("malformed record id %q", recordID)
	}
	if len(fields) == 0 {
		return domain.Record{}, domain.Validationf("no fields to update")
	}
	rec, err := s.store.UpdateRecord(ctx, s.tableID, recordID, fields)
	if err != nil {
		return domain.Record{}, fmt.Errorf("service.DirectoryService.Update: %w", err)
	}
	return rec, nil
}

// Delete removes one directory record permanently.
func (s *DirectoryService) Delete(ctx context.Context, recordID string) error {
	if !domain.ValidRecordID(recordID) {
		return domain.Validationf("malformed record id %q", recordID)
	}
	if err := s.store.DeleteRecord(ctx, s.tableID, recordID); err != nil {
		return fmt.Errorf("service.DirectoryService.Delete: %w", err)
	}
	return nil
}
