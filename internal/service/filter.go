// Package service contains the business logic for the schedule board API.
// Services validate inputs, apply the record filter and field remapping, and
// orchestrate store calls. No HTTP and no store URLs live here — services
// depend on narrow interfaces, not implementations.
package service

import (
	"strings"

	"github.com/barlev-tours/schedule-board/internal/domain"
)

// ScheduleQuery narrows the work-schedule listing to one calendar day and an
// optional free-text search.
//
// Day is a canonical "2006-01-02" string. AllDates bypasses the day equality
// check (the "show all dates" toggle); records without a parseable date are
// excluded either way — a trip that belongs to no day appears on no day.
type ScheduleQuery struct {
	Day      string
	AllDates bool
	Search   string
}

// FilterRecords returns the subset of records matching q, preserving the
// input order (stable filter, never a sort).
//
// A record is included iff it passes the day match AND the search match.
// The search is a case-insensitive substring test OR'd across the display
// strings of customer, description, driver, vehicle type, and vehicle
// number. Whitespace-only search text means no search constraint.
func FilterRecords(records []domain.Record, fm domain.FieldMap, q ScheduleQuery) []domain.Record {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		day, ok := domain.Day(rec.Field(fm.Date))
		if !ok {
			continue
		}
		if !q.AllDates && day != q.Day {
			continue
		}
		if search != "" && !matchesSearch(rec, fm, search) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// matchesSearch reports whether any searchable field of rec contains the
// already-lowercased search term.
func matchesSearch(rec domain.Record, fm domain.FieldMap, search string) bool {
	for _, key := range fm.SearchKeys() {
		value := strings.ToLower(domain.Display(rec.Field(key)))
		if strings.Contains(value, search) {
			return true
		}
	}
	return false
}
