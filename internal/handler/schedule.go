package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/barlev-tours/schedule-board/internal/domain"
	"github.com/barlev-tours/schedule-board/internal/service"
)

// recordsResponse is the listing envelope the grids consume.
type recordsResponse struct {
	Records []domain.Record `json:"records"`
	Total   int             `json:"total"`
}

// listSchedule handles GET /api/schedule.
// Query params: date (2006-01-02), q (free-text search), all (show all dates).
// No date and no all flag behaves like the all-dates view — the grid decides
// which day to pin, the server does not guess one.
func (s *Server) listSchedule(w http.ResponseWriter, r *http.Request) {
	q, ok := scheduleQueryFromRequest(w, r)
	if !ok {
		return
	}

	records, err := s.schedule.List(r.Context(), q)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordsResponse{Records: records, Total: len(records)})
}

// createSchedule handles POST /api/schedule.
func (s *Server) createSchedule(w http.ResponseWriter, r *http.Request) {
	var in service.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is not valid JSON")
		return
	}

	created, err := s.schedule.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// updateSchedule handles PATCH /api/schedule/{id}.
// The body is {"fields": {semanticRole: value, ...}}.
func (s *Server) updateSchedule(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Fields map[string]any `json:"fields"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is not valid JSON")
		return
	}

	updated, err := s.schedule.Update(r.Context(), chi.URLParam(r, "id"), body.Fields)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// deleteSchedule handles DELETE /api/schedule/{id}.
func (s *Server) deleteSchedule(w http.ResponseWriter, r *http.Request) {
	if err := s.schedule.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteScheduleBatch handles DELETE /api/schedule with {"ids": [...]} —
// the grid's multi-row selection delete.
func (s *Server) deleteScheduleBatch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is not valid JSON")
		return
	}

	if err := s.schedule.DeleteMany(r.Context(), body.IDs); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// clearAttachment handles POST /api/schedule/{id}/attachment/clear.
func (s *Server) clearAttachment(w http.ResponseWriter, r *http.Request) {
	if err := s.schedule.ClearAttachment(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// scheduleQueryFromRequest parses the shared date/q/all query parameters.
// Reports ok=false after writing a 422 for a malformed date.
func scheduleQueryFromRequest(w http.ResponseWriter, r *http.Request) (service.ScheduleQuery, bool) {
	q := service.ScheduleQuery{
		Search: r.URL.Query().Get("q"),
	}

	date := r.URL.Query().Get("date")
	all := r.URL.Query().Get("all") == "true"

	switch {
	case all, date == "":
		q.AllDates = true
	default:
		if _, err := time.Parse("2006-01-02", date); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "date must be formatted 2006-01-02")
			return service.ScheduleQuery{}, false
		}
		q.Day = date
	}
	return q, true
}
