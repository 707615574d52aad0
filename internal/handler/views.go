package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/barlev-tours/schedule-board/internal/domain"
)

// listViews handles GET /api/views?grid=.
func (s *Server) listViews(w http.ResponseWriter, r *http.Request) {
	views, err := s.views.List(r.Context(), r.URL.Query().Get("grid"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"views": views})
}

// createView handles POST /api/views.
func (s *Server) createView(w http.ResponseWriter, r *http.Request) {
	var view domain.GridView
	if err := json.NewDecoder(r.Body).Decode(&view); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is not valid JSON")
		return
	}

	created, err := s.views.Create(r.Context(), view)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// updateView handles PUT /api/views/{id}. Only name and state are mutable;
// a view never moves between grids.
func (s *Server) updateView(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed view id")
		return
	}

	var view domain.GridView
	if err := json.NewDecoder(r.Body).Decode(&view); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is not valid JSON")
		return
	}
	view.ID = id

	updated, err := s.views.Update(r.Context(), view)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// deleteView handles DELETE /api/views/{id}.
func (s *Server) deleteView(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed view id")
		return
	}

	if err := s.views.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
