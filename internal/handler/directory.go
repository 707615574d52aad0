package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// directoryRoutes registers the shared CRUD surface for one directory screen
// (customers, drivers, vehicles). The svc indirection keeps the route table
// declarative while every screen gets its own service instance.
func (s *Server) directoryRoutes(r chi.Router, pattern string, svc func() DirectoryServicer) {
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", s.listDirectory(svc))
		r.Post("/", s.createDirectory(svc))
		r.Patch("/{id}", s.updateDirectory(svc))
		r.Delete("/{id}", s.deleteDirectory(svc))
	})
}

// listDirectory handles GET /api/{table}?search=.
func (s *Server) listDirectory(svc func() DirectoryServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, total, err := svc().List(r.Context(), r.URL.Query().Get("search"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recordsResponse{Records: records, Total: total})
	}
}

// createDirectory handles POST /api/{table} with {"fields": {...}}.
func (s *Server) createDirectory(svc func() DirectoryServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Fields map[string]any `json:"fields"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is not valid JSON")
			return
		}

		created, err := svc().Create(r.Context(), body.Fields)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// updateDirectory handles PATCH /api/{table}/{id} with {"fields": {...}}.
func (s *Server) updateDirectory(svc func() DirectoryServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Fields map[string]any `json:"fields"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is not valid JSON")
			return
		}

		updated, err := svc().Update(r.Context(), chi.URLParam(r, "id"), body.Fields)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// deleteDirectory handles DELETE /api/{table}/{id}.
func (s *Server) deleteDirectory(svc func() DirectoryServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc().Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
