package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barlev-tours/schedule-board/internal/domain"
)

func TestListViews_FiltersByGrid(t *testing.T) {
	var gotGrid string
	h := newRouter(deps{views: &mockViews{
		list: func(_ context.Context, grid string) ([]domain.GridView, error) {
			gotGrid = grid
			return []domain.GridView{{ID: uuid.New(), Grid: grid, Name: "mornings"}}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/views?grid=schedule", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.GridSchedule, gotGrid)

	var body struct {
		Views []domain.GridView `json:"views"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Views, 1)
	assert.Equal(t, "mornings", body.Views[0].Name)
}

func TestCreateView_Returns201(t *testing.T) {
	h := newRouter(deps{views: &mockViews{
		create: func(_ context.Context, view domain.GridView) (domain.GridView, error) {
			require.Equal(t, domain.GridSchedule, view.Grid)
			require.Equal(t, "mornings", view.Name)
			view.ID = uuid.New()
			return view, nil
		},
	}})

	body := `{"grid":"schedule","name":"mornings","state":{"sort":"date"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/views", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.GridView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestUpdateView_UsesPathID(t *testing.T) {
	id := uuid.New()
	h := newRouter(deps{views: &mockViews{
		update: func(_ context.Context, view domain.GridView) (domain.GridView, error) {
			require.Equal(t, id, view.ID)
			require.Equal(t, "afternoons", view.Name)
			return view, nil
		},
	}})

	req := httptest.NewRequest(http.MethodPut, "/api/views/"+id.String(), strings.NewReader(`{"name":"afternoons"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateView_MalformedID(t *testing.T) {
	h := newRouter(deps{})

	req := httptest.NewRequest(http.MethodPut, "/api/views/not-a-uuid", strings.NewReader(`{"name":"x"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteView_Returns204(t *testing.T) {
	id := uuid.New()
	h := newRouter(deps{views: &mockViews{
		delete: func(_ context.Context, got uuid.UUID) error {
			require.Equal(t, id, got)
			return nil
		},
	}})

	req := httptest.NewRequest(http.MethodDelete, "/api/views/"+id.String(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteView_NotFound(t *testing.T) {
	h := newRouter(deps{views: &mockViews{
		delete: func(_ context.Context, _ uuid.UUID) error {
			return domain.ErrNotFound
		},
	}})

	req := httptest.NewRequest(http.MethodDelete, "/api/views/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
