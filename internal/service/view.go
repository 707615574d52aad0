package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/barlev-tours/schedule-board/internal/domain"
	"github.com/barlev-tours/schedule-board/internal/repo"
)

// ViewService implements business logic for saved grid views: the column
// order/width/visibility layouts users keep per screen.
type ViewService struct {
	views repo.ViewRepo
}

// NewViewService constructs a ViewService backed by the provided ViewRepo.
func NewViewService(views repo.ViewRepo) *ViewService {
	return &ViewService{views: views}
}

// Create validates and persists a new view.
// Returns domain.ErrValidation for an unknown grid or a blank name.
func (s *ViewService) Create(ctx context.Context, view domain.GridView) (domain.GridView, error) {
	if err := validateView(view); err != nil {
		return domain.GridView{}, err
	}
	if len(view.State) == 0 {
		view.State = []byte(`{}`)
	}
	result, err := s.views.Create(ctx, view)
	if err != nil {
		return domain.GridView{}, fmt.Errorf("service.ViewService.Create: %w", err)
	}
	return result, nil
}

// List returns the views saved for one grid, or every view when grid is "".
// Always returns a non-nil slice so callers can safely range over it.
func (s *ViewService) List(ctx context.Context, grid string) ([]domain.GridView, error) {
	if grid != "" && !domain.KnownGrid(grid) {
		return nil, domain.Validationf("unknown grid %q", grid)
	}
	views, err := s.views.List(ctx, grid)
	if err != nil {
		return nil, fmt.Errorf("service.ViewService.List: %w", err)
	}
	if views == nil {
		return []domain.GridView{}, nil
	}
	return views, nil
}

// Update validates and persists changes to an existing view's name and state.
func (s *ViewService) Update(ctx context.Context, view domain.GridView) (domain.GridView, error) {
	if strings.TrimSpace(view.Name) == "" {
		return domain.GridView{}, domain.Validationf("name is required")
	}
	if len(view.State) == 0 {
		view.State = []byte(`{}`)
	}
	result, err := s.views.Update(ctx, view)
	if err != nil {
		return domain.GridView{}, fmt.Errorf("service.ViewService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a view by ID.
func (s *ViewService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.views.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ViewService.Delete: %w", err)
	}
	return nil
}

// validateView enforces rules common to view creation.
//   - Grid must name one of the four back-office screens.
//   - Name must be non-empty (whitespace-only names are rejected).
func validateView(view domain.GridView) error {
	if !domain.KnownGrid(view.Grid) {
		return domain.Validationf("unknown grid %q", view.Grid)
	}
	if strings.TrimSpace(view.Name) == "" {
		return domain.Validationf("name is required")
	}
	return nil
}
