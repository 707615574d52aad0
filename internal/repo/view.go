// Package repo contains the database access logic for state the application
// owns itself — currently the saved grid views. All trip/customer/driver data
// lives in the external table-database and goes through internal/teable
// instead; only UI state that used to sit in browser storage is kept here.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/barlev-tours/schedule-board/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ViewRepo defines the persistence operations for saved grid views.
type ViewRepo interface {
	// Create inserts a new view and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, view domain.GridView) (domain.GridView, error)

	// List returns all views for the given grid ordered by name.
	// An empty grid returns views for every grid.
	List(ctx context.Context, grid string) ([]domain.GridView, error)

	// Update overwrites the name and state of an existing view and returns
	// the updated record. Returns domain.ErrNotFound if the id is unknown.
	Update(ctx context.Context, view domain.GridView) (domain.GridView, error)

	// Delete removes a view by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgViewRepo is the Postgres implementation of ViewRepo.
type pgViewRepo struct {
	db db
}

// NewViewRepo constructs a ViewRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewViewRepo(db db) ViewRepo {
	return &pgViewRepo{db: db}
}

// Create inserts a new grid view row and returns the full persisted record.
func (r *pgViewRepo) Create(ctx context.Context, view domain.GridView) (domain.GridView, error) {
	const q = `
		INSERT INTO grid_views (grid, name, state)
		VALUES (@grid, @name, @state)
		RETURNING id, grid, name, state, created_at, updated_at`

	args := pgx.NamedArgs{
		"grid":  view.Grid,
		"name":  view.Name,
		"state": view.State,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanView(row)
	if err != nil {
		return domain.GridView{}, fmt.Errorf("repo.ViewRepo.Create: %w", err)
	}
	return result, nil
}

// List returns the views for one grid, or all views when grid is empty.
func (r *pgViewRepo) List(ctx context.Context, grid string) ([]domain.GridView, error) {
	const q = `
		SELECT id, grid, name, state, created_at, updated_at
		FROM grid_views
		WHERE (@grid = '' OR grid = @grid)
		ORDER BY name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"grid": grid})
	if err != nil {
		return nil, fmt.Errorf("repo.ViewRepo.List: %w", err)
	}
	defer rows.Close()

	var views []domain.GridView
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ViewRepo.List: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ViewRepo.List: %w", err)
	}
	return views, nil
}

// Update overwrites name and state, bumping updated_at.
func (r *pgViewRepo) Update(ctx context.Context, view domain.GridView) (domain.GridView, error) {
	const q = `
		UPDATE grid_views
		SET name = @name, state = @state, updated_at = now()
		WHERE id = @id
		RETURNING id, grid, name, state, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":    view.ID,
		"name":  view.Name,
		"state": view.State,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanView(row)
	if err != nil {
		return domain.GridView{}, fmt.Errorf("repo.ViewRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a view by primary key.
func (r *pgViewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM grid_views WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ViewRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ViewRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanView maps one row onto a domain.GridView, translating pgx.ErrNoRows
// into the domain sentinel.
func scanView(row pgx.Row) (domain.GridView, error) {
	var view domain.GridView
	err := row.Scan(&view.ID, &view.Grid, &view.Name, &view.State, &view.CreatedAt, &view.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.GridView{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.GridView{}, err
	}
	return view, nil
}
