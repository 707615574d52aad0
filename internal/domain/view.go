package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Grid names identify which screen a saved view belongs to.
const (
	GridSchedule  = "schedule"
	GridCustomers = "customers"
	GridDrivers   = "drivers"
	GridVehicles  = "vehicles"
)

// KnownGrid reports whether grid is one of the four back-office screens.
func KnownGrid(grid string) bool {
	switch grid {
	case GridSchedule, GridCustomers, GridDrivers, GridVehicles:
		return true
	}
	return false
}

// GridView is a saved grid layout: column order, widths, and hidden columns
// for one of the back-office screens. State is stored as raw JSON because its
// shape belongs to the UI — the server persists it, it does not interpret it.
type GridView struct {
	ID        uuid.UUID       `json:"id"`
	Grid      string          `json:"grid"`
	Name      string          `json:"name"`
	State     json.RawMessage `json:"state"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
