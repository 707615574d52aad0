package domain

// ExportRow is a single row in the schedule CSV export: one row per trip
// record, flattened to display strings so the writer does not need to know
// about linked-entity shapes or field keys.
//
// Profit is the derived figure (customer total minus driver total); it is
// empty when both totals are zero, matching how the grid leaves the cell
// blank rather than showing 0.00.
type ExportRow struct {
	Date          string
	Customer      string
	Pickup        string
	Description   string
	Dropoff       string
	VehicleType   string
	VehicleNumber string
	Driver        string

	CustomerPriceExcl string
	CustomerPriceIncl string
	DriverPriceExcl   string
	DriverPriceIncl   string
	Profit            string
}
