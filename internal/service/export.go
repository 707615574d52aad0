package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/barlev-tours/schedule-board/internal/domain"
	"github.com/barlev-tours/schedule-board/internal/pricing"
)

// ExportService flattens the filtered schedule into rows suitable for CSV:
// one row per trip with linked entities normalized to display strings and the
// profit column derived from the two inclusive totals.
type ExportService struct {
	schedule *ScheduleService
}

// NewExportService constructs an ExportService over the schedule service.
func NewExportService(schedule *ScheduleService) *ExportService {
	return &ExportService{schedule: schedule}
}

// Export returns one ExportRow per record matching q, in store order.
func (s *ExportService) Export(ctx context.Context, q ScheduleQuery) ([]domain.ExportRow, error) {
	records, err := s.schedule.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	fm := s.schedule.FieldMap()
	rows := make([]domain.ExportRow, 0, len(records))
	for _, rec := range records {
		day, _ := domain.Day(rec.Field(fm.Date))

		customerIncl := fieldAmount(rec.Field(fm.CustomerPriceIncl))
		driverIncl := fieldAmount(rec.Field(fm.DriverPriceIncl))

		row := domain.ExportRow{
			Date:          day,
			Customer:      domain.Display(rec.Field(fm.Customer)),
			Pickup:        domain.Display(rec.Field(fm.Pickup)),
			Description:   domain.Display(rec.Field(fm.Description)),
			Dropoff:       domain.Display(rec.Field(fm.Dropoff)),
			VehicleType:   domain.Display(rec.Field(fm.VehicleType)),
			VehicleNumber: domain.Display(rec.Field(fm.VehicleNumber)),
			Driver:        domain.Display(rec.Field(fm.Driver)),

			CustomerPriceExcl: money(rec.Field(fm.CustomerPriceExcl)),
			CustomerPriceIncl: money(rec.Field(fm.CustomerPriceIncl)),
			DriverPriceExcl:   money(rec.Field(fm.DriverPriceExcl)),
			DriverPriceIncl:   money(rec.Field(fm.DriverPriceIncl)),
		}
		if profit, ok := pricing.Profit(customerIncl, driverIncl); ok {
			row.Profit = strconv.FormatFloat(profit, 'f', 2, 64)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// fieldAmount reads a numeric store field. Absent and non-numeric values
// count as 0, the same as an empty price input.
func fieldAmount(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// money renders a price field with 2 decimals, or empty when unset/zero.
func money(v any) string {
	amount := fieldAmount(v)
	if amount == 0 {
		return ""
	}
	return strconv.FormatFloat(pricing.Round2(amount), 'f', 2, 64)
}
