package handler

import (
	"encoding/csv"
	"log/slog"
	"net/http"
)

// exportHeader is the CSV header row, in grid column order.
var exportHeader = []string{
	"date", "customer", "pickup", "description", "dropoff",
	"vehicle_type", "vehicle_number", "driver",
	"customer_price_excl_vat", "customer_price_incl_vat",
	"driver_price_excl_vat", "driver_price_incl_vat", "profit",
}

// exportSchedule handles GET /api/schedule/export with the same date/q/all
// params as the listing, streaming the filtered day as CSV.
func (s *Server) exportSchedule(w http.ResponseWriter, r *http.Request) {
	q, ok := scheduleQueryFromRequest(w, r)
	if !ok {
		return
	}

	rows, err := s.export.Export(r.Context(), q)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	filename := "schedule.csv"
	if q.Day != "" {
		filename = "schedule-" + q.Day + ".csv"
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		slog.Error("write export header", "error", err)
		return
	}
	for _, row := range rows {
		record := []string{
			row.Date, row.Customer, row.Pickup, row.Description, row.Dropoff,
			row.VehicleType, row.VehicleNumber, row.Driver,
			row.CustomerPriceExcl, row.CustomerPriceIncl,
			row.DriverPriceExcl, row.DriverPriceIncl, row.Profit,
		}
		if err := cw.Write(record); err != nil {
			slog.Error("write export row", "error", err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("flush export", "error", err)
	}
}
