package handler

import (
	"encoding/json"
	"net/http"

	"github.com/barlev-tours/schedule-board/internal/pricing"
)

// reconcileRequest is one price-pair edit from the trip dialog.
// edited names the side that changed: "excl", "incl", or "rate".
// value carries the raw input text for excl/incl edits; excl/incl carry the
// pair's current values, which a rate edit needs to decide the authoritative side.
type reconcileRequest struct {
	Edited  string  `json:"edited"`
	Value   string  `json:"value"`
	VATRate float64 `json:"vatRate"`
	Excl    string  `json:"excl"`
	Incl    string  `json:"incl"`
}

// reconcilePrice handles POST /api/pricing/reconcile. The engine is pure —
// the dialog sends each edit here and stores whatever comes back.
func (s *Server) reconcilePrice(w http.ResponseWriter, r *http.Request) {
	var req reconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is not valid JSON")
		return
	}
	if req.VATRate < 0 {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "vatRate must not be negative")
		return
	}

	var pair pricing.Pair
	switch req.Edited {
	case "excl":
		pair = pricing.SetExcl(req.Value, req.VATRate)
	case "incl":
		pair = pricing.SetIncl(req.Value, req.VATRate)
	case "rate":
		pair = pricing.RateChange(req.VATRate, req.Excl, req.Incl)
	default:
		writeError(w, http.StatusUnprocessableEntity, "validation_error", `edited must be "excl", "incl", or "rate"`)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// profitRequest carries the two inclusive-of-VAT totals of a trip.
type profitRequest struct {
	CustomerIncl float64 `json:"customerIncl"`
	DriverIncl   float64 `json:"driverIncl"`
}

// profitResponse reports the derived margin; Profit is null when both totals
// are zero so the grid renders a blank cell.
type profitResponse struct {
	Profit *float64 `json:"profit"`
}

// computeProfit handles POST /api/pricing/profit.
func (s *Server) computeProfit(w http.ResponseWriter, r *http.Request) {
	var req profitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is not valid JSON")
		return
	}

	var resp profitResponse
	if profit, ok := pricing.Profit(req.CustomerIncl, req.DriverIncl); ok {
		resp.Profit = &profit
	}
	writeJSON(w, http.StatusOK, resp)
}
