// Package pricing keeps a pre-VAT / inclusive-of-VAT price pair mutually
// consistent under user edits, and derives the profit figure shown on the
// schedule grid. All functions are pure; the caller owns the state.
//
// A trip carries two independent pairs — the customer side and the driver
// side — each reconciled against its own VAT rate.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Pair holds both sides of a price pair as the form presents them: the field
// the user last typed into keeps its raw text, the derived field carries a
// 2-decimal formatted value. Both empty means the pair is cleared.
type Pair struct {
	Excl string `json:"excl"`
	Incl string `json:"incl"`
}

// SetExcl reconciles the pair after an edit to the pre-VAT field.
// The entered text is preserved verbatim on Excl; Incl is recomputed at
// ratePercent and formatted to 2 decimals.
//
// Empty input clears both fields. Unparsable input also clears both fields —
// the pair is never left half-populated. (Compatibility behavior: the
// original form swallowed invalid numeric text the same way.)
func SetExcl(raw string, ratePercent float64) Pair {
	excl, ok := parseAmount(raw)
	if !ok {
		return Pair{}
	}
	return Pair{
		Excl: raw,
		Incl: format2(excl * (1 + ratePercent/100)),
	}
}

// SetIncl reconciles the pair after an edit to the inclusive-of-VAT field.
// Symmetric to SetExcl: Incl preserves the entered text, Excl is derived by
// dividing out the VAT rate.
func SetIncl(raw string, ratePercent float64) Pair {
	incl, ok := parseAmount(raw)
	if !ok {
		return Pair{}
	}
	return Pair{
		Excl: format2(incl / (1 + ratePercent/100)),
		Incl: raw,
	}
}

// RateChange recomputes the derived side of an existing pair at a new VAT
// rate. The last-edited side is authoritative: a populated nonzero Excl wins,
// else a populated nonzero Incl, else the pair is returned unchanged.
func RateChange(ratePercent float64, excl, incl string) Pair {
	if v, ok := parseAmount(excl); ok && v != 0 {
		return Pair{Excl: excl, Incl: format2(v * (1 + ratePercent/100))}
	}
	if v, ok := parseAmount(incl); ok && v != 0 {
		return Pair{Excl: format2(v / (1 + ratePercent/100)), Incl: incl}
	}
	return Pair{Excl: excl, Incl: incl}
}

// Profit returns the inclusive-of-VAT margin: customer total minus driver
// total, rounded to 2 decimals. ok is false when both totals are zero, in
// which case the grid leaves the cell blank.
func Profit(customerIncl, driverIncl float64) (profit float64, ok bool) {
	if customerIncl == 0 && driverIncl == 0 {
		return 0, false
	}
	return Round2(customerIncl - driverIncl), true
}

// Round2 rounds to 2 decimal places with ties toward positive infinity, the
// rounding rule of the original form (-0.125 rounds to -0.12, 0.125 to 0.13).
func Round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// parseAmount parses the raw text of a numeric input field. Whitespace-only
// and unparsable text (including NaN/Inf) report ok=false.
func parseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// format2 renders a derived amount with exactly 2 decimals.
func format2(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}
