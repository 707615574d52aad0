package domain

import "time"

// Day reduces a date field value to its canonical calendar-day string
// ("2006-01-02"). The second return value is false when the value is absent
// or not a recognizable date.
//
// The store serializes dates as timestamp strings ("2026-01-19T22:00:00.000Z")
// or bare days ("2026-01-19"). The day is taken from the string's own calendar
// components — the leading ten characters — never by converting through a
// time zone, so "2026-01-19T22:00:00Z" stays on Jan 19 regardless of where
// the server runs.
func Day(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || len(s) < 10 {
		return "", false
	}
	day := s[:10]
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return "", false
	}
	return day, true
}
