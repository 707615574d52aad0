package domain

import "strconv"

// Display normalizes a field value to its human-readable display string.
//
// Linked-entity fields (customer, driver, vehicle type) arrive from the store
// in several shapes depending on how the link was populated: a single object
// with a "title", an array of such objects, or a bare id/text value. The rule
// is: first candidate's title, else the raw scalar as text, else empty.
// Display never panics on an unexpected shape — malformed values become "".
func Display(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; integral values print without a
		// trailing ".0" (a phone number field is numeric in the store).
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []any:
		if len(val) == 0 {
			return ""
		}
		return Display(val[0])
	case map[string]any:
		if title, ok := val["title"].(string); ok {
			return title
		}
		return ""
	default:
		return ""
	}
}
