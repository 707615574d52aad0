// Package domain contains the core data types for the schedule board application.
// This package has zero dependencies on the HTTP or store layers and is imported
// by every other internal package (teable, repo, service, handler).
package domain

import "regexp"

// Record is one row in a table of the hosted table-database.
// Fields maps opaque store field keys (e.g. "fldT720jVmGMXFURUKL") to values.
// Value types follow JSON decoding: string, float64, bool, []any, map[string]any.
// The meaning of each key is resolved through a FieldMap, never hard-coded.
type Record struct {
	ID               string         `json:"id"`
	Fields           map[string]any `json:"fields"`
	CreatedTime      string         `json:"createdTime,omitempty"`
	LastModifiedTime string         `json:"lastModifiedTime,omitempty"`
}

// Field returns the raw value stored under key, or nil when the key is
// absent or the record carries no fields at all.
func (r Record) Field(key string) any {
	if r.Fields == nil {
		return nil
	}
	return r.Fields[key]
}

// recordIDPattern matches the store's record identifiers: "rec" followed by
// one or more alphanumerics. Anything else is rejected before it can reach
// an upstream URL path.
var recordIDPattern = regexp.MustCompile(`^rec[A-Za-z0-9]+$`)

// ValidRecordID reports whether id is a well-formed store record identifier.
func ValidRecordID(id string) bool {
	return recordIDPattern.MatchString(id)
}
