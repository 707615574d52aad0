// Package fieldmap embeds the default field-key mapping for the work-schedule
// table. Each deployment's table assigns its own opaque field keys, so the
// mapping is configuration; this default matches the reference deployment and
// is used when FIELD_MAP_FILE is not set.
package fieldmap

import _ "embed"

// Default contains the raw bytes of fieldmap.json, embedded at compile time.
// Embedding it means a binary always carries a parseable mapping.
//
//go:embed fieldmap.json
var Default []byte
