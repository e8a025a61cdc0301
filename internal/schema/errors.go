package schema

import "errors"

// ErrSchemaConflict indicates a type was registered twice with different
// specs. This is a host misconfiguration, not bad data: callers should
// abort startup rather than continue with an ambiguous schema.
var ErrSchemaConflict = errors.New("schema conflict")
