package registry

import "errors"

// Per-record materialization failures. During a batch load these are
// collected on the LoadReport and the offending resource is skipped; one
// bad resource never aborts the batch.
var (
	// ErrMissingType indicates a raw resource without a resourceType tag.
	ErrMissingType = errors.New("resource has no resourceType")

	// ErrUnknownType indicates a resourceType with no registered spec.
	ErrUnknownType = errors.New("no spec registered for resource type")

	// ErrMissingID indicates a raw resource without an id.
	ErrMissingID = errors.New("resource has no id")

	// ErrDuplicate indicates a second resource with an id already
	// materialized for the same type. The first record wins.
	ErrDuplicate = errors.New("duplicate record")
)
