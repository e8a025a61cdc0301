package registry

// Problem is one per-resource failure recorded during a batch load.
type Problem struct {
	Type string
	ID   string
	Err  error
}

// LoadReport summarizes a batch load. Per-resource failures and
// unresolved references are collected here instead of aborting the
// batch, so partial data stays queryable.
type LoadReport struct {
	Loaded    int
	Skipped   []Problem
	Dangling  []DanglingRef
	Malformed []MalformedRef
}

// LoadBatch materializes every raw resource in the batch, then runs the
// deferred-resolution pass. The batch may arrive in any order; a
// resource referencing a not-yet-seen id resolves once that id shows up
// later in the same batch.
func (r *Registry) LoadBatch(resources []map[string]any) *LoadReport {
	report := &LoadReport{}

	for _, raw := range resources {
		_, err := r.Materialize(raw)
		if err != nil {
			typeName, _ := raw["resourceType"].(string)
			report.Skipped = append(report.Skipped, Problem{
				Type: typeName,
				ID:   rawID(raw["id"]),
				Err:  err,
			})
			continue
		}
		report.Loaded++
	}

	report.Dangling = r.ResolvePending()
	report.Malformed = r.malformed
	r.malformed = nil
	return report
}
