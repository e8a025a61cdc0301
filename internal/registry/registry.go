// Package registry materializes raw resources into records and stores
// them keyed by (type, id). It is populated during a single ingestion
// pass and treated as read-only afterwards; concurrent readers are safe
// once loading is done, re-ingestion into a live registry is not.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lrhache/fhirsearch/internal/model"
	"github.com/lrhache/fhirsearch/internal/schema"
)

// Registry is the single source of truth for materialized records.
type Registry struct {
	schema  *schema.Registry
	records map[string]map[string]*model.Record // type → lowercased id → record
	pending []pendingRef

	// malformed collects reference objects that could not be parsed, for
	// the load report.
	malformed []MalformedRef
}

// New creates an empty record registry over the given type schema.
func New(s *schema.Registry) *Registry {
	return &Registry{
		schema:  s,
		records: make(map[string]map[string]*model.Record),
	}
}

// Schema returns the type schema this registry was built with.
func (r *Registry) Schema() *schema.Registry {
	return r.schema
}

// Materialize turns one raw resource into a record. Only declared
// attributes are copied; unknown raw fields are dropped. Declared
// references whose target already exists are linked immediately, the
// rest are queued for ResolvePending.
func (r *Registry) Materialize(raw map[string]any) (*model.Record, error) {
	typeName, _ := raw["resourceType"].(string)
	if typeName == "" {
		return nil, ErrMissingType
	}

	spec, ok := r.schema.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typeName)
	}

	id := rawID(raw["id"])
	if id == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingID, typeName)
	}

	key := strings.ToLower(id)
	if existing := r.records[typeName][key]; existing != nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrDuplicate, typeName, id)
	}

	fields := make(map[string]any, len(spec.Attributes))
	for _, attr := range spec.Attributes {
		if v, ok := raw[attr]; ok {
			fields[attr] = v
		}
	}

	rec := model.New(typeName, id, fields)
	if r.records[typeName] == nil {
		r.records[typeName] = make(map[string]*model.Record)
	}
	r.records[typeName][key] = rec

	r.collectRefs(rec, raw, spec)
	return rec, nil
}

// Get returns the record for (type, id), or nil. The id comparison is
// case-insensitive, matching how ids are keyed at materialization.
func (r *Registry) Get(typeName, id string) *model.Record {
	return r.records[typeName][strings.ToLower(id)]
}

// RecordsOf returns all records of a type, ordered by id. The ordering
// makes downstream consumers (index build, reports) deterministic.
func (r *Registry) RecordsOf(typeName string) []*model.Record {
	byID := r.records[typeName]
	recs := make([]*model.Record, 0, len(byID))
	for _, rec := range byID {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })
	return recs
}

// Len reports the number of materialized records across all types.
func (r *Registry) Len() int {
	n := 0
	for _, byID := range r.records {
		n += len(byID)
	}
	return n
}

// rawID renders the raw id field as a string. Ids are usually strings
// but numeric ids appear in loose data.
func rawID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		if id == float64(int64(id)) {
			return fmt.Sprintf("%d", int64(id))
		}
		return fmt.Sprintf("%g", id)
	case int:
		return fmt.Sprintf("%d", id)
	default:
		return ""
	}
}
