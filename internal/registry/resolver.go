package registry

import (
	"strings"

	"github.com/lrhache/fhirsearch/internal/extract"
	"github.com/lrhache/fhirsearch/internal/model"
	"github.com/lrhache/fhirsearch/internal/schema"
)

// pendingRef is a declared reference whose target had not been
// materialized when the source record was. Input batches make no
// ordering guarantee, so late targets are the normal case, not an error.
type pendingRef struct {
	source     *model.Record
	slot       string
	targetType string
	targetID   string
}

// DanglingRef describes a reference whose target never appeared in the
// batch. It is reported as a warning: the forward link stays absent and
// the rest of the graph remains queryable.
type DanglingRef struct {
	SourceType string
	SourceID   string
	Slot       string
	TargetType string
	TargetID   string
}

// MalformedRef describes a reference object that could not be parsed
// (no "reference" key, or a value that is not "Type/id").
type MalformedRef struct {
	SourceType string
	SourceID   string
	Slot       string
}

// collectRefs walks the declared reference paths of a new record. Raw
// values are read from the raw resource rather than the copied
// attributes, since reference paths need not be declared attributes.
// Targets already in the registry are linked on the spot; the rest are
// queued for ResolvePending.
func (r *Registry) collectRefs(rec *model.Record, raw map[string]any, spec schema.TypeSpec) {
	for _, path := range spec.References {
		for _, v := range extract.Values(raw, path) {
			obj, ok := v.(map[string]any)
			if !ok {
				continue
			}
			refStr, _ := obj["reference"].(string)
			targetType, targetID, ok := splitReference(refStr)
			if !ok {
				r.malformed = append(r.malformed, MalformedRef{
					SourceType: rec.Type,
					SourceID:   rec.ID,
					Slot:       path,
				})
				continue
			}

			if target := r.Get(targetType, targetID); target != nil {
				rec.Link(path, target)
				continue
			}
			r.pending = append(r.pending, pendingRef{
				source:     rec,
				slot:       path,
				targetType: targetType,
				targetID:   targetID,
			})
		}
	}
}

// ResolvePending runs the second resolution pass, linking every queued
// reference whose target arrived after its source. Entries whose target
// never appeared are returned as dangling warnings. The pending list is
// consumed; calling ResolvePending twice returns nothing the second time.
func (r *Registry) ResolvePending() []DanglingRef {
	var dangling []DanglingRef
	for _, p := range r.pending {
		target := r.Get(p.targetType, p.targetID)
		if target == nil {
			dangling = append(dangling, DanglingRef{
				SourceType: p.source.Type,
				SourceID:   p.source.ID,
				Slot:       p.slot,
				TargetType: p.targetType,
				TargetID:   p.targetID,
			})
			continue
		}
		p.source.Link(p.slot, target)
	}
	r.pending = nil
	return dangling
}

// splitReference parses a FHIR relative reference "Type/id".
func splitReference(ref string) (typeName, id string, ok bool) {
	typeName, id, found := strings.Cut(ref, "/")
	if !found || typeName == "" || id == "" {
		return "", "", false
	}
	return typeName, id, true
}
