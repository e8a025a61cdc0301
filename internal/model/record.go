// Package model defines the materialized record and its link structure.
package model

import (
	"sort"

	"github.com/lrhache/fhirsearch/internal/extract"
)

// Record is the in-memory form of one raw resource. It is created once
// during ingestion; after the batch load completes it is read-only and
// safe to share across concurrent readers.
type Record struct {
	// ID is the resource id, unique within its type. Immutable.
	ID string

	// Type is the resource type tag ("Patient", "Encounter", ...).
	Type string

	// Fields holds the declared attributes copied from the raw resource.
	// Undeclared raw fields are not carried.
	Fields map[string]any

	// refs holds forward links by reference slot, in the order they were
	// installed.
	refs map[string][]*Record

	// backrefs holds the inverse links: records that forward-reference
	// this one, grouped by the slot on the referencing side.
	backrefs map[string][]*Record
}

// New creates a record with empty link tables.
func New(typeName, id string, fields map[string]any) *Record {
	return &Record{
		ID:       id,
		Type:     typeName,
		Fields:   fields,
		refs:     make(map[string][]*Record),
		backrefs: make(map[string][]*Record),
	}
}

// Link installs a forward reference from r to target under slot, and the
// mirrored back-reference on target in the same step. The two sides are
// never installed separately, which is what keeps the graph symmetric.
func (r *Record) Link(slot string, target *Record) {
	r.refs[slot] = append(r.refs[slot], target)
	target.backrefs[slot] = append(target.backrefs[slot], r)
}

// Refs returns the forward-referenced records for a slot.
func (r *Record) Refs(slot string) []*Record {
	return r.refs[slot]
}

// Backrefs returns the records that reference r through slot.
func (r *Record) Backrefs(slot string) []*Record {
	return r.backrefs[slot]
}

// BackrefCount reports how many distinct records reference r through the
// named slot. Unknown slots count zero; this is never an error.
func (r *Record) BackrefCount(slot string) int {
	seen := make(map[*Record]struct{})
	for _, rec := range r.backrefs[slot] {
		seen[rec] = struct{}{}
	}
	return len(seen)
}

// RefSlots returns the forward slots that have at least one link, sorted.
func (r *Record) RefSlots() []string {
	return sortedSlots(r.refs)
}

// BackrefSlots returns the back-reference slots with at least one link,
// sorted.
func (r *Record) BackrefSlots() []string {
	return sortedSlots(r.backrefs)
}

func sortedSlots(m map[string][]*Record) []string {
	slots := make([]string, 0, len(m))
	for slot := range m {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots
}

// ExtractStrings resolves a dotted path against the record's attributes.
func (r *Record) ExtractStrings(path string) []string {
	return extract.Strings(r.Fields, path)
}
