// Package index builds the per-type inverted index over the dotted paths
// each type spec declares indexable. The index is built once the full
// record set exists and is read-only afterwards; a change to the record
// set means a total rebuild, never an in-place patch.
package index

import (
	"sort"

	"github.com/lrhache/fhirsearch/internal/registry"
)

// Index maps, per resource type, normalized token → set of record ids.
type Index struct {
	byType map[string]map[string]map[string]struct{}
}

// Build constructs the index for every registered type. For each record,
// the record id plus the values of each declared index path are
// normalized and each resulting token keys the record's id. Given the
// same record set, Build produces an identical index.
func Build(reg *registry.Registry) *Index {
	ix := &Index{byType: make(map[string]map[string]map[string]struct{})}

	for _, typeName := range reg.Schema().Types() {
		spec, _ := reg.Schema().Lookup(typeName)

		tokens := make(map[string]map[string]struct{})
		for _, rec := range reg.RecordsOf(typeName) {
			add := func(value string) {
				for _, tok := range Tokenize(value) {
					if tokens[tok] == nil {
						tokens[tok] = make(map[string]struct{})
					}
					tokens[tok][rec.ID] = struct{}{}
				}
			}

			// The id is always searchable, listed or not.
			add(rec.ID)
			for _, path := range spec.Index {
				for _, value := range rec.ExtractStrings(path) {
					add(value)
				}
			}
		}
		ix.byType[typeName] = tokens
	}

	return ix
}

// TokensOf returns the index tokens for a type, sorted.
func (ix *Index) TokensOf(typeName string) []string {
	entries := ix.byType[typeName]
	tokens := make([]string, 0, len(entries))
	for tok := range entries {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	return tokens
}

// IDs returns the record ids indexed under an exact token, sorted.
func (ix *Index) IDs(typeName, token string) []string {
	set := ix.byType[typeName][token]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
