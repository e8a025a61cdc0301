// Package search answers free-text queries against the inverted index,
// ranking candidates and falling back to suggestions when a query is
// ambiguous.
package search

import (
	"sort"
	"strings"

	"github.com/lrhache/fhirsearch/internal/index"
	"github.com/lrhache/fhirsearch/internal/model"
	"github.com/lrhache/fhirsearch/internal/registry"
)

// Weights for how a query token hits an index token. An exact token
// match outranks a substring match.
const (
	exactWeight     = 2
	substringWeight = 1
)

// DefaultLimit caps the suggestion list when the caller does not set one.
const DefaultLimit = 9

// Candidate is one ranked suggestion.
type Candidate struct {
	Record *model.Record
	Score  int
}

// Outcome is the result of a query: exactly one of Match set, Suggestions
// non-empty, or neither (no match).
type Outcome struct {
	Match       *model.Record
	Suggestions []Candidate
}

// NoMatch reports whether the query matched nothing.
func (o Outcome) NoMatch() bool {
	return o.Match == nil && len(o.Suggestions) == 0
}

// Engine evaluates queries for a loaded registry and its index. The
// engine never mutates either; it is safe for concurrent use once
// ingestion and index build are done.
type Engine struct {
	reg   *registry.Registry
	ix    *index.Index
	limit int
}

// NewEngine creates a query engine. limit caps the suggestion list;
// zero or negative means DefaultLimit.
func NewEngine(reg *registry.Registry, ix *index.Index, limit int) *Engine {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Engine{reg: reg, ix: ix, limit: limit}
}

// Search evaluates a free-text query against one resource type.
//
// A query that is a full record id resolves directly. Otherwise the
// query is normalized the same way index tokens were, and each query
// token collects candidates by exact or substring token match. A record
// scores once per distinct query token it satisfies, weighted by its
// best hit; records matching more of the query rank higher. Ties are
// broken by id so results are deterministic.
func (e *Engine) Search(typeName, query string) Outcome {
	if rec := e.reg.Get(typeName, strings.TrimSpace(query)); rec != nil {
		return Outcome{Match: rec}
	}

	queryTokens := distinct(index.Tokenize(query))
	if len(queryTokens) == 0 {
		return Outcome{}
	}

	indexTokens := e.ix.TokensOf(typeName)
	scores := make(map[string]int)

	for _, qt := range queryTokens {
		best := make(map[string]int)
		for _, tok := range indexTokens {
			var weight int
			switch {
			case tok == qt:
				weight = exactWeight
			case strings.Contains(tok, qt):
				weight = substringWeight
			default:
				continue
			}
			for _, id := range e.ix.IDs(typeName, tok) {
				if weight > best[id] {
					best[id] = weight
				}
			}
		}
		for id, w := range best {
			scores[id] += w
		}
	}

	return e.rank(typeName, scores)
}

func (e *Engine) rank(typeName string, scores map[string]int) Outcome {
	candidates := make([]Candidate, 0, len(scores))
	for id, score := range scores {
		rec := e.reg.Get(typeName, id)
		if rec == nil {
			continue
		}
		candidates = append(candidates, Candidate{Record: rec, Score: score})
	}

	switch len(candidates) {
	case 0:
		return Outcome{}
	case 1:
		return Outcome{Match: candidates[0].Record}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Record.ID < candidates[j].Record.ID
	})

	if len(candidates) > e.limit {
		candidates = candidates[:e.limit]
	}
	return Outcome{Suggestions: candidates}
}

func distinct(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	var out []string
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
