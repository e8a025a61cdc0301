package model

import "sort"

// Connection is one row of a record's connection summary.
type Connection struct {
	Type  string
	Count int
}

// Connections reports how many distinct records of each type are
// connected to r: its direct forward references, its direct
// back-references, and everything reachable from those through further
// forward references. The record itself is excluded. Rows are ordered by
// count descending, then type name ascending, so the summary is stable
// for a given graph.
func (r *Record) Connections() []Connection {
	visited := map[*Record]struct{}{r: {}}
	counts := make(map[string]int)

	stack := neighbors(r)
	for len(stack) > 0 {
		rec := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[rec]; ok {
			continue
		}
		visited[rec] = struct{}{}
		counts[rec.Type]++

		// Only forward references propagate beyond the first hop.
		for _, slot := range rec.RefSlots() {
			stack = append(stack, rec.refs[slot]...)
		}
	}

	rows := make([]Connection, 0, len(counts))
	for typeName, count := range counts {
		rows = append(rows, Connection{Type: typeName, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Type < rows[j].Type
	})
	return rows
}

func neighbors(r *Record) []*Record {
	var out []*Record
	for _, slot := range r.RefSlots() {
		out = append(out, r.refs[slot]...)
	}
	for _, slot := range r.BackrefSlots() {
		out = append(out, r.backrefs[slot]...)
	}
	return out
}
