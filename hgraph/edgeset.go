package hgraph

import "sort"

// EdgeSet is an ordered, immutable-from-the-outside collection of
// hyperedges: a snapshot of edges that can be narrowed to those fitting
// inside a bag without touching the original.
type EdgeSet struct {
	edges []Hyperedge
}

// NewEdgeSet builds an EdgeSet from a slice of hyperedges, taking ownership
// of neither the slice nor its elements (it copies defensively).
func NewEdgeSet(edges []Hyperedge) EdgeSet {
	out := make([]Hyperedge, len(edges))
	for i, e := range edges {
		out[i] = e.Clone()
	}
	return EdgeSet{edges: out}
}

// Len returns the number of hyperedges in the set.
func (es EdgeSet) Len() int { return len(es.edges) }

// Slice returns the hyperedges in insertion order. The returned slice shares
// no backing array with the receiver's internal storage.
func (es EdgeSet) Slice() []Hyperedge {
	out := make([]Hyperedge, len(es.edges))
	copy(out, es.edges)
	return out
}

// Contains reports whether id appears in the set.
func (es EdgeSet) Contains(id EId) bool {
	for _, e := range es.edges {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Vertices returns the deduplicated, sorted union of all endpoints across
// the set.
func (es EdgeSet) Vertices() []VId {
	seen := make(map[VId]struct{})
	for _, e := range es.edges {
		for _, v := range e.Vertices {
			seen[v] = struct{}{}
		}
	}
	out := make([]VId, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sortVIds(out)
	return out
}

// RestrictTo returns the sub-collection of hyperedges whose endpoints all
// lie in bag (a sorted ascending vertex list). Composing restrictions is
// just re-filtering the already-materialized snapshot, since EdgeSet never
// mutates in place.
func (es EdgeSet) RestrictTo(bag []VId) EdgeSet {
	var out []Hyperedge
	for _, e := range es.edges {
		if e.subsetOf(bag) {
			out = append(out, e)
		}
	}
	return NewEdgeSet(out)
}

// Append returns a new EdgeSet with the given hyperedges appended.
func (es EdgeSet) Append(edges ...Hyperedge) EdgeSet {
	return NewEdgeSet(append(es.Slice(), edges...))
}

func sortVIds(v []VId) {
	sort.Slice(v, func(i, j int) bool { return v[i] < v[j] })
}
