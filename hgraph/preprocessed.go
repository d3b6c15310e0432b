package hgraph

import "sort"

// Preprocessed materializes per-vertex neighbor lists as sorted index
// vectors. Built once per ordering call and never mutated afterwards; the
// ordering engine works on its own private copy.
type Preprocessed struct {
	order  []VId         // all vertices that existed at construction time, sorted
	neighb map[VId][]VId // v -> sorted N(v), excluding v
}

// Preprocess builds a Preprocessed view of g in O(|V| + sum deg(v)).
func Preprocess(g Graph) *Preprocessed {
	vs := g.Vertices()
	p := &Preprocessed{
		order:  append([]VId(nil), vs...),
		neighb: make(map[VId][]VId, len(vs)),
	}
	for _, v := range vs {
		n := g.CopyNeighborsTo(v, nil)
		sort.Slice(n, func(i, j int) bool { return n[i] < n[j] })
		p.neighb[v] = n
	}
	return p
}

// Neighbors returns the sorted neighbor vector of v, excluding v.
func (p *Preprocessed) Neighbors(v VId) []VId {
	return p.neighb[v]
}

// Vertices returns the vertex set the preprocessing was computed over.
func (p *Preprocessed) Vertices() []VId {
	return p.order
}

// ClosedNeighbors returns {v} ∪ N(v) as a single sorted vector.
func (p *Preprocessed) ClosedNeighbors(v VId) []VId {
	n := p.neighb[v]
	out := make([]VId, 0, len(n)+1)
	inserted := false
	for _, u := range n {
		if !inserted && u > v {
			out = append(out, v)
			inserted = true
		}
		if u == v {
			continue
		}
		out = append(out, u)
	}
	if !inserted {
		out = append(out, v)
	}
	return out
}
