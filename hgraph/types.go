// Package hgraph defines the input data model of the decomposition engine:
// vertex and edge identifiers, multi-hypergraphs, their preprocessed form,
// and the filtered-hyperedge-collection view used to restrict edges to a bag.
package hgraph

import (
	"errors"
	"sort"
)

// VId is a dense positive vertex identifier. 0 is reserved as unknown/null.
type VId uint32

// EId is a dense positive hyperedge identifier. 0 is reserved as unknown/null.
type EId uint32

// Sentinel errors for pre-condition violations; callers hitting one of
// these have a programming bug, and the offending call returns without
// mutation.
var (
	ErrNilGraph      = errors.New("hgraph: nil graph")
	ErrUnknownVertex = errors.New("hgraph: vertex does not exist")
	ErrUnknownEdge   = errors.New("hgraph: edge does not exist")
)

// Hyperedge is a pair of an id and an ordered sequence of endpoints.
// Endpoint order is preserved as supplied; duplicates and self-multiplicity
// are permitted.
type Hyperedge struct {
	ID       EId
	Vertices []VId
}

// Clone returns a deep copy of the hyperedge.
func (e Hyperedge) Clone() Hyperedge {
	v := make([]VId, len(e.Vertices))
	copy(v, e.Vertices)
	return Hyperedge{ID: e.ID, Vertices: v}
}

// endpointSet returns the deduplicated endpoint set of the hyperedge, sorted
// ascending. A hyperedge with repeated endpoints behaves as its underlying
// set.
func (e Hyperedge) endpointSet() []VId {
	set := make(map[VId]struct{}, len(e.Vertices))
	for _, v := range e.Vertices {
		set[v] = struct{}{}
	}
	out := make([]VId, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// subsetOf reports whether every distinct endpoint of e lies in bag. bag must
// be sorted ascending.
func (e Hyperedge) subsetOf(bag []VId) bool {
	for _, v := range e.endpointSet() {
		if !memSorted(bag, v) {
			return false
		}
	}
	return true
}

// IsSubsetOf reports whether every distinct endpoint of e lies in bag,
// which need not be sorted. This is the public form of subsetOf, used by
// callers outside this package to test edge coverage and the induced-edge
// restriction.
func (e Hyperedge) IsSubsetOf(bag []VId) bool {
	sorted := append([]VId(nil), bag...)
	sortVIds(sorted)
	return e.subsetOf(sorted)
}

func memSorted(sorted []VId, v VId) bool {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= v })
	return i < len(sorted) && sorted[i] == v
}
