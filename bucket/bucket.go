// Package bucket implements the bucket-elimination constructor: it turns an
// elimination ordering into a rooted tree decomposition, computes induced
// hyperedges per bag on request, and optionally compresses subset-redundant
// bags.
package bucket

import (
	"sort"

	"github.com/okulmus-lab/htdgo/decomp"
	"github.com/okulmus-lab/htdgo/hgraph"
	"github.com/okulmus-lab/htdgo/ordering"
)

// Options configures a single Build call.
type Options struct {
	ComputeInducedEdges bool
	Compression         bool
}

// Build runs bucket elimination over g along order and returns the resulting
// decomposition together with the maximum bag size realized (before
// compression or any manipulation pipeline runs). ctx may be nil, in which
// case the build always runs to completion; if non-nil, cancellation is
// checked between nodes while the tree is assembled, and a canceled build
// returns the partial decomposition built so far -- never a partially
// mutated node.
func Build(ctx *ordering.Context, g hgraph.Graph, order []hgraph.VId, opts Options) (*decomp.Decomposition, int) {
	if len(order) == 0 {
		return decomp.New(), 0
	}

	rank := make(map[hgraph.VId]int, len(order))
	for i, v := range order {
		rank[v] = i
	}

	// Each bucket starts as {v}; every hyperedge deposits its endpoint set
	// into the bucket of its earliest-eliminated endpoint. From then on a
	// bucket only ever contains its own vertex plus vertices eliminated
	// later, so the eventual bag never drags along already-eliminated
	// vertices.
	buckets := make(map[hgraph.VId]map[hgraph.VId]struct{}, len(order))
	for _, v := range order {
		buckets[v] = map[hgraph.VId]struct{}{v: {}}
	}
	for _, e := range g.Hyperedges().Slice() {
		var min hgraph.VId
		have := false
		for _, v := range e.Vertices {
			if !have || rank[v] < rank[min] {
				min = v
				have = true
			}
		}
		if !have {
			continue
		}
		for _, v := range e.Vertices {
			buckets[min][v] = struct{}{}
		}
	}

	parent := make(map[hgraph.VId]hgraph.VId, len(order))
	maxBag := 0

	for _, v := range order {
		if bag := len(buckets[v]); bag > maxBag {
			maxBag = bag
		}

		// R = bucket(v) \ {v} holds only vertices eliminated after v; the
		// earliest of them under the ordering receives the merge and becomes
		// v's tree parent. A bucket left at {v} produces a singleton bag
		// with no parent: v roots its connected component.
		var u hgraph.VId
		haveParent := false
		for w := range buckets[v] {
			if w == v {
				continue
			}
			if !haveParent || rank[w] < rank[u] {
				u = w
				haveParent = true
			}
		}
		if !haveParent {
			continue
		}
		parent[v] = u
		for w := range buckets[v] {
			if w != v {
				buckets[u][w] = struct{}{}
			}
		}
	}

	d := decomp.New()

	bagOf := func(v hgraph.VId) []hgraph.VId {
		bag := make([]hgraph.VId, 0, len(buckets[v]))
		for u := range buckets[v] {
			bag = append(bag, u)
		}
		sort.Slice(bag, func(i, j int) bool { return bag[i] < bag[j] })
		return bag
	}

	var componentRoots []hgraph.VId
	childrenOf := make(map[hgraph.VId][]hgraph.VId, len(order))
	for _, v := range order {
		if u, hasParent := parent[v]; hasParent {
			childrenOf[u] = append(childrenOf[u], v)
		} else {
			componentRoots = append(componentRoots, v)
		}
	}

	b := &builder{d: d, bagOf: bagOf, childrenOf: childrenOf, ctx: ctx}

	if len(componentRoots) == 1 {
		// Single component: reuse the decomposition's pre-existing empty-bag
		// root for the bucket tree's own root, so Build never returns more
		// nodes than the ordering has vertices for the common case.
		b.buildSubtree(d.Root(), componentRoots[0])
	} else {
		// Disconnected graph: one bucket tree per component, all attached
		// under the empty-bag root decomp.New() already provides.
		for _, r := range componentRoots {
			if b.canceled() {
				break
			}
			child, err := d.AddChild(d.Root(), bagOf(r))
			if err != nil {
				panic(err) // unreachable: root always exists on a fresh Decomposition
			}
			b.attachChildrenOf(child, r)
		}
	}

	if opts.ComputeInducedEdges {
		computeInducedEdges(d, g.Hyperedges())
	}

	if opts.Compression {
		compress(d)
	}

	return d, maxBag
}

// builder holds the read-only state threaded through the recursive
// tree-assembly walk, so cancellation can be checked once per node without
// passing six parameters at every call site.
type builder struct {
	d          *decomp.Decomposition
	bagOf      func(hgraph.VId) []hgraph.VId
	childrenOf map[hgraph.VId][]hgraph.VId
	ctx        *ordering.Context
}

func (b *builder) canceled() bool {
	return b.ctx != nil && b.ctx.Terminated()
}

// buildSubtree makes vertexRoot's node reuse the decomposition's existing
// node rootID (giving it vertexRoot's bag), then attaches the rest of
// vertexRoot's bucket-tree children below it.
func (b *builder) buildSubtree(rootID decomp.NodeID, vertexRoot hgraph.VId) {
	if err := b.d.MutableBagContent(rootID, b.bagOf(vertexRoot)); err != nil {
		panic(err)
	}
	b.attachChildrenOf(rootID, vertexRoot)
}

// attachChildrenOf recursively attaches every vertex whose bucket-tree
// parent is vertexNode, below the decomposition node nodeID. A canceled walk
// stops before adding the next child, leaving every node added so far fully
// formed.
func (b *builder) attachChildrenOf(nodeID decomp.NodeID, vertexNode hgraph.VId) {
	for _, v := range b.childrenOf[vertexNode] {
		if b.canceled() {
			return
		}
		child, err := b.d.AddChild(nodeID, b.bagOf(v))
		if err != nil {
			panic(err)
		}
		b.attachChildrenOf(child, v)
	}
}

func computeInducedEdges(d *decomp.Decomposition, all hgraph.EdgeSet) {
	for _, n := range d.Preorder() {
		bag, err := d.Bag(n)
		if err != nil {
			panic(err)
		}
		restricted := all.RestrictTo(bag)
		if err := d.MutableInducedHyperedges(n, restricted); err != nil {
			panic(err)
		}
	}
}

// compress removes subset-redundant bags until none remain: a node whose
// bag is a subset of its parent's is spliced out directly, and a node whose
// bag is a superset of its parent's first swaps content with the parent and
// is then spliced out, so the shrink-toward-root chains bucket elimination
// naturally produces collapse too.
func compress(d *decomp.Decomposition) {
	for {
		changed := false
		for _, n := range d.Preorder() {
			parent, err := d.Parent(n)
			if err != nil {
				continue // root
			}
			bag, _ := d.Bag(n)
			pbag, _ := d.Bag(parent)

			switch {
			case isSubset(bag, pbag):
				if err := d.RemoveVertex(n); err == nil {
					changed = true
				}
			case isSubset(pbag, bag):
				if err := d.SwapWithParent(n); err != nil {
					continue
				}
				if err := d.RemoveVertex(n); err == nil {
					changed = true
				}
			}
			if changed {
				break // Preorder() is now stale; restart the scan.
			}
		}
		if !changed {
			return
		}
	}
}

func isSubset(a, b []hgraph.VId) bool {
	bs := make(map[hgraph.VId]struct{}, len(b))
	for _, v := range b {
		bs[v] = struct{}{}
	}
	for _, v := range a {
		if _, ok := bs[v]; !ok {
			return false
		}
	}
	return true
}
