package ordering

import "github.com/okulmus-lab/htdgo/hgraph"

// MinFill is the straightforward (non-incremental) min-fill heuristic: at
// each step, eliminate a uniformly-random vertex among those whose
// elimination would add the fewest fill edges, recomputing fill from
// scratch every step. AdvancedMinFill (minfill_advanced.go) is the
// incremental version of the same heuristic; this variant is the plain
// baseline.
type MinFill struct {
	ctx *Context
}

// NewMinFill returns a MinFill engine.
func NewMinFill() *MinFill { return &MinFill{} }

func (m *MinFill) Name() string                 { return "MinFill" }
func (m *MinFill) ManagementInstance() *Context { return m.ctx }

func (m *MinFill) computeOnce(ctx *Context, g hgraph.Graph, pre *hgraph.Preprocessed) ([]hgraph.VId, int) {
	m.ctx = ctx

	working := make(map[hgraph.VId]map[hgraph.VId]struct{}, len(pre.Vertices()))
	for _, v := range pre.Vertices() {
		set := make(map[hgraph.VId]struct{})
		for _, u := range pre.Neighbors(v) {
			set[u] = struct{}{}
		}
		working[v] = set
	}

	live := append([]hgraph.VId(nil), pre.Vertices()...)
	order := make([]hgraph.VId, 0, len(live))
	maxBag := 0

	fillOf := func(v hgraph.VId) int {
		n := working[v]
		vs := make([]hgraph.VId, 0, len(n))
		for u := range n {
			vs = append(vs, u)
		}
		fill := 0
		for i := 0; i < len(vs); i++ {
			for j := i + 1; j < len(vs); j++ {
				if _, adj := working[vs[i]][vs[j]]; !adj {
					fill++
				}
			}
		}
		return fill
	}

	for len(live) > 0 {
		if ctx.Terminated() {
			order = append(order, live...)
			break
		}

		minFill := -1
		var pool []hgraph.VId
		for _, v := range live {
			f := fillOf(v)
			if minFill < 0 || f < minFill {
				minFill = f
				pool = pool[:0]
			}
			if f == minFill {
				pool = append(pool, v)
			}
		}

		s := choose(ctx, pool)

		if bag := len(working[s]) + 1; bag > maxBag {
			maxBag = bag
		}

		neighbors := make([]hgraph.VId, 0, len(working[s]))
		for u := range working[s] {
			neighbors = append(neighbors, u)
		}
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				working[neighbors[i]][neighbors[j]] = struct{}{}
				working[neighbors[j]][neighbors[i]] = struct{}{}
			}
		}
		for _, u := range neighbors {
			delete(working[u], s)
		}
		delete(working, s)

		order = append(order, s)
		live = removeVertex(live, s)
	}

	return order, maxBag
}
