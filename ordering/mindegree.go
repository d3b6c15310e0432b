package ordering

import (
	"github.com/okulmus-lab/htdgo/hgraph"
)

// MinDegree is the baseline elimination-ordering heuristic: at each step,
// eliminate a uniformly-random vertex among those of minimum current degree,
// making its neighbors pairwise adjacent.
type MinDegree struct {
	ctx *Context
}

// NewMinDegree returns a MinDegree engine.
func NewMinDegree() *MinDegree { return &MinDegree{} }

func (m *MinDegree) Name() string                 { return "MinDegree" }
func (m *MinDegree) ManagementInstance() *Context { return m.ctx }

func (m *MinDegree) computeOnce(ctx *Context, g hgraph.Graph, pre *hgraph.Preprocessed) ([]hgraph.VId, int) {
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

	for len(live) > 0 {
		if ctx.Terminated() {
			order = append(order, live...)
			break
		}

		minDeg := -1
		var pool []hgraph.VId
		for _, v := range live {
			d := len(working[v])
			if minDeg < 0 || d < minDeg {
				minDeg = d
				pool = pool[:0]
			}
			if d == minDeg {
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

func removeVertex(vs []hgraph.VId, target hgraph.VId) []hgraph.VId {
	out := vs[:0]
	for _, v := range vs {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}
