package ordering

import (
	"sort"

	"github.com/okulmus-lab/htdgo/hgraph"
)

// elimState tags a vertex during one elimination step. A vertex adjacent to
// the eliminated one needs its fill refreshed directly; a vertex one hop
// further only needs a refresh because a neighbor of it gained new
// neighbors. Both tags may land on the same vertex, so they compose
// bitwise.
type elimState uint8

const (
	elimUnaffected               elimState = 0
	elimPendingFillUpdate        elimState = 1
	elimPendingSecondOrderUpdate elimState = 2
	elimEliminated               elimState = 4
)

// AdvancedMinFill is the primary elimination-ordering heuristic: it
// maintains N(v), fill(v), deg(v), and a per-vertex elimination status
// incrementally instead of recomputing fill from scratch at every step
// (contrast MinFill). Fill refreshes after an elimination are confined to
// the vertices whose neighborhood actually changed: the eliminated vertex's
// neighbors, and their neighbors in turn.
type AdvancedMinFill struct {
	ctx *Context
}

// NewAdvancedMinFill returns an AdvancedMinFill engine.
func NewAdvancedMinFill() *AdvancedMinFill { return &AdvancedMinFill{} }

func (a *AdvancedMinFill) Name() string                 { return "AdvancedMinFill" }
func (a *AdvancedMinFill) ManagementInstance() *Context { return a.ctx }

type amfState struct {
	neighb map[hgraph.VId][]hgraph.VId // sorted, excludes v
	adj    map[hgraph.VId]map[hgraph.VId]struct{}
	fill   map[hgraph.VId]int
	status map[hgraph.VId]elimState
}

func (a *AdvancedMinFill) computeOnce(ctx *Context, g hgraph.Graph, pre *hgraph.Preprocessed) ([]hgraph.VId, int) {
	a.ctx = ctx

	vertices := pre.Vertices()
	st := &amfState{
		neighb: make(map[hgraph.VId][]hgraph.VId, len(vertices)),
		adj:    make(map[hgraph.VId]map[hgraph.VId]struct{}, len(vertices)),
		fill:   make(map[hgraph.VId]int, len(vertices)),
		status: make(map[hgraph.VId]elimState, len(vertices)),
	}

	for _, v := range vertices {
		n := append([]hgraph.VId(nil), pre.Neighbors(v)...)
		st.neighb[v] = n
		set := make(map[hgraph.VId]struct{}, len(n))
		for _, u := range n {
			set[u] = struct{}{}
		}
		st.adj[v] = set
		st.status[v] = elimUnaffected
	}

	totalFill := 0
	for _, v := range vertices {
		f := st.directFill(v)
		st.fill[v] = f
		totalFill += f
	}

	live := make(map[hgraph.VId]struct{}, len(vertices))
	for _, v := range vertices {
		live[v] = struct{}{}
	}

	var pool []hgraph.VId
	bestFill, bestDegree := -1, -1
	haveBest := false

	rescan := func() {
		bestFill, bestDegree, haveBest = -1, -1, false
		pool = pool[:0]
		for v := range live {
			f := st.fill[v]
			if !haveBest || f < bestFill {
				bestFill, bestDegree, haveBest = f, len(st.neighb[v]), true
				pool = pool[:0]
			}
			if f == bestFill {
				d := len(st.neighb[v])
				if d < bestDegree {
					bestDegree = d
					pool = pool[:0]
				}
				if d == bestDegree {
					pool = append(pool, v)
				}
			}
		}
	}
	rescan()

	order := make([]hgraph.VId, 0, len(vertices))
	maxBag := 0

	for totalFill > 0 && len(live) > 0 {
		if ctx.Terminated() {
			break
		}
		if len(pool) == 0 {
			rescan()
			if len(pool) == 0 {
				break
			}
		}

		s := choose(ctx, pool)
		pool = removeVertex(pool, s)
		st.status[s] = elimEliminated

		if bag := len(st.neighb[s]) + 1; bag > maxBag {
			maxBag = bag
		}

		totalFill -= st.fill[s]
		Ns := append([]hgraph.VId(nil), st.neighb[s]...)

		if st.fill[s] == 0 {
			// Simplicial: neighbors of s stay pairwise adjacent, they only
			// lose s. Dropping s removes, from each neighbor u's fill, the
			// non-edges {s,w} with w a neighbor of u outside N(s); s must be
			// out of every neighbor list before the counts are taken.
			for _, u := range Ns {
				st.removeNeighbor(u, s)
			}
			for _, u := range Ns {
				reduction := setDiffSize(st.neighb[u], Ns)
				totalFill -= reduction
				st.fill[u] -= reduction
			}
		} else {
			var pending []hgraph.VId
			for _, u := range Ns {
				additional := setDiff(Ns, append(append([]hgraph.VId(nil), st.neighb[u]...), u))
				st.mergeNeighbors(u, additional)
				st.removeNeighbor(u, s)

				if st.status[u] == elimUnaffected {
					pending = append(pending, u)
				}
				st.status[u] |= elimPendingFillUpdate

				for _, w := range st.neighb[u] {
					if st.status[w] == elimUnaffected {
						pending = append(pending, w)
					}
					st.status[w] |= elimPendingSecondOrderUpdate
				}
			}
			for _, w := range pending {
				if w == s {
					continue
				}
				old := st.fill[w]
				nw := st.directFill(w)
				st.fill[w] = nw
				totalFill += nw - old
				st.status[w] = elimUnaffected
			}
		}

		delete(live, s)
		for _, u := range Ns {
			delete(st.adj[s], u)
		}
		order = append(order, s)

		// Vertices whose fill just changed may invalidate the current
		// (minFill, minDegree, pool) triple; rescan to re-settle it. The
		// expensive part -- recomputing fill -- was already confined above
		// to the touched vertex set, not every live vertex.
		rescan()
	}

	// totalFill == 0 means the remaining graph is a disjoint union of
	// cliques; any completion order works. The remainder still contributes
	// to the required bag size (the first vertex of a remaining k-clique
	// carries a bag of k), so walk it in a fixed order and count each
	// vertex's not-yet-appended neighbors. The fixed order also keeps the
	// ordering a pure function of the seed after a cancelled run.
	remainder := make([]hgraph.VId, 0, len(live))
	for v := range live {
		remainder = append(remainder, v)
	}
	sort.Slice(remainder, func(i, j int) bool { return remainder[i] < remainder[j] })

	appended := make(map[hgraph.VId]struct{}, len(remainder))
	for _, v := range remainder {
		later := 0
		for _, u := range st.neighb[v] {
			if _, done := appended[u]; !done {
				later++
			}
		}
		if bag := later + 1; bag > maxBag {
			maxBag = bag
		}
		appended[v] = struct{}{}
		order = append(order, v)
	}

	return order, maxBag
}

func (st *amfState) directFill(v hgraph.VId) int {
	n := st.neighb[v]
	fill := 0
	for i := 0; i < len(n); i++ {
		for j := i + 1; j < len(n); j++ {
			if _, ok := st.adj[n[i]][n[j]]; !ok {
				fill++
			}
		}
	}
	return fill
}

func (st *amfState) removeNeighbor(v, u hgraph.VId) {
	delete(st.adj[v], u)
	n := st.neighb[v]
	idx := sort.Search(len(n), func(i int) bool { return n[i] >= u })
	if idx < len(n) && n[idx] == u {
		st.neighb[v] = append(n[:idx], n[idx+1:]...)
	}
}

// mergeNeighbors inserts additional (sorted, disjoint from neighb[v] and v
// itself) into v's neighborhood, preserving sort order.
func (st *amfState) mergeNeighbors(v hgraph.VId, additional []hgraph.VId) {
	if len(additional) == 0 {
		return
	}
	for _, u := range additional {
		st.adj[v][u] = struct{}{}
		if st.adj[u] == nil {
			st.adj[u] = make(map[hgraph.VId]struct{})
		}
		st.adj[u][v] = struct{}{}
	}
	merged := make([]hgraph.VId, 0, len(st.neighb[v])+len(additional))
	i, j := 0, 0
	cur := st.neighb[v]
	for i < len(cur) && j < len(additional) {
		if cur[i] < additional[j] {
			merged = append(merged, cur[i])
			i++
		} else {
			merged = append(merged, additional[j])
			j++
		}
	}
	merged = append(merged, cur[i:]...)
	merged = append(merged, additional[j:]...)
	st.neighb[v] = merged
}

// setDiff returns the elements of a (sorted) not present in b (sorted).
func setDiff(a, b []hgraph.VId) []hgraph.VId {
	bs := make(map[hgraph.VId]struct{}, len(b))
	for _, v := range b {
		bs[v] = struct{}{}
	}
	var out []hgraph.VId
	for _, v := range a {
		if _, ok := bs[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

func setDiffSize(a, b []hgraph.VId) int {
	return len(setDiff(a, b))
}
