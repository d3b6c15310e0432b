package ordering

import "github.com/okulmus-lab/htdgo/hgraph"

// Result holds an elimination ordering: the vertex permutation, the required
// bag size upper bound produced alongside it, and the number of retry
// iterations actually used to reach it.
type Result struct {
	Order           []hgraph.VId
	RequiredBagSize int
	IterationsUsed  int
}

// Options configures a single Compute call. MaxBagSize <= 0 means "no width
// hint"; the engine then runs exactly one iteration.
type Options struct {
	MaxBagSize        int
	MaxIterationCount int
}

// Algorithm is the contract shared by the ordering engines. An engine run
// under a width hint signals "no ordering satisfying the hint was found" by
// returning an ordering whose RequiredBagSize exceeds the hint.
type Algorithm interface {
	// Name identifies the algorithm.
	Name() string

	// computeOnce produces exactly one ordering, without any retry
	// bookkeeping; Compute layers the width-hint retry loop on top.
	computeOnce(ctx *Context, g hgraph.Graph, pre *hgraph.Preprocessed) ([]hgraph.VId, int)

	// ManagementInstance returns the Context the algorithm was last run
	// with.
	ManagementInstance() *Context
}

// Compute runs alg against g, retrying with a fresh tie-break draw until
// either the required bag size fits opts.MaxBagSize or the iteration budget
// is exhausted; on exhaustion it returns the best ordering seen so far.
func Compute(ctx *Context, alg Algorithm, g hgraph.Graph, opts Options) Result {
	pre := hgraph.Preprocess(g)

	limit := opts.MaxIterationCount
	if limit <= 0 {
		limit = 1
	}

	var best Result
	haveBest := false
	used := 0

	// The first iteration always runs, even under cancellation: a cancelled
	// engine still returns a complete (if arbitrary-tailed) permutation, so
	// callers are never left without an ordering. Only retries are skipped.
	for iter := 0; iter < limit; iter++ {
		order, required := alg.computeOnce(ctx, g, pre)
		used = iter + 1
		cur := Result{Order: order, RequiredBagSize: required, IterationsUsed: used}

		if !haveBest || cur.RequiredBagSize < best.RequiredBagSize {
			best = cur
			haveBest = true
		}

		if opts.MaxBagSize <= 0 || cur.RequiredBagSize <= opts.MaxBagSize {
			return cur
		}
		if ctx.Terminated() {
			break
		}
	}

	best.IterationsUsed = used
	return best
}

// RequiredBagSize computes the maximum, over elimination steps i, of
// 1 + |{u in N_i(v_i) : u eliminated after v_i}| for an ordering over g:
// the bag size the bucket-elimination builder will need to realize this
// exact ordering. Exposed so callers (and this package's own tests) can
// cross-check an engine's self-reported RequiredBagSize against an
// independent recomputation, useful in particular after a cancelled run,
// where the engine appends its uneliminated remainder without further
// heuristic work and the self-reported bag size is only best-effort.
func RequiredBagSize(g hgraph.Graph, order []hgraph.VId) int {
	rank := make(map[hgraph.VId]int, len(order))
	for i, v := range order {
		rank[v] = i
	}

	// Simulate elimination to get N_i(v_i): the *current* neighborhood of
	// v_i in the partially-eliminated graph, not the original graph's
	// neighborhood, since earlier eliminations can add fill edges.
	neighb := make(map[hgraph.VId]map[hgraph.VId]struct{}, len(order))
	for _, v := range order {
		set := make(map[hgraph.VId]struct{})
		for _, u := range g.CopyNeighborsTo(v, nil) {
			set[u] = struct{}{}
		}
		neighb[v] = set
	}

	maxBag := 0
	for _, v := range order {
		live := 0
		var remaining []hgraph.VId
		for u := range neighb[v] {
			if rank[u] > rank[v] {
				live++
				remaining = append(remaining, u)
			}
		}
		if bag := live + 1; bag > maxBag {
			maxBag = bag
		}
		// eliminate v: make remaining pairwise adjacent (fill-in).
		for i := 0; i < len(remaining); i++ {
			for j := i + 1; j < len(remaining); j++ {
				neighb[remaining[i]][remaining[j]] = struct{}{}
				neighb[remaining[j]][remaining[i]] = struct{}{}
			}
		}
	}
	return maxBag
}
