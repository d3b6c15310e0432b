package bucket

import (
	"github.com/okulmus-lab/htdgo/decomp"
	"github.com/okulmus-lab/htdgo/hgraph"
	"github.com/okulmus-lab/htdgo/ordering"
)

// ComputeWithBagLimit repeatedly draws a fresh ordering under the width hint
// maxBagSize, builds the raw decomposition, and restarts (with a fresh
// tie-break draw, via ctx's shared Rng) if the decomposition's maximum bag
// size before any manipulation exceeds maxBagSize, up to maxIterationCount
// times.
//
// Returns (decomposition, iterationsUsed) on success, or (nil,
// iterationsUsed) if no iteration produced a decomposition within the width
// hint. This is the one place an ordering that misses the hint is silently
// discarded rather than propagated; the algorithm stays reusable after a
// miss.
func ComputeWithBagLimit(ctx *ordering.Context, alg ordering.Algorithm, g hgraph.Graph, maxBagSize, maxIterationCount int, opts Options) (*decomp.Decomposition, int) {
	limit := maxIterationCount
	if limit <= 0 {
		limit = 1
	}

	for iter := 1; iter <= limit; iter++ {
		if ctx != nil && ctx.Terminated() {
			return nil, iter - 1
		}

		ord := ordering.Compute(ctx, alg, g, ordering.Options{MaxBagSize: maxBagSize, MaxIterationCount: 1})

		d, maxBag := Build(ctx, g, ord.Order, opts)
		if maxBagSize <= 0 || maxBag <= maxBagSize {
			return d, iter
		}
	}

	return nil, limit
}
