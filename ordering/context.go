// Package ordering implements the elimination-ordering engines: min-degree,
// min-fill, and advanced min-fill, sharing one contract and one Context for
// randomness and cooperative cancellation.
package ordering

import (
	"math/rand"
	"sync/atomic"

	"github.com/okulmus-lab/htdgo/hgraph"
)

// Context bundles the per-call shared resources: a random source (the sole
// source of nondeterminism) and a cooperative cancellation flag. One Context
// drives one decomposition at a time; independent runs need independent
// Contexts.
type Context struct {
	Rng    *rand.Rand
	cancel int32
}

// NewContext returns a Context seeded with seed. A fixed seed makes the
// engine's output fully deterministic given fixed cancellation timing.
func NewContext(seed int64) *Context {
	return &Context{Rng: rand.New(rand.NewSource(seed))}
}

// Cancel requests cooperative cancellation. Advisory only: the caller must
// not touch any in-flight decomposition until the call that observes it
// returns.
func (c *Context) Cancel() {
	atomic.StoreInt32(&c.cancel, 1)
}

// Terminated reports whether Cancel has been called.
func (c *Context) Terminated() bool {
	return atomic.LoadInt32(&c.cancel) != 0
}

// Reset clears the cancellation flag so the Context can drive another call.
func (c *Context) Reset() {
	atomic.StoreInt32(&c.cancel, 0)
}

// choose draws one element from pool uniformly at random via ctx.Rng, the
// sole nondeterministic step in the ordering engines.
func choose(ctx *Context, pool []hgraph.VId) hgraph.VId {
	return pool[ctx.Rng.Intn(len(pool))]
}
