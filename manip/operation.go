// Package manip implements the manipulation pipeline: typed, local,
// monotonic rewrites over a decomp.Decomposition, composed into a pipeline
// that threads a relevant-vertex scope and a set of labeling functions
// through successive steps.
package manip

import (
	"errors"

	"github.com/okulmus-lab/htdgo/decomp"
	"github.com/okulmus-lab/htdgo/hgraph"
)

// ErrUnsupportedShape reports that a manipulation operation encountered a
// tree shape it cannot handle (e.g. a join node reaching
// LimitMaximumIntroducedVertexCount, which expects join nodes to have been
// replaced already). It indicates the pipeline was assembled in the wrong
// order; the current Apply call aborts immediately rather than leaving a
// half-rewritten tree.
var ErrUnsupportedShape = errors.New("manip: operation encountered an unsupported node shape")

// Operation is a typed decomposition transformation with capability flags
// declared ahead of time and an independent-copy constructor.
type Operation interface {
	// Apply runs the transformation over d, restricted to relevantVertices
	// when non-nil (nil means "every current node"). It returns the node ids
	// created and removed by this call, for the pipeline to fold into the
	// next step's relevant-vertex scope.
	Apply(g hgraph.Graph, d *decomp.Decomposition, relevantVertices []decomp.NodeID) (created, removed []decomp.NodeID, err error)

	// CreatesNodes reports whether Apply may add nodes to the tree.
	CreatesNodes() bool
	// RemovesNodes reports whether Apply may remove nodes from the tree.
	RemovesNodes() bool
	// ModifiesBagContents reports whether Apply may change an existing
	// node's bag in place (as opposed to only inserting/removing nodes).
	ModifiesBagContents() bool
	// CreatesSubsetMaximalBags reports whether Apply's output is guaranteed
	// to contain no node whose bag is a subset of its parent's.
	CreatesSubsetMaximalBags() bool
	// CreatesLocationDependendLabels reports whether Apply may invalidate
	// existing labels; if true, every listed labeling function must be
	// recomputed on every node, not just the ones Apply touched directly.
	CreatesLocationDependendLabels() bool

	// Clone returns an independent copy of the operation.
	Clone() Operation
}
