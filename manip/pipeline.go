package manip

import (
	"github.com/okulmus-lab/htdgo/decomp"
	"github.com/okulmus-lab/htdgo/hgraph"
	"github.com/okulmus-lab/htdgo/ordering"
)

// Pipeline is an ordered sequence of Operations sharing one set of labeling
// functions, run over one graph/decomposition pair per Apply call.
type Pipeline struct {
	ops       []Operation
	labelings []decomp.Labeling
	ctx       *ordering.Context
}

// NewPipeline returns a Pipeline running ops in order.
func NewPipeline(ops ...Operation) *Pipeline {
	return &Pipeline{ops: append([]Operation(nil), ops...)}
}

// WithLabelings attaches labeling functions to be recomputed on every node
// touched by each operation, and returns the receiver for chaining.
func (p *Pipeline) WithLabelings(labelings ...decomp.Labeling) *Pipeline {
	p.labelings = append([]decomp.Labeling(nil), labelings...)
	return p
}

// WithContext attaches a cancellation context. Apply then checks it between
// pipeline steps and stops early; every step is atomic, so a cancelled run
// still leaves a valid decomposition behind.
func (p *Pipeline) WithContext(ctx *ordering.Context) *Pipeline {
	p.ctx = ctx
	return p
}

// Apply runs every operation in order against d, threading the
// relevant-vertex scope and re-deriving labels after each step. relevant may
// be nil to scope the first operation to the whole tree. Returns the
// cumulative set of node ids created and removed across the whole pipeline.
func (p *Pipeline) Apply(g hgraph.Graph, d *decomp.Decomposition, relevant []decomp.NodeID) (createdAll, removedAll []decomp.NodeID, err error) {
	current := relevant

	for _, op := range p.ops {
		if p.ctx != nil && p.ctx.Terminated() {
			break
		}
		created, removed, err := op.Apply(g, d, current)
		if err != nil {
			return createdAll, removedAll, err
		}

		current = foldRelevant(current, created, removed)
		createdAll = append(createdAll, created...)
		removedAll = append(removedAll, removed...)

		if len(p.labelings) == 0 {
			continue
		}
		if op.CreatesLocationDependendLabels() {
			if err := d.ApplyLabelings(d.Preorder(), p.labelings); err != nil {
				return createdAll, removedAll, err
			}
		} else if len(created) > 0 {
			if err := d.ApplyLabelings(created, p.labelings); err != nil {
				return createdAll, removedAll, err
			}
		}
	}

	return createdAll, removedAll, nil
}

// foldRelevant drops removed ids from relevant (nil stays nil, meaning "the
// whole tree", since removal doesn't narrow an unscoped run) and appends
// created ids, so the next operation sees exactly the nodes this one left
// behind plus whatever it added.
func foldRelevant(relevant []decomp.NodeID, created, removed []decomp.NodeID) []decomp.NodeID {
	if relevant == nil {
		return nil
	}
	removedSet := make(map[decomp.NodeID]bool, len(removed))
	for _, r := range removed {
		removedSet[r] = true
	}
	out := make([]decomp.NodeID, 0, len(relevant)+len(created))
	for _, n := range relevant {
		if !removedSet[n] {
			out = append(out, n)
		}
	}
	out = append(out, created...)
	return out
}
