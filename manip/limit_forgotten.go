package manip

import (
	"github.com/okulmus-lab/htdgo/decomp"
	"github.com/okulmus-lab/htdgo/hgraph"
)

// LimitMaximumForgottenVertexCount is the forget-side counterpart of
// LimitMaximumIntroducedVertexCount: for every forget node whose
// forgotten-vertex count exceeds Limit, it chains fresh intermediate nodes
// between it and its child so each step forgets at most Limit vertices,
// built by cumulative removal starting at the child bag. A node with two or
// more children is the same shape error as in the introduce-side operation.
type LimitMaximumForgottenVertexCount struct {
	Limit int
}

var _ Operation = LimitMaximumForgottenVertexCount{}

func (LimitMaximumForgottenVertexCount) CreatesNodes() bool                   { return true }
func (LimitMaximumForgottenVertexCount) RemovesNodes() bool                   { return false }
func (LimitMaximumForgottenVertexCount) ModifiesBagContents() bool            { return false }
func (LimitMaximumForgottenVertexCount) CreatesSubsetMaximalBags() bool       { return false }
func (LimitMaximumForgottenVertexCount) CreatesLocationDependendLabels() bool { return false }
func (op LimitMaximumForgottenVertexCount) Clone() Operation                  { return op }

func (op LimitMaximumForgottenVertexCount) Apply(g hgraph.Graph, d *decomp.Decomposition, relevantVertices []decomp.NodeID) ([]decomp.NodeID, []decomp.NodeID, error) {
	var created []decomp.NodeID

	nodes := scope(d, relevantVertices)
	for _, n := range nodes {
		if kind, err := d.ClassifyNode(n); err == nil && kind == decomp.KindJoin {
			return nil, nil, ErrUnsupportedShape
		}
	}

	for _, n := range nodes {
		kind, err := d.ClassifyNode(n)
		if err != nil {
			continue
		}

		if kind == decomp.KindJoin {
			return created, nil, ErrUnsupportedShape
		}
		if kind != decomp.KindForget {
			continue
		}

		children, err := d.Children(n)
		if err != nil {
			return created, nil, err
		}
		child := children[0]

		forgotten, err := d.ForgottenVertices(n)
		if err != nil {
			return created, nil, err
		}
		if len(forgotten) <= op.Limit {
			continue
		}

		ids, err := chainUpwardRemoving(d, child, forgotten, op.Limit)
		if err != nil {
			return created, nil, err
		}
		created = append(created, ids...)
	}

	return created, nil, nil
}

// chainUpwardRemoving inserts ⌈len(forgotten)/limit⌉-1 fresh nodes directly
// above anchor, each dropping at most limit vertices from anchor's current
// bag, cumulatively shrinking to (but not recreating) the existing top bag.
func chainUpwardRemoving(d *decomp.Decomposition, anchor decomp.NodeID, forgotten []hgraph.VId, limit int) ([]decomp.NodeID, error) {
	groups := chunk(forgotten, limit)

	var created []decomp.NodeID
	cur := anchor
	curBag, err := d.Bag(anchor)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(groups)-1; i++ {
		curBag = setDiff(curBag, groups[i])
		id, err := d.AddParent(cur, curBag)
		if err != nil {
			return created, err
		}
		created = append(created, id)
		cur = id
	}
	return created, nil
}
