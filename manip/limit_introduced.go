package manip

import (
	"github.com/okulmus-lab/htdgo/decomp"
	"github.com/okulmus-lab/htdgo/hgraph"
)

// LimitMaximumIntroducedVertexCount rewrites every introduce node whose
// introduced-vertex count exceeds Limit, chaining fresh intermediate nodes
// between it and its child so each step introduces at most Limit vertices.
// When TreatLeafAsIntroduce is set, a leaf node is treated as introducing
// its whole bag over an implicit empty baseline and the chain is grown
// downward, ending in a fresh empty-bag leaf.
//
// A node with two or more children reaching this operation is a join node:
// introduced-vertex limiting is meaningless there, so Apply fails with
// ErrUnsupportedShape instead of silently skipping it.
type LimitMaximumIntroducedVertexCount struct {
	Limit                int
	TreatLeafAsIntroduce bool
}

var _ Operation = LimitMaximumIntroducedVertexCount{}

func (LimitMaximumIntroducedVertexCount) CreatesNodes() bool                   { return true }
func (LimitMaximumIntroducedVertexCount) RemovesNodes() bool                   { return false }
func (LimitMaximumIntroducedVertexCount) ModifiesBagContents() bool            { return false }
func (LimitMaximumIntroducedVertexCount) CreatesSubsetMaximalBags() bool       { return false }
func (LimitMaximumIntroducedVertexCount) CreatesLocationDependendLabels() bool { return false }
func (op LimitMaximumIntroducedVertexCount) Clone() Operation                  { return op }

func (op LimitMaximumIntroducedVertexCount) Apply(g hgraph.Graph, d *decomp.Decomposition, relevantVertices []decomp.NodeID) ([]decomp.NodeID, []decomp.NodeID, error) {
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

		switch kind {
		case decomp.KindJoin:
			return created, nil, ErrUnsupportedShape

		case decomp.KindIntroduce:
			children, err := d.Children(n)
			if err != nil {
				return created, nil, err
			}
			child := children[0]

			introduced, err := d.IntroducedVertices(n)
			if err != nil {
				return created, nil, err
			}
			if len(introduced) <= op.Limit {
				continue
			}

			ids, err := chainUpward(d, child, introduced, op.Limit)
			if err != nil {
				return created, nil, err
			}
			created = append(created, ids...)

		case decomp.KindLeaf:
			if !op.TreatLeafAsIntroduce {
				continue
			}
			bag, err := d.Bag(n)
			if err != nil {
				return created, nil, err
			}
			if len(bag) <= op.Limit {
				continue
			}

			ids, err := chainDownward(d, n, bag, op.Limit)
			if err != nil {
				return created, nil, err
			}
			created = append(created, ids...)
		}
	}

	return created, nil, nil
}

// chainUpward inserts ⌈len(excess)/limit⌉-1 fresh nodes directly above
// anchor, each adding at most limit vertices on top of anchor's current bag,
// cumulatively reaching (but not recreating) the existing top bag.
// Returns the created node ids, bottom to top.
func chainUpward(d *decomp.Decomposition, anchor decomp.NodeID, excess []hgraph.VId, limit int) ([]decomp.NodeID, error) {
	groups := chunk(excess, limit)

	var created []decomp.NodeID
	cur := anchor
	curBag, err := d.Bag(anchor)
	if err != nil {
		return nil, err
	}

	// The last group's cumulative bag equals the existing top node's bag
	// exactly, so only the first len(groups)-1 groups get a fresh node.
	for i := 0; i < len(groups)-1; i++ {
		curBag = append(append([]hgraph.VId(nil), curBag...), groups[i]...)
		id, err := d.AddParent(cur, curBag)
		if err != nil {
			return created, err
		}
		created = append(created, id)
		cur = id
	}
	return created, nil
}

// chainDownward inserts ⌈len(topBag)/limit⌉ fresh children below top,
// shrinking by at most limit vertices per step, ending in a fresh
// empty-bag leaf. Returns the created node ids, top to bottom.
func chainDownward(d *decomp.Decomposition, top decomp.NodeID, topBag []hgraph.VId, limit int) ([]decomp.NodeID, error) {
	groups := chunk(topBag, limit)

	var created []decomp.NodeID
	cur := top
	curBag := append([]hgraph.VId(nil), topBag...)

	for i := 0; i < len(groups); i++ {
		curBag = setDiff(curBag, groups[i])
		id, err := d.AddChild(cur, curBag)
		if err != nil {
			return created, err
		}
		created = append(created, id)
		cur = id
	}
	return created, nil
}

func chunk(vs []hgraph.VId, size int) [][]hgraph.VId {
	var out [][]hgraph.VId
	for len(vs) > 0 {
		n := size
		if n > len(vs) {
			n = len(vs)
		}
		out = append(out, vs[:n])
		vs = vs[n:]
	}
	return out
}

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
