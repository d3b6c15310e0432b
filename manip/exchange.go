package manip

import (
	"github.com/okulmus-lab/htdgo/decomp"
	"github.com/okulmus-lab/htdgo/hgraph"
)

// ExchangeNodeReplacement rewrites every exchange node n with child c by
// inserting a new node between them whose bag is bag(n) ∩ bag(c),
// restricting induced edges to the new bag. The new node's bag is always a
// strict subset of both n's bag and c's bag (since n, c were neither subset
// nor superset of one another), so n becomes an introduce node above the new
// node, which is a forget node above c; no fresh exchange node is produced.
type ExchangeNodeReplacement struct{}

var _ Operation = ExchangeNodeReplacement{}

func (ExchangeNodeReplacement) CreatesNodes() bool                   { return true }
func (ExchangeNodeReplacement) RemovesNodes() bool                   { return false }
func (ExchangeNodeReplacement) ModifiesBagContents() bool            { return false }
func (ExchangeNodeReplacement) CreatesSubsetMaximalBags() bool       { return false }
func (ExchangeNodeReplacement) CreatesLocationDependendLabels() bool { return false }
func (ExchangeNodeReplacement) Clone() Operation                     { return ExchangeNodeReplacement{} }

func (op ExchangeNodeReplacement) Apply(g hgraph.Graph, d *decomp.Decomposition, relevantVertices []decomp.NodeID) ([]decomp.NodeID, []decomp.NodeID, error) {
	edges := g.Hyperedges()

	var created []decomp.NodeID
	for _, n := range scope(d, relevantVertices) {
		kind, err := d.ClassifyNode(n)
		if err != nil {
			continue // node was spliced away by an earlier iteration of this same call
		}
		if kind != decomp.KindExchange {
			continue
		}

		children, err := d.Children(n)
		if err != nil {
			return created, nil, err
		}
		c := children[0]

		nBag, err := d.Bag(n)
		if err != nil {
			return created, nil, err
		}
		cBag, err := d.Bag(c)
		if err != nil {
			return created, nil, err
		}

		mid, err := d.AddParent(c, intersect(nBag, cBag))
		if err != nil {
			return created, nil, err
		}
		midBag, _ := d.Bag(mid)
		if err := d.MutableInducedHyperedges(mid, edges.RestrictTo(midBag)); err != nil {
			return created, nil, err
		}
		created = append(created, mid)
	}

	return created, nil, nil
}

func intersect(a, b []hgraph.VId) []hgraph.VId {
	bs := make(map[hgraph.VId]struct{}, len(b))
	for _, v := range b {
		bs[v] = struct{}{}
	}
	var out []hgraph.VId
	for _, v := range a {
		if _, ok := bs[v]; ok {
			out = append(out, v)
		}
	}
	return out
}
