package manip

import (
	"github.com/okulmus-lab/htdgo/decomp"
	"github.com/okulmus-lab/htdgo/hgraph"
)

// InducedSubgraphLabel is the label name InducedSubgraphLabeling attaches.
const InducedSubgraphLabel = "Induced Subgraph"

// InducedSubgraphLabeling attaches to each node a label named
// InducedSubgraphLabel whose value is the set of hyperedge ids whose
// endpoints all lie in that node's bag. It is both a manip.Operation (so it
// can run as a pipeline step on its own) and a decomp.Labeling (so it can
// also be registered in a Pipeline's labeling-function list and rerun
// automatically whenever another operation touches a node).
type InducedSubgraphLabeling struct {
	Edges hgraph.EdgeSet
}

var _ Operation = InducedSubgraphLabeling{}
var _ decomp.Labeling = InducedSubgraphLabeling{}

func (InducedSubgraphLabeling) CreatesNodes() bool                   { return false }
func (InducedSubgraphLabeling) RemovesNodes() bool                   { return false }
func (InducedSubgraphLabeling) ModifiesBagContents() bool            { return false }
func (InducedSubgraphLabeling) CreatesSubsetMaximalBags() bool       { return false }
func (InducedSubgraphLabeling) CreatesLocationDependendLabels() bool { return false }
func (op InducedSubgraphLabeling) Clone() Operation                  { return op }

func (op InducedSubgraphLabeling) Name() string { return InducedSubgraphLabel }

// Compute returns the sorted list of hyperedge ids whose endpoints all lie
// in bag, ignoring existing (irrelevant: the label is a pure function of
// the bag alone).
func (op InducedSubgraphLabeling) Compute(bag []hgraph.VId, _ map[string]any) any {
	var ids []hgraph.EId
	for _, e := range op.Edges.RestrictTo(bag).Slice() {
		ids = append(ids, e.ID)
	}
	return ids
}

func (op InducedSubgraphLabeling) Apply(g hgraph.Graph, d *decomp.Decomposition, relevantVertices []decomp.NodeID) ([]decomp.NodeID, []decomp.NodeID, error) {
	labeler := op
	labeler.Edges = g.Hyperedges()
	if err := d.ApplyLabelings(scope(d, relevantVertices), []decomp.Labeling{labeler}); err != nil {
		return nil, nil, err
	}
	return nil, nil, nil
}
