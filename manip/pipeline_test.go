package manip

import (
	"testing"

	"github.com/okulmus-lab/htdgo/decomp"
	"github.com/okulmus-lab/htdgo/hgraph"
	"github.com/okulmus-lab/htdgo/ordering"
)

func TestPipelineThreadsRelevantScopeAndAppliesLabelings(t *testing.T) {
	g, d, root := buildExchangeTree(t)
	inner, err := g.AddHyperedge([]hgraph.VId{2})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddHyperedge([]hgraph.VId{1, 2}); err != nil {
		t.Fatal(err)
	}

	pipeline := NewPipeline(ExchangeNodeReplacement{}).
		WithLabelings(InducedSubgraphLabeling{Edges: g.Hyperedges()})

	created, removed, err := pipeline.Apply(g, d, []decomp.NodeID{root})
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 1 {
		t.Fatalf("expected one created node, got %d", len(created))
	}
	if len(removed) != 0 {
		t.Fatalf("expected no removed nodes, got %d", len(removed))
	}

	// The created node should have had its label derived, since
	// LimitMaximumIntroducedVertexCount-style ops only relabel `created`.
	// The mid node's bag is {2}, so of the two hyperedges only the unary
	// one fits; asserting on the value catches a labeling registered with
	// an empty edge snapshot.
	mid := created[0]
	value, ok, err := d.Label(mid, InducedSubgraphLabel)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected the new node created by the pipeline to have its label recomputed")
	}
	ids, ok := value.([]hgraph.EId)
	if !ok {
		t.Fatalf("expected []hgraph.EId, got %T", value)
	}
	if len(ids) != 1 || ids[0] != inner {
		t.Fatalf("expected induced edge ids [%d], got %v", inner, ids)
	}
}

func TestPipelineLabelingOperationLabelsEveryNode(t *testing.T) {
	g, d, root := buildLabelingGraph(t)
	if _, err := d.AddChild(root, []hgraph.VId{1}); err != nil {
		t.Fatal(err)
	}

	pipeline := NewPipeline(InducedSubgraphLabeling{}).
		WithLabelings(InducedSubgraphLabeling{})

	if _, _, err := pipeline.Apply(g, d, nil); err != nil {
		t.Fatal(err)
	}

	for _, n := range d.Preorder() {
		if _, ok, err := d.Label(n, InducedSubgraphLabel); err != nil || !ok {
			t.Fatalf("expected every node to carry the label, node %v err=%v ok=%v", n, err, ok)
		}
	}
}

func TestPipelineStopsBetweenStepsOnCancellation(t *testing.T) {
	g, d, _ := buildExchangeTree(t)
	ctx := ordering.NewContext(1)
	ctx.Cancel()

	pipeline := NewPipeline(ExchangeNodeReplacement{}).WithContext(ctx)
	created, removed, err := pipeline.Apply(g, d, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 0 || len(removed) != 0 {
		t.Fatalf("expected no work after cancellation, got created=%v removed=%v", created, removed)
	}
	if !hasExchangeNode(t, d) {
		t.Fatal("the cancelled pipeline must leave the tree untouched")
	}
	if !d.Tree() {
		t.Fatal("tree invariant broken by a cancelled pipeline")
	}
}

func TestFoldRelevantDropsRemovedAndAppendsCreated(t *testing.T) {
	relevant := []decomp.NodeID{1, 2, 3}
	created := []decomp.NodeID{4, 5}
	removed := []decomp.NodeID{2}

	got := foldRelevant(relevant, created, removed)
	want := []decomp.NodeID{1, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFoldRelevantNilStaysNil(t *testing.T) {
	if got := foldRelevant(nil, []decomp.NodeID{1}, []decomp.NodeID{2}); got != nil {
		t.Fatalf("expected nil scope to stay nil, got %v", got)
	}
}
