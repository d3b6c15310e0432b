package manip

import (
	"testing"

	"github.com/okulmus-lab/htdgo/decomp"
	"github.com/okulmus-lab/htdgo/hgraph"
)

func buildIntroduceTree(t *testing.T, introducedCount int) (*hgraph.MultiHypergraph, *decomp.Decomposition, decomp.NodeID) {
	t.Helper()
	g := hgraph.NewMultiHypergraph()
	total := introducedCount + 1
	for i := 0; i < total; i++ {
		g.AddVertex()
	}

	d := decomp.New()
	root := d.Root()
	full := make([]hgraph.VId, total)
	for i := range full {
		full[i] = hgraph.VId(i + 1)
	}
	if err := d.MutableBagContent(root, full); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddChild(root, []hgraph.VId{1}); err != nil {
		t.Fatal(err)
	}
	return g, d, root
}

func maxIntroducedCount(t *testing.T, d *decomp.Decomposition) int {
	t.Helper()
	max := 0
	for _, n := range d.Preorder() {
		kind, err := d.ClassifyNode(n)
		if err != nil {
			t.Fatal(err)
		}
		if kind != decomp.KindIntroduce {
			continue
		}
		introduced, err := d.IntroducedVertices(n)
		if err != nil {
			t.Fatal(err)
		}
		if len(introduced) > max {
			max = len(introduced)
		}
	}
	return max
}

func TestLimitMaximumIntroducedVertexCountChainsIntermediateNodes(t *testing.T) {
	g, d, _ := buildIntroduceTree(t, 7) // root introduces 7 vertices over its child
	op := LimitMaximumIntroducedVertexCount{Limit: 2}

	created, removed, err := op.Apply(g, d, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(removed) != 0 {
		t.Fatalf("expected no removed nodes, got %d", len(removed))
	}
	// ceil(7/2) - 1 = 3 new intermediate nodes.
	if len(created) != 3 {
		t.Fatalf("expected 3 new intermediate nodes, got %d", len(created))
	}
	if max := maxIntroducedCount(t, d); max > op.Limit {
		t.Fatalf("expected every introduce step to respect the limit %d, got %d", op.Limit, max)
	}
	if !d.Tree() {
		t.Fatal("tree invariant broken after chaining")
	}
}

func TestLimitMaximumIntroducedVertexCountIsFixedPoint(t *testing.T) {
	// Applying the operation twice must be equivalent to applying it once,
	// and every non-leaf node respects the limit afterward.
	g, d, _ := buildIntroduceTree(t, 7)
	op := LimitMaximumIntroducedVertexCount{Limit: 2}

	if _, _, err := op.Apply(g, d, nil); err != nil {
		t.Fatal(err)
	}
	countAfterFirst := d.NodeCount()

	created, removed, err := op.Apply(g, d, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 0 || len(removed) != 0 {
		t.Fatalf("second application changed the tree (created=%v removed=%v)", created, removed)
	}
	if d.NodeCount() != countAfterFirst {
		t.Fatalf("node count changed from %d to %d on reapplication", countAfterFirst, d.NodeCount())
	}
	if max := maxIntroducedCount(t, d); max > op.Limit {
		t.Fatalf("introduced vertex count %d exceeds limit %d", max, op.Limit)
	}
}

func TestLimitMaximumIntroducedVertexCountGrowsLeafDownward(t *testing.T) {
	g := hgraph.NewMultiHypergraph()
	for i := 0; i < 5; i++ {
		g.AddVertex()
	}
	d := decomp.New()
	root := d.Root()
	if err := d.MutableBagContent(root, []hgraph.VId{1, 2, 3, 4, 5}); err != nil {
		t.Fatal(err)
	}

	op := LimitMaximumIntroducedVertexCount{Limit: 2, TreatLeafAsIntroduce: true}
	created, _, err := op.Apply(g, d, nil)
	if err != nil {
		t.Fatal(err)
	}
	// ceil(5/2) = 3 new nodes, ending in a fresh empty-bag leaf.
	if len(created) != 3 {
		t.Fatalf("expected 3 new downward nodes, got %d", len(created))
	}
	leaf := created[len(created)-1]
	bag, err := d.Bag(leaf)
	if err != nil {
		t.Fatal(err)
	}
	if len(bag) != 0 {
		t.Fatalf("expected the deepest new node to have an empty bag, got %v", bag)
	}
	if !d.Tree() {
		t.Fatal("tree invariant broken after downward chaining")
	}
}

func TestLimitMaximumIntroducedVertexCountRejectsJoinNode(t *testing.T) {
	g := hgraph.NewMultiHypergraph()
	g.AddVertex()
	g.AddVertex()
	d := decomp.New()
	root := d.Root()
	if err := d.MutableBagContent(root, []hgraph.VId{1, 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddChild(root, []hgraph.VId{1}); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddChild(root, []hgraph.VId{2}); err != nil {
		t.Fatal(err)
	}

	_, _, err := LimitMaximumIntroducedVertexCount{Limit: 1}.Apply(g, d, nil)
	if err != ErrUnsupportedShape {
		t.Fatalf("expected ErrUnsupportedShape for a join node, got %v", err)
	}
}

func TestLimitMaximumForgottenVertexCountChainsIntermediateNodes(t *testing.T) {
	g := hgraph.NewMultiHypergraph()
	for i := 0; i < 8; i++ {
		g.AddVertex()
	}
	d := decomp.New()
	root := d.Root()
	if err := d.MutableBagContent(root, []hgraph.VId{1}); err != nil {
		t.Fatal(err)
	}
	full := make([]hgraph.VId, 8)
	for i := range full {
		full[i] = hgraph.VId(i + 1)
	}
	if _, err := d.AddChild(root, full); err != nil {
		t.Fatal(err)
	}

	op := LimitMaximumForgottenVertexCount{Limit: 3}
	created, removed, err := op.Apply(g, d, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(removed) != 0 {
		t.Fatalf("expected no removed nodes, got %d", len(removed))
	}
	// forgotten = 7 vertices, ceil(7/3) - 1 = 2 new intermediate nodes.
	if len(created) != 2 {
		t.Fatalf("expected 2 new intermediate nodes, got %d", len(created))
	}
	if !d.Tree() {
		t.Fatal("tree invariant broken after chaining")
	}

	for _, n := range d.Preorder() {
		kind, err := d.ClassifyNode(n)
		if err != nil {
			t.Fatal(err)
		}
		if kind != decomp.KindForget {
			continue
		}
		forgotten, err := d.ForgottenVertices(n)
		if err != nil {
			t.Fatal(err)
		}
		if len(forgotten) > op.Limit {
			t.Fatalf("forget step exceeds limit: %d > %d", len(forgotten), op.Limit)
		}
	}
}
