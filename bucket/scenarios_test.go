package bucket

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okulmus-lab/htdgo/decomp"
	"github.com/okulmus-lab/htdgo/hgraph"
	"github.com/okulmus-lab/htdgo/manip"
	"github.com/okulmus-lab/htdgo/ordering"
)

// End-to-end runs over small literal inputs, exercising the full ordering ->
// build -> manipulation pipeline.

func TestScenarioEmptyGraph(t *testing.T) {
	g := hgraph.NewMultiHypergraph()
	ctx := ordering.NewContext(1)

	d, iterations := ComputeWithBagLimit(ctx, ordering.NewAdvancedMinFill(), g, 0, 1, Options{})
	require.NotNil(t, d)
	require.Equal(t, 1, iterations)
	require.Equal(t, 1, d.NodeCount())

	bag, err := d.Bag(d.Root())
	require.NoError(t, err)
	require.Empty(t, bag)
	require.Equal(t, 0, d.EdgeCount())
}

func TestScenarioIsolatedVerticesCompressAwayEmptyRoot(t *testing.T) {
	g := hgraph.NewMultiHypergraph()
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	ctx := ordering.NewContext(1)

	d, _ := ComputeWithBagLimit(ctx, ordering.NewMinDegree(), g, 0, 1, Options{Compression: true})
	require.NotNil(t, d)
	checkInvariants(t, d, g)

	// The empty super-root merges with one of the singleton components, so
	// every remaining bag is a singleton.
	for _, n := range d.Preorder() {
		bag, err := d.Bag(n)
		require.NoError(t, err)
		require.Len(t, bag, 1)
	}
}

func TestScenarioPathGraph(t *testing.T) {
	g := hgraph.NewMultiHypergraph()
	v1, v2, v3 := g.AddVertex(), g.AddVertex(), g.AddVertex()
	_, err := g.AddHyperedge([]hgraph.VId{v1, v2})
	require.NoError(t, err)
	_, err = g.AddHyperedge([]hgraph.VId{v2, v3})
	require.NoError(t, err)

	ctx := ordering.NewContext(7)
	ord := ordering.Compute(ctx, ordering.NewAdvancedMinFill(), g, ordering.Options{})
	d, maxBag := Build(nil, g, ord.Order, Options{})
	require.Equal(t, 2, maxBag)
	checkInvariants(t, d, g)

	holds12, holds23 := false, false
	for _, n := range d.Preorder() {
		bag, err := d.Bag(n)
		require.NoError(t, err)
		set := make(map[hgraph.VId]bool, len(bag))
		for _, v := range bag {
			set[v] = true
		}
		if set[v1] && set[v2] {
			holds12 = true
		}
		if set[v2] && set[v3] {
			holds23 = true
		}
	}
	require.True(t, holds12, "some bag must contain {1,2}")
	require.True(t, holds23, "some bag must contain {2,3}")
}

func TestScenarioCliqueCompressesToSingleBag(t *testing.T) {
	g, vs := cliqueGraph(t, 5)
	ctx := ordering.NewContext(11)

	d, _ := ComputeWithBagLimit(ctx, ordering.NewMinFill(), g, 0, 1, Options{Compression: true})
	require.NotNil(t, d)
	require.Equal(t, 1, d.NodeCount())
	require.Equal(t, 0, d.EdgeCount())

	bag, err := d.Bag(d.Root())
	require.NoError(t, err)
	require.Equal(t, vs, bag)
}

func TestScenarioSingleHyperedgeWithRepeatedEndpoints(t *testing.T) {
	g := hgraph.NewMultiHypergraph()
	v1, v2, v3 := g.AddVertex(), g.AddVertex(), g.AddVertex()
	_, err := g.AddHyperedge([]hgraph.VId{v3, v3, v2, v1, v2, v3, v3})
	require.NoError(t, err)

	ctx := ordering.NewContext(3)
	d, _ := ComputeWithBagLimit(ctx, ordering.NewMinDegree(), g, 0, 1, Options{
		ComputeInducedEdges: false,
		Compression:         true,
	})
	require.NotNil(t, d)
	checkInvariants(t, d, g)

	// The hyperedge behaves as its underlying set {1,2,3}; after
	// compression the whole decomposition is that one bag.
	for _, n := range d.Preorder() {
		bag, err := d.Bag(n)
		require.NoError(t, err)
		require.Len(t, bag, 3)
	}
}

func TestScenarioPathWithIntroduceLimitOne(t *testing.T) {
	g := hgraph.NewMultiHypergraph()
	vs := make([]hgraph.VId, 5)
	for i := range vs {
		vs[i] = g.AddVertex()
	}
	for i := 0; i+1 < len(vs); i++ {
		_, err := g.AddHyperedge([]hgraph.VId{vs[i], vs[i+1]})
		require.NoError(t, err)
	}

	// The identity ordering on a path yields a pure chain (two-element bags
	// under a singleton root), so the pipeline never meets a join node.
	d, _ := Build(nil, g, vs, Options{ComputeInducedEdges: true})
	checkInvariants(t, d, g)

	pipeline := manip.NewPipeline(
		manip.ExchangeNodeReplacement{},
		manip.LimitMaximumIntroducedVertexCount{Limit: 1},
	)
	_, _, err := pipeline.Apply(g, d, nil)
	require.NoError(t, err)
	checkInvariants(t, d, g)

	for _, n := range d.Preorder() {
		kind, err := d.ClassifyNode(n)
		require.NoError(t, err)
		if kind != decomp.KindIntroduce {
			continue
		}
		introduced, err := d.IntroducedVertices(n)
		require.NoError(t, err)
		require.Len(t, introduced, 1, "every introduce node must introduce exactly one vertex")
	}
}
