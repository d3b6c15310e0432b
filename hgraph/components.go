package hgraph

import (
	"sort"

	"github.com/spakin/disjoint"
)

// Components partitions vertices into connected components of the
// hyperedge-adjacency relation, using a union-find structure rather than a
// recomputed-from-scratch BFS/DFS per call.
func Components(g Graph) [][]VId {
	vs := g.Vertices()
	elems := make(map[VId]*disjoint.Element, len(vs))
	for _, v := range vs {
		elems[v] = disjoint.NewElement()
	}

	for _, e := range g.Hyperedges().Slice() {
		seen := e.endpointSet()
		for i := 1; i < len(seen); i++ {
			disjoint.Union(elems[seen[0]], elems[seen[i]])
		}
	}

	groups := make(map[*disjoint.Element][]VId)
	for _, v := range vs {
		root := elems[v].Find()
		groups[root] = append(groups[root], v)
	}

	out := make([][]VId, 0, len(groups))
	for _, members := range groups {
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) == 0 || len(out[j]) == 0 {
			return len(out[i]) < len(out[j])
		}
		return out[i][0] < out[j][0]
	})
	return out
}
