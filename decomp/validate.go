package decomp

import "github.com/okulmus-lab/htdgo/hgraph"

// Preorder returns every node id reachable from the root, in a
// parent-before-children order.
func (d *Decomposition) Preorder() []NodeID {
	var out []NodeID
	var walk func(NodeID)
	walk = func(n NodeID) {
		out = append(out, n)
		for _, c := range d.nodes[n].children {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

// EdgeCount returns the number of parent-child edges in the tree.
func (d *Decomposition) EdgeCount() int {
	if len(d.nodes) == 0 {
		return 0
	}
	return len(d.nodes) - 1
}

// Coverage reports whether every vertex in universe appears in at least one
// bag.
func (d *Decomposition) Coverage(universe []hgraph.VId) bool {
	covered := make(map[hgraph.VId]struct{})
	for _, n := range d.Preorder() {
		for _, v := range d.nodes[n].bag {
			covered[v] = struct{}{}
		}
	}
	for _, v := range universe {
		if _, ok := covered[v]; !ok {
			return false
		}
	}
	return true
}

// EdgeCoverage reports whether, for every hyperedge, some bag contains all
// of its endpoints.
func (d *Decomposition) EdgeCoverage(edges hgraph.EdgeSet) bool {
	bags := make([][]hgraph.VId, 0, len(d.nodes))
	for _, n := range d.Preorder() {
		bags = append(bags, d.nodes[n].bag)
	}
	for _, e := range edges.Slice() {
		found := false
		for _, bag := range bags {
			if e.IsSubsetOf(bag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// RunningIntersection reports whether, for every vertex, the nodes whose
// bags contain it form a connected subtree.
func (d *Decomposition) RunningIntersection(universe []hgraph.VId) bool {
	for _, v := range universe {
		if !d.connectedOn(v) {
			return false
		}
	}
	return true
}

func (d *Decomposition) connectedOn(v hgraph.VId) bool {
	containing := make(map[NodeID]bool)
	for id, n := range d.nodes {
		for _, u := range n.bag {
			if u == v {
				containing[id] = true
				break
			}
		}
	}
	if len(containing) == 0 {
		return true
	}

	var start NodeID
	for id := range containing {
		start = id
		break
	}

	visited := map[NodeID]bool{start: true}
	queue := []NodeID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		neighbors := append([]NodeID(nil), d.nodes[cur].children...)
		if d.nodes[cur].parent != 0 {
			neighbors = append(neighbors, d.nodes[cur].parent)
		}
		for _, nb := range neighbors {
			if containing[nb] && !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	return len(visited) == len(containing)
}

// InducedEdgeRestriction reports whether every edge in a node's induced set
// has all of its endpoints in that node's bag.
func (d *Decomposition) InducedEdgeRestriction() bool {
	for _, n := range d.Preorder() {
		nd := d.nodes[n]
		for _, e := range nd.induced.Slice() {
			if !e.IsSubsetOf(nd.bag) {
				return false
			}
		}
	}
	return true
}

// Tree reports whether the node graph is a rooted tree (edgeCount =
// nodeCount-1, or 0 for a single node) with every non-root node reachable
// from the root exactly once.
func (d *Decomposition) Tree() bool {
	visited := d.Preorder()
	if len(visited) != len(d.nodes) {
		return false
	}
	return d.EdgeCount() == len(d.nodes)-1 || len(d.nodes) <= 1
}
