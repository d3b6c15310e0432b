package decomp

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/okulmus-lab/htdgo/hgraph"
)

var dumpJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// DumpNode is the JSON-serializable shape of a single node, used by
// MarshalDump.
type DumpNode struct {
	ID       NodeID         `json:"id"`
	Bag      []hgraph.VId   `json:"bag"`
	Kind     string         `json:"kind"`
	Children []DumpNode     `json:"children,omitempty"`
	Labels   map[string]any `json:"labels,omitempty"`
}

// Dump walks the tree from the root and returns its JSON-serializable shape.
func (d *Decomposition) Dump() (DumpNode, error) {
	return d.dumpNode(d.root)
}

func (d *Decomposition) dumpNode(n NodeID) (DumpNode, error) {
	nd, err := d.mustNode(n)
	if err != nil {
		return DumpNode{}, err
	}
	kind, err := d.ClassifyNode(n)
	if err != nil {
		return DumpNode{}, err
	}

	out := DumpNode{
		ID:   n,
		Bag:  append([]hgraph.VId(nil), nd.bag...),
		Kind: kind.String(),
	}
	if len(nd.labels) > 0 {
		out.Labels = make(map[string]any, len(nd.labels))
		for k, v := range nd.labels {
			out.Labels[k] = v
		}
	}
	for _, c := range nd.children {
		child, err := d.dumpNode(c)
		if err != nil {
			return DumpNode{}, err
		}
		out.Children = append(out.Children, child)
	}
	return out, nil
}

// MarshalDump serializes the whole tree to JSON via json-iterator/go, for
// cmd/htddecomp's -dump flag.
func (d *Decomposition) MarshalDump() ([]byte, error) {
	root, err := d.Dump()
	if err != nil {
		return nil, err
	}
	return dumpJSON.MarshalIndent(root, "", "  ")
}
