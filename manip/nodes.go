package manip

import "github.com/okulmus-lab/htdgo/decomp"

// scope resolves an operation's relevantVertices parameter: nil means "every
// node currently in the tree", snapshotted once at the start of Apply so
// that nodes this call itself creates are never revisited within the same
// call.
func scope(d *decomp.Decomposition, relevantVertices []decomp.NodeID) []decomp.NodeID {
	if relevantVertices != nil {
		return relevantVertices
	}
	return d.Preorder()
}
