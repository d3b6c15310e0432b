package decomp

import "github.com/okulmus-lab/htdgo/hgraph"

// Labeling is a pure function from a node's bag and its existing labels to
// an owned label value, addressable by name.
type Labeling interface {
	Name() string
	Compute(bag []hgraph.VId, existing map[string]any) any
}

// Label returns the value stored under name on n, and whether it was set.
func (d *Decomposition) Label(n NodeID, name string) (any, bool, error) {
	nd, err := d.mustNode(n)
	if err != nil {
		return nil, false, err
	}
	v, ok := nd.labels[name]
	return v, ok, nil
}

// SetLabel stores value under name on n. name must not be empty.
func (d *Decomposition) SetLabel(n NodeID, name string, value any) error {
	nd, err := d.mustNode(n)
	if err != nil {
		return err
	}
	if name == "" {
		return ErrReservedLabelName
	}
	nd.labels[name] = value
	return nil
}

// RemoveLabel deletes the label named name from n, if present.
func (d *Decomposition) RemoveLabel(n NodeID, name string) error {
	nd, err := d.mustNode(n)
	if err != nil {
		return err
	}
	delete(nd.labels, name)
	return nil
}

// SwapLabel exchanges the label named name between a and b.
func (d *Decomposition) SwapLabel(a, b NodeID, name string) error {
	na, err := d.mustNode(a)
	if err != nil {
		return err
	}
	nb, err := d.mustNode(b)
	if err != nil {
		return err
	}
	va, oka := na.labels[name]
	vb, okb := nb.labels[name]
	if okb {
		na.labels[name] = vb
	} else {
		delete(na.labels, name)
	}
	if oka {
		nb.labels[name] = va
	} else {
		delete(nb.labels, name)
	}
	return nil
}

// TransferLabel copies the label named name from src to dst, overwriting
// any existing value; setting a label and then transferring it yields the
// identical value on the destination.
func (d *Decomposition) TransferLabel(src, dst NodeID, name string) error {
	ns, err := d.mustNode(src)
	if err != nil {
		return err
	}
	nd, err := d.mustNode(dst)
	if err != nil {
		return err
	}
	v, ok := ns.labels[name]
	if !ok {
		delete(nd.labels, name)
		return nil
	}
	nd.labels[name] = v
	return nil
}

// Labels returns a copy of all of n's current labels, for passing to a
// Labeling's Compute as "existingLabels".
func (d *Decomposition) Labels(n NodeID) (map[string]any, error) {
	nd, err := d.mustNode(n)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(nd.labels))
	for k, v := range nd.labels {
		out[k] = v
	}
	return out, nil
}

// ApplyLabelings recomputes and stores every labeling's value on every node
// in touched, in order: after any structural or content mutation, each
// listed labeling L is evaluated as L(bag(n), currentLabels(n)) and stored
// under L.Name() for each touched node n.
func (d *Decomposition) ApplyLabelings(touched []NodeID, labelings []Labeling) error {
	for _, n := range touched {
		bag, err := d.Bag(n)
		if err != nil {
			return err
		}
		for _, l := range labelings {
			existing, err := d.Labels(n)
			if err != nil {
				return err
			}
			value := l.Compute(bag, existing)
			if err := d.SetLabel(n, l.Name(), value); err != nil {
				return err
			}
		}
	}
	return nil
}
