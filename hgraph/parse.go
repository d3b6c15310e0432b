package hgraph

import "github.com/alecthomas/participle"

// parseEdge and parseGraph describe the HyperBench ".hg" text grammar: a
// comma-separated list of `name(v1,v2,...)` terms.
type parseEdge struct {
	Name     string   `(Int)? @Ident`
	Vertices []string `"(" ( @(Ident|Int)  ","? )* ")"`
}

type parseGraph struct {
	Edges []parseEdge `( @@ ","?)*`
}

var hgParser = participle.MustBuild(&parseGraph{}, participle.UseLookahead(1))

// NamedVId pairs the dense integer identifier this package assigns to a
// parsed vertex or edge name with the original source-text name, so callers
// can translate decomposition output back to the input's own labels.
type NamedVId struct {
	ID   VId
	Name string
}

// ParseResult holds a parsed multi-hypergraph plus the name tables needed to
// print results in terms of the original ".hg" identifiers.
type ParseResult struct {
	Graph       *MultiHypergraph
	VertexNames map[VId]string
	EdgeNames   map[EId]string
}

// Parse reads the HyperBench hypergraph text format (see
// http://hyperbench.dbai.tuwien.ac.at/downloads/manual.pdf, section 1.3)
// into a MultiHypergraph, returning an error on malformed input.
func Parse(s string) (*ParseResult, error) {
	var pg parseGraph
	if err := hgParser.ParseString(s, &pg); err != nil {
		return nil, err
	}

	g := NewMultiHypergraph()
	vertexIDs := make(map[string]VId)
	vertexNames := make(map[VId]string)
	edgeNames := make(map[EId]string)

	vertexID := func(name string) VId {
		if id, ok := vertexIDs[name]; ok {
			return id
		}
		id := g.AddVertex()
		vertexIDs[name] = id
		vertexNames[id] = name
		return id
	}

	for _, pe := range pg.Edges {
		var endpoints []VId
		for _, name := range pe.Vertices {
			endpoints = append(endpoints, vertexID(name))
		}
		id, err := g.AddHyperedge(endpoints)
		if err != nil {
			return nil, err
		}
		edgeNames[id] = pe.Name
	}

	return &ParseResult{Graph: g, VertexNames: vertexNames, EdgeNames: edgeNames}, nil
}
