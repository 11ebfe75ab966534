package graphmatrix

// Edge is an unordered vertex pair stored canonically with U <= V, so two
// edges are equal regardless of the orientation they were listed in.
type Edge struct {
	U, V int
}

// canonical returns the (min, max) form of the pair (u, v).
func canonical(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Graph is an immutable sparse undirected graph: a vertex count and a
// deduplicated set of canonical edges. It holds no reference to the text it
// was parsed from; accessors return copies.
type Graph struct {
	numVertices int
	// edges holds the distinct canonical edges in first-seen order.
	edges []Edge
	index map[Edge]struct{}
}

// NumVertices reports the declared number of vertices.
func (g *Graph) NumVertices() int { return g.numVertices }

// NumEdges reports the number of distinct canonical edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Edges returns a copy of the distinct canonical edges in first-seen order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasEdge reports whether the unordered pair {u, v} is an edge of g;
// orientation of the query does not matter.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.index[canonical(u, v)]

	return ok
}
