package steiner

// Orientation selects the Steiner-tree variant a file describes.
//
//   - Undirected — links are unordered pairs, canonicalized (min, max);
//     no root vertex.
//   - Directed   — links are ordered (tail, head) arcs; the terminals
//     section carries a Root line.
type Orientation int

const (
	// Undirected treats every link as an unordered edge.
	Undirected Orientation = iota
	// Directed treats every link as a tail→head arc and expects a root.
	Directed
)

// String implements fmt.Stringer for diagnostics.
func (o Orientation) String() string {
	if o == Directed {
		return "directed"
	}

	return "undirected"
}

// Link is a vertex pair: canonical U <= V for undirected instances,
// (tail, head) in file order for directed ones.
type Link struct {
	U, V int
}

// canonical returns the (min, max) form of the pair (u, v).
func canonical(u, v int) Link {
	if u > v {
		u, v = v, u
	}

	return Link{U: u, V: v}
}

// Instance is an immutable Steiner-tree instance: a vertex count, weighted
// links, a terminal set, and — for the directed variant — a root vertex.
// It holds no reference to the text it was parsed from; accessors return
// copies.
type Instance struct {
	orientation Orientation
	numVertices int
	// links holds the distinct links in first-seen order; a repeated link
	// keeps its first position.
	links []Link
	// weights has exactly one entry per link; a repeated link holds the
	// weight it was last assigned.
	weights map[Link]int
	// terminals holds the distinct terminal ids in file order.
	terminals []int
	termSet   map[int]struct{}
	// root is 0 for undirected instances.
	root int
}

// Orientation reports whether the instance is directed or undirected.
func (in *Instance) Orientation() Orientation { return in.orientation }

// NumVertices reports the declared number of vertices.
func (in *Instance) NumVertices() int { return in.numVertices }

// NumLinks reports the number of distinct links (a link repeated in the file
// counts once).
func (in *Instance) NumLinks() int { return len(in.links) }

// Links returns a copy of the distinct links in first-seen order.
func (in *Instance) Links() []Link {
	out := make([]Link, len(in.links))
	copy(out, in.links)

	return out
}

// Weight returns the weight of link l and whether l is a link of the
// instance. For undirected instances the query is canonicalized first, so
// orientation does not matter.
func (in *Instance) Weight(l Link) (int, bool) {
	if in.orientation == Undirected {
		l = canonical(l.U, l.V)
	}
	w, ok := in.weights[l]

	return w, ok
}

// Weights returns a copy of the link→weight mapping.
func (in *Instance) Weights() map[Link]int {
	out := make(map[Link]int, len(in.weights))
	for l, w := range in.weights {
		out[l] = w
	}

	return out
}

// NumTerminals reports the number of distinct terminals.
func (in *Instance) NumTerminals() int { return len(in.terminals) }

// Terminals returns a copy of the distinct terminal ids in file order.
func (in *Instance) Terminals() []int {
	out := make([]int, len(in.terminals))
	copy(out, in.terminals)

	return out
}

// IsTerminal reports whether vertex v is a terminal.
func (in *Instance) IsTerminal(v int) bool {
	_, ok := in.termSet[v]

	return ok
}

// Root returns the root vertex and true for directed instances; for
// undirected instances it returns 0 and false.
func (in *Instance) Root() (int, bool) {
	if in.orientation != Directed {
		return 0, false
	}

	return in.root, true
}
