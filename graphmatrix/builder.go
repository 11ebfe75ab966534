package graphmatrix

import "fmt"

// NewGraph assembles and validates a Graph from raw, already-parsed edges.
// Edges may arrive in either orientation and with duplicates; each is
// canonicalized as (min, max) and stored once, in first-seen order.
//
// Every invariant is checked here even when the caller is the file parser,
// so graphs built directly from raw data carry the same guarantees:
//
//  1. numVertices ≥ 0 (ErrBadShape).
//  2. Every endpoint lies in [1, numVertices] (ErrIndexOutOfRange) —
//     rejected, never clamped.
//
// The input slice is not retained; the returned Graph shares no memory with
// the caller.
//
// Complexity: O(len(edges)).
func NewGraph(numVertices int, edges []Edge) (*Graph, error) {
	if numVertices < 0 {
		return nil, fmt.Errorf("%w: %d vertices", ErrBadShape, numVertices)
	}

	index := make(map[Edge]struct{}, len(edges))
	ordered := make([]Edge, 0, len(edges))
	var e, c Edge
	for _, e = range edges {
		if e.U < 1 || e.U > numVertices {
			return nil, fmt.Errorf("%w: vertex %d outside [1, %d]", ErrIndexOutOfRange, e.U, numVertices)
		}
		if e.V < 1 || e.V > numVertices {
			return nil, fmt.Errorf("%w: vertex %d outside [1, %d]", ErrIndexOutOfRange, e.V, numVertices)
		}
		c = canonical(e.U, e.V)
		if _, dup := index[c]; dup {
			continue
		}
		index[c] = struct{}{}
		ordered = append(ordered, c)
	}

	return &Graph{numVertices: numVertices, edges: ordered, index: index}, nil
}
