package steiner

import "fmt"

// NewInstance assembles and validates an Instance from raw, already-parsed
// data. Links may arrive in either orientation (undirected instances
// canonicalize them) and with duplicates (the first position wins, the last
// weight wins); weights must be keyed by the links exactly as given.
//
// Every cross-field invariant is checked here even when the caller is the
// file parser, so instances built directly from raw data carry the same
// guarantees:
//
//  1. numVertices ≥ 0 (ErrBadShape).
//  2. Every link endpoint lies in [1, numVertices] (ErrIndexOutOfRange).
//  3. weights maps one-to-one onto links: a link without a weight or a
//     weight for an unknown link fails (ErrBadShape); negative weights fail
//     (ErrBadWeight).
//  4. Every terminal lies in [1, numVertices] (ErrIndexOutOfRange);
//     duplicates collapse, keeping first-seen order.
//  5. Directed instances require root in [1, numVertices]
//     (ErrIndexOutOfRange); undirected instances require root == 0
//     (ErrBadShape).
//
// All inputs are copied; the returned Instance shares no memory with the
// caller.
//
// Complexity: O(len(links) + len(terminals)).
func NewInstance(o Orientation, numVertices int, links []Link, weights map[Link]int, terminals []int, root int) (*Instance, error) {
	// 1) Shape of the declared dimension.
	if numVertices < 0 {
		return nil, fmt.Errorf("%w: %d vertices", ErrBadShape, numVertices)
	}

	// 2+3) Links, their bounds, and their weights.
	ordered := make([]Link, 0, len(links))
	frozen := make(map[Link]int, len(links))
	given := make(map[Link]struct{}, len(links))
	var l, cl Link
	var w int
	var ok bool
	for _, l = range links {
		given[l] = struct{}{}
		if l.U < 1 || l.U > numVertices {
			return nil, fmt.Errorf("%w: vertex %d outside [1, %d]", ErrIndexOutOfRange, l.U, numVertices)
		}
		if l.V < 1 || l.V > numVertices {
			return nil, fmt.Errorf("%w: vertex %d outside [1, %d]", ErrIndexOutOfRange, l.V, numVertices)
		}
		if w, ok = weights[l]; !ok {
			return nil, fmt.Errorf("%w: link (%d,%d) has no weight", ErrBadShape, l.U, l.V)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: %d on link (%d,%d)", ErrBadWeight, w, l.U, l.V)
		}
		cl = l
		if o == Undirected {
			cl = canonical(l.U, l.V)
		}
		if _, ok = frozen[cl]; !ok {
			ordered = append(ordered, cl)
		}
		frozen[cl] = w
	}
	for l = range weights {
		if _, ok = given[l]; !ok {
			return nil, fmt.Errorf("%w: weight for unknown link (%d,%d)", ErrBadShape, l.U, l.V)
		}
	}

	// 4) Terminals, bounds-checked and deduplicated in first-seen order.
	frozenTerms := make([]int, 0, len(terminals))
	termSet := make(map[int]struct{}, len(terminals))
	var v int
	for _, v = range terminals {
		if v < 1 || v > numVertices {
			return nil, fmt.Errorf("%w: terminal %d outside [1, %d]", ErrIndexOutOfRange, v, numVertices)
		}
		if _, ok = termSet[v]; ok {
			continue
		}
		termSet[v] = struct{}{}
		frozenTerms = append(frozenTerms, v)
	}

	// 5) Root, per orientation.
	if o == Directed {
		if root < 1 || root > numVertices {
			return nil, fmt.Errorf("%w: root %d outside [1, %d]", ErrIndexOutOfRange, root, numVertices)
		}
	} else if root != 0 {
		return nil, fmt.Errorf("%w: root %d on an undirected instance", ErrBadShape, root)
	}

	return &Instance{
		orientation: o,
		numVertices: numVertices,
		links:       ordered,
		weights:     frozen,
		terminals:   frozenTerms,
		termSet:     termSet,
		root:        root,
	}, nil
}
