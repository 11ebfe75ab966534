package setcover

import "fmt"

// NewInstance assembles and validates an Instance from raw, already-parsed
// data: a cost per variable (costs[i] is the cost of variable i+1) and the
// variable→constraints coverage mapping keyed by 1-based variable index.
//
// Every cross-field invariant is checked here even when the caller is the
// file parser, so instances built directly from raw data carry the same
// guarantees:
//
//  1. numConstraints ≥ 0 and numVariables ≥ 0 (ErrBadShape).
//  2. len(costs) == numVariables (ErrBadShape).
//  3. Every covers key lies in [1, numVariables] (ErrIndexOutOfRange).
//  4. Every constraint index lies in [1, numConstraints] (ErrIndexOutOfRange).
//
// All inputs are copied; the returned Instance shares no memory with the
// caller. Duplicate constraint entries under one variable are preserved.
//
// Complexity: O(numVariables + pairs).
func NewInstance(numConstraints, numVariables int, costs []int, covers map[int][]int) (*Instance, error) {
	// 1) Shape of the declared dimensions.
	if numConstraints < 0 || numVariables < 0 {
		return nil, fmt.Errorf("%w: %d constraints, %d variables", ErrBadShape, numConstraints, numVariables)
	}

	// 2) The cost sequence must cover every variable exactly once.
	if len(costs) != numVariables {
		return nil, fmt.Errorf("%w: %d costs for %d variables", ErrBadShape, len(costs), numVariables)
	}
	frozenCosts := make([]int, numVariables)
	copy(frozenCosts, costs)

	// 3+4) Bounds of every recorded incidence, copied per variable.
	frozenCovers := make([][]int, numVariables)
	var pairs int
	for v, list := range covers {
		if v < 1 || v > numVariables {
			return nil, fmt.Errorf("%w: variable %d outside [1, %d]", ErrIndexOutOfRange, v, numVariables)
		}
		dst := make([]int, len(list))
		for i, c := range list {
			if c < 1 || c > numConstraints {
				return nil, fmt.Errorf("%w: constraint %d outside [1, %d]", ErrIndexOutOfRange, c, numConstraints)
			}
			dst[i] = c
		}
		frozenCovers[v-1] = dst
		pairs += len(dst)
	}

	return &Instance{
		numConstraints: numConstraints,
		numVariables:   numVariables,
		costs:          frozenCosts,
		covers:         frozenCovers,
		pairs:          pairs,
	}, nil
}
