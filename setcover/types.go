package setcover

import "fmt"

// Instance is an immutable weighted set-cover instance: a cost per variable
// and, for each variable, the ordered list of constraints it covers (the
// transpose of the file's constraint→variables incidence lists).
//
// An Instance holds no reference to the text it was parsed from; accessors
// return copies, so a caller can never mutate the underlying data.
type Instance struct {
	numConstraints int
	numVariables   int
	// costs[i] is the cost of variable i+1.
	costs []int
	// covers[i] lists, in recording order, the constraints covered by
	// variable i+1. Duplicates are preserved: a variable listed twice under
	// one constraint appears twice.
	covers [][]int
	// pairs is the total number of (variable, constraint) incidences recorded.
	pairs int
}

// NumConstraints reports the declared number of constraints.
func (in *Instance) NumConstraints() int { return in.numConstraints }

// NumVariables reports the declared number of variables.
func (in *Instance) NumVariables() int { return in.numVariables }

// NumPairs reports the total number of (variable, constraint) incidences,
// i.e. the sum of the per-constraint counts read from the file.
func (in *Instance) NumPairs() int { return in.pairs }

// Cost returns the cost of variable v (1-based). A variable outside
// [1, NumVariables] fails with ErrIndexOutOfRange; it never panics.
func (in *Instance) Cost(v int) (int, error) {
	if v < 1 || v > in.numVariables {
		return 0, fmt.Errorf("%w: variable %d outside [1, %d]", ErrIndexOutOfRange, v, in.numVariables)
	}

	return in.costs[v-1], nil
}

// Costs returns a copy of the cost sequence; entry i holds the cost of
// variable i+1.
func (in *Instance) Costs() []int {
	out := make([]int, len(in.costs))
	copy(out, in.costs)

	return out
}

// Covers returns a copy of the ordered constraint list covered by variable v
// (1-based). A variable outside [1, NumVariables] fails with
// ErrIndexOutOfRange. A covering variable that appears in no constraint
// yields an empty list.
func (in *Instance) Covers(v int) ([]int, error) {
	if v < 1 || v > in.numVariables {
		return nil, fmt.Errorf("%w: variable %d outside [1, %d]", ErrIndexOutOfRange, v, in.numVariables)
	}
	out := make([]int, len(in.covers[v-1]))
	copy(out, in.covers[v-1])

	return out, nil
}
