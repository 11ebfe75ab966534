// Package setcover reads OR-Library-style weighted set-cover instances into
// immutable Instance values.
//
// Grammar (1-based indices throughout):
//
//  1. First line: two integers, num_constraints num_variables.
//  2. A cost block: whitespace-separated integers, flattened greedily across
//     as many lines as needed, until exactly num_variables have been read;
//     these are the variable costs in order.
//  3. For each constraint c from 1 to num_constraints, in order:
//     a line with a single integer n (how many variables cover c), then
//     enough lines, flattened, to collect exactly n variable indices.
//     Each collected index v records c in the coverage list of v.
//
// The in-memory mapping is the transpose of the file's constraint→variables
// incidence lists, built incrementally during the scan and frozen into the
// Instance. Tokens left over on the final line of a flattened block are
// discarded; the next count always starts a fresh line.
//
// Why:
//
//   - Set-covering solvers (IP formulations, relax-and-cut, local search)
//     consume per-variable cost and coverage views, not the file's
//     per-constraint layout.
//
// Errors:
//
//   - ErrUnexpectedEOF: the file ends before the grammar is satisfied.
//   - ErrInvalidToken: a non-integer token where an integer is required.
//   - ErrIndexOutOfRange: a variable index outside [1, num_variables].
//   - ErrBadShape: negative declared dimensions or counts, or builder input
//     whose cost count disagrees with num_variables.
//   - ErrRead: the input file is unreadable.
//
// All are matched with errors.Is; wraps carry the offending line and value.
package setcover
