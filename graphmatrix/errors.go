package graphmatrix

import (
	"errors"

	"github.com/kraussvitor/optinst/scan"
)

// ErrBadShape is returned when declared vertex or edge counts are negative.
var ErrBadShape = errors.New("graphmatrix: invalid graph shape")

// Aliases of the shared scan taxonomy, re-exported so callers can match
// errors.Is against this package alone. Semantically identical sentinels.
var (
	// ErrRead indicates the input source is unreadable.
	ErrRead = scan.ErrRead
	// ErrUnexpectedEOF indicates the input ends before the grammar is satisfied.
	ErrUnexpectedEOF = scan.ErrUnexpectedEOF
	// ErrInvalidToken indicates a non-integer token where an integer is required.
	ErrInvalidToken = scan.ErrInvalidToken
	// ErrIndexOutOfRange indicates an edge endpoint outside [1, num_vertices].
	ErrIndexOutOfRange = scan.ErrIndexOutOfRange
)
