package setcover

import (
	"errors"

	"github.com/kraussvitor/optinst/scan"
)

// ErrBadShape is returned when declared dimensions or counts are negative,
// or when builder input violates the instance shape (e.g. a cost sequence
// whose length disagrees with the declared number of variables).
var ErrBadShape = errors.New("setcover: invalid instance shape")

// Aliases of the shared scan taxonomy, re-exported so callers can match
// errors.Is against this package alone. Semantically identical sentinels.
var (
	// ErrRead indicates the input source is unreadable.
	ErrRead = scan.ErrRead
	// ErrUnexpectedEOF indicates the input ends before the grammar is satisfied.
	ErrUnexpectedEOF = scan.ErrUnexpectedEOF
	// ErrInvalidToken indicates a non-integer token where an integer is required.
	ErrInvalidToken = scan.ErrInvalidToken
	// ErrIndexOutOfRange indicates a variable or constraint index outside its
	// declared valid range.
	ErrIndexOutOfRange = scan.ErrIndexOutOfRange
)
