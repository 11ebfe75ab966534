package steiner

import (
	"errors"

	"github.com/kraussvitor/optinst/scan"
)

var (
	// ErrBadShape is returned when declared counts are negative, or when
	// builder input violates the instance shape (a link without a weight, a
	// weight for an unknown link, a root on an undirected instance).
	ErrBadShape = errors.New("steiner: invalid instance shape")

	// ErrBadWeight is returned when a link weight is negative.
	ErrBadWeight = errors.New("steiner: negative link weight")
)

// Aliases of the shared scan taxonomy, re-exported so callers can match
// errors.Is against this package alone. Semantically identical sentinels.
var (
	// ErrRead indicates the input source is unreadable.
	ErrRead = scan.ErrRead
	// ErrSectionNotFound indicates a required section marker never appears.
	ErrSectionNotFound = scan.ErrSectionNotFound
	// ErrUnexpectedEOF indicates a section ends before its declared content.
	ErrUnexpectedEOF = scan.ErrUnexpectedEOF
	// ErrInvalidToken indicates a non-integer token where an integer is required.
	ErrInvalidToken = scan.ErrInvalidToken
	// ErrIndexOutOfRange indicates an endpoint, terminal, or root outside
	// [1, num_vertices].
	ErrIndexOutOfRange = scan.ErrIndexOutOfRange
)
