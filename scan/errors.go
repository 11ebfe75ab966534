// Package scan: shared sentinel error set for the instance readers.
// This file defines ONLY package-level sentinel errors. Format packages wrap
// these with fmt.Errorf("...: %w", ErrX) to attach line numbers, section
// markers, or offending values; tests match them via errors.Is. No parser
// panics on user-triggered error conditions.
package scan

import "errors"

var (
	// ErrRead indicates the input source is unreadable (missing file,
	// permission, truncated stream).
	ErrRead = errors.New("scan: input unreadable")

	// ErrSectionNotFound indicates a required section marker never appears
	// in the input. The wrap carries the marker that was searched for.
	ErrSectionNotFound = errors.New("scan: section not found")

	// ErrUnexpectedEOF indicates fewer lines or tokens remain than the
	// grammar requires at a given point.
	ErrUnexpectedEOF = errors.New("scan: unexpected end of input")

	// ErrInvalidToken indicates a token expected to be an integer is not.
	// The wrap carries the offending token and, where known, its line.
	ErrInvalidToken = errors.New("scan: invalid token")

	// ErrIndexOutOfRange indicates a parsed vertex/variable/constraint index
	// falls outside its declared valid range. The wrap carries the kind of
	// index, the value, and the violated bound.
	ErrIndexOutOfRange = errors.New("scan: index out of range")
)
