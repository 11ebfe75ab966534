// Package scan provides the line-level utilities shared by every instance
// reader in optinst: line splitting, whitespace tokenizing, integer token
// conversion, section location, and the sentinel error taxonomy that all
// format packages wrap and re-export.
//
// What:
//
//   - Lines splits raw text into an ordered sequence of trimmed lines,
//     preserving blank lines and original order.
//   - Fields tokenizes one line into non-empty whitespace-delimited fields.
//   - Int converts a single token to an integer, failing with ErrInvalidToken.
//   - LocateSection finds a section marker by exact, case-insensitive match
//     of a full line and returns the index of the line that follows it.
//   - ReadLines reads a whole file and applies Lines.
//
// Why:
//
//   - Every instance grammar in this module is line-oriented with 1-based
//     external indices and irregular spacing; centralizing the splitting and
//     the error set keeps the three format parsers small and consistent.
//
// Errors:
//
//   - ErrRead: the input source could not be read.
//   - ErrSectionNotFound: a required section marker never appears.
//   - ErrUnexpectedEOF: fewer lines or tokens remain than the grammar requires.
//   - ErrInvalidToken: a token expected to be an integer is not.
//   - ErrIndexOutOfRange: a parsed index falls outside its declared range.
//
// All sentinels are matched with errors.Is; call sites add context (line
// numbers, markers, offending values) by wrapping with fmt.Errorf and %w.
package scan
