// Package graphmatrix reads sparse-matrix edge-list files into immutable
// undirected Graph values.
//
// Grammar (1-based vertex ids):
//
//  1. Line 1 is a header/comment and is ignored.
//  2. Line 2: <ignored-field> num_vertices num_edges.
//  3. The next num_edges lines each carry two integers u v.
//
// Every edge is canonicalized as (min(u,v), max(u,v)) before storage, so the
// resulting edge set is undirected and free of duplicate orientations; a pair
// listed twice is stored once. Self-loops are accepted and canonicalize to
// (v, v).
//
// Errors:
//
//   - ErrUnexpectedEOF: fewer lines or fields than the grammar requires.
//   - ErrInvalidToken: a non-integer token where an integer is required.
//   - ErrIndexOutOfRange: an endpoint outside [1, num_vertices]; endpoints
//     are rejected, never clamped.
//   - ErrBadShape: negative declared vertex or edge counts.
//   - ErrRead: the input file is unreadable.
package graphmatrix
