// Package steiner reads SteinerLib-style sectioned instance files into
// immutable Instance values, for both directed and undirected problems.
//
// A file carries two labeled sections, each introduced by a marker line
// matched case-insensitively against the full trimmed line:
//
//	SECTION Graph
//	Nodes <num_vertices>
//	Edges <num_links>          (or "Arcs" — only the second field is read)
//	E <u> <v> <w>              repeated num_links times
//	SECTION Terminals
//	Terminals <num_terminals>
//	Root <vertex>              directed variant only
//	T <vertex>                 repeated num_terminals times
//
// The two sections are located by independent from-start scans, so their
// physical order in the file does not matter and a duplicate marker later in
// the file is never reached. Tokens on every counted line are filtered of
// empties before parsing, defending against irregular spacing.
//
// Orientation is the only difference between the two variants: undirected
// links are canonicalized as (min, max) while directed links keep their
// (tail, head) order, and only directed files carry a Root line. A link
// repeated in the file keeps its first position in the link list and its
// last weight (last write wins — documented grammar behavior, not defended
// against).
//
// Errors:
//
//   - ErrSectionNotFound: "section graph" or "section terminals" is absent.
//   - ErrUnexpectedEOF: a section ends before its declared content.
//   - ErrInvalidToken: a non-integer token where an integer is required.
//   - ErrIndexOutOfRange: an endpoint, terminal, or root outside
//     [1, num_vertices].
//   - ErrBadWeight: a negative link weight.
//   - ErrBadShape: negative declared counts, or builder input whose weights
//     do not map one-to-one onto its links.
//   - ErrRead: the input file is unreadable.
package steiner
