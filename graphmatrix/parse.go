package graphmatrix

import (
	"fmt"

	"github.com/kraussvitor/optinst/scan"
)

// Parse reads a sparse-matrix edge list from in-memory text.
//
// Complexity: O(len(text)).
func Parse(text string) (*Graph, error) {
	return parseLines(scan.Lines(text))
}

// ParseFile reads a sparse-matrix edge list from the file at path.
// Read failures wrap ErrRead.
func ParseFile(path string) (*Graph, error) {
	lines, err := scan.ReadLines(path)
	if err != nil {
		return nil, err
	}

	return parseLines(lines)
}

func parseLines(lines []string) (*Graph, error) {
	// 1) Line 1 is a header/comment; only its presence is required.
	if len(lines) < 2 {
		return nil, fmt.Errorf("line 2: %w", scan.ErrUnexpectedEOF)
	}

	// 2) Line 2: <ignored-field> num_vertices num_edges.
	f := scan.Fields(lines[1])
	if len(f) < 3 {
		return nil, fmt.Errorf("line 2: %w", scan.ErrUnexpectedEOF)
	}
	numVertices, err := scan.Int(f[1])
	if err != nil {
		return nil, fmt.Errorf("line 2: %w", err)
	}
	numEdges, err := scan.Int(f[2])
	if err != nil {
		return nil, fmt.Errorf("line 2: %w", err)
	}
	if numVertices < 0 || numEdges < 0 {
		return nil, fmt.Errorf("%w: %d vertices, %d edges", ErrBadShape, numVertices, numEdges)
	}

	// 3) numEdges lines of "u v", bounds-checked with line context.
	raw := make([]Edge, 0, numEdges)
	var e, num, u, v int
	for e = 0; e < numEdges; e++ {
		num = 3 + e // 1-based file position of this edge line
		if num-1 >= len(lines) {
			return nil, scan.ErrUnexpectedEOF
		}
		f = scan.Fields(lines[num-1])
		if len(f) < 2 {
			return nil, fmt.Errorf("line %d: %w", num, scan.ErrUnexpectedEOF)
		}
		if u, err = scan.Int(f[0]); err != nil {
			return nil, fmt.Errorf("line %d: %w", num, err)
		}
		if v, err = scan.Int(f[1]); err != nil {
			return nil, fmt.Errorf("line %d: %w", num, err)
		}
		if u < 1 || u > numVertices {
			return nil, fmt.Errorf("line %d: %w: vertex %d outside [1, %d]", num, scan.ErrIndexOutOfRange, u, numVertices)
		}
		if v < 1 || v > numVertices {
			return nil, fmt.Errorf("line %d: %w: vertex %d outside [1, %d]", num, scan.ErrIndexOutOfRange, v, numVertices)
		}
		raw = append(raw, Edge{U: u, V: v})
	}

	// 4) Canonicalization and deduplication happen in the builder so file
	//    parsing and raw construction share one validation path.
	return NewGraph(numVertices, raw)
}
