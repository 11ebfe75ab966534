package steiner

import (
	"fmt"

	"github.com/kraussvitor/optinst/scan"
)

// Section markers, matched case-insensitively against full trimmed lines.
const (
	sectionGraph     = "section graph"
	sectionTerminals = "section terminals"
)

// Parse reads a Steiner-tree instance of the given orientation from
// in-memory text.
//
// Complexity: O(len(text)).
func Parse(text string, o Orientation) (*Instance, error) {
	return parseLines(scan.Lines(text), o)
}

// ParseFile reads a Steiner-tree instance of the given orientation from the
// file at path. Read failures wrap ErrRead.
func ParseFile(path string, o Orientation) (*Instance, error) {
	lines, err := scan.ReadLines(path)
	if err != nil {
		return nil, err
	}

	return parseLines(lines, o)
}

// labeledInt reads the second field of the line at 0-based index idx, the
// "<label> value" shape every sectioned line uses. Fields are filtered of
// empties by scan.Fields, defending against irregular spacing.
func labeledInt(lines []string, idx int) (int, error) {
	if idx >= len(lines) {
		return 0, scan.ErrUnexpectedEOF
	}
	f := scan.Fields(lines[idx])
	if len(f) < 2 {
		return 0, fmt.Errorf("line %d: %w", idx+1, scan.ErrUnexpectedEOF)
	}
	n, err := scan.Int(f[1])
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", idx+1, err)
	}

	return n, nil
}

// parseLines runs the shared grammar engine: two independent from-start
// section scans over the same line sequence, so section order in the file is
// irrelevant.
func parseLines(lines []string, o Orientation) (*Instance, error) {
	// 1) Graph section.
	numVertices, links, weights, err := parseGraphSection(lines, o)
	if err != nil {
		return nil, err
	}

	// 2) Terminals section, an independent scan of the same lines.
	terminals, root, err := parseTerminalsSection(lines, o, numVertices)
	if err != nil {
		return nil, err
	}

	// 3) Freeze through the builder so file parsing and raw construction
	//    share one validation path.
	return NewInstance(o, numVertices, links, weights, terminals, root)
}

// parseGraphSection locates "section graph" and reads the vertex count, link
// count, and the weighted link lines.
func parseGraphSection(lines []string, o Orientation) (int, []Link, map[Link]int, error) {
	start, err := scan.LocateSection(lines, sectionGraph)
	if err != nil {
		return 0, nil, nil, err
	}

	numVertices, err := labeledInt(lines, start)
	if err != nil {
		return 0, nil, nil, err
	}
	numLinks, err := labeledInt(lines, start+1)
	if err != nil {
		return 0, nil, nil, err
	}
	if numVertices < 0 || numLinks < 0 {
		return 0, nil, nil, fmt.Errorf("%w: %d vertices, %d links", ErrBadShape, numVertices, numLinks)
	}

	links := make([]Link, 0, numLinks)
	weights := make(map[Link]int, numLinks)
	var k, idx, num, u, v, w int
	var f []string
	var l Link
	for k = 0; k < numLinks; k++ {
		idx = start + 2 + k
		num = idx + 1 // 1-based file position
		if idx >= len(lines) {
			return 0, nil, nil, scan.ErrUnexpectedEOF
		}
		// "<marker> u v w"; empties are already filtered by Fields.
		if f = scan.Fields(lines[idx]); len(f) < 4 {
			return 0, nil, nil, fmt.Errorf("line %d: %w", num, scan.ErrUnexpectedEOF)
		}
		if u, err = scan.Int(f[1]); err != nil {
			return 0, nil, nil, fmt.Errorf("line %d: %w", num, err)
		}
		if v, err = scan.Int(f[2]); err != nil {
			return 0, nil, nil, fmt.Errorf("line %d: %w", num, err)
		}
		if w, err = scan.Int(f[3]); err != nil {
			return 0, nil, nil, fmt.Errorf("line %d: %w", num, err)
		}
		if u < 1 || u > numVertices {
			return 0, nil, nil, fmt.Errorf("line %d: %w: vertex %d outside [1, %d]", num, scan.ErrIndexOutOfRange, u, numVertices)
		}
		if v < 1 || v > numVertices {
			return 0, nil, nil, fmt.Errorf("line %d: %w: vertex %d outside [1, %d]", num, scan.ErrIndexOutOfRange, v, numVertices)
		}
		if w < 0 {
			return 0, nil, nil, fmt.Errorf("line %d: %w: %d", num, ErrBadWeight, w)
		}

		// Undirected links are canonicalized; directed keep (tail, head).
		l = Link{U: u, V: v}
		if o == Undirected {
			l = canonical(u, v)
		}
		// A repeated link keeps its first position; its weight is the one
		// last assigned.
		if _, seen := weights[l]; !seen {
			links = append(links, l)
		}
		weights[l] = w
	}

	return numVertices, links, weights, nil
}

// parseTerminalsSection locates "section terminals" and reads the terminal
// count, the root line for directed instances, and the terminal lines.
func parseTerminalsSection(lines []string, o Orientation, numVertices int) ([]int, int, error) {
	start, err := scan.LocateSection(lines, sectionTerminals)
	if err != nil {
		return nil, 0, err
	}

	numTerminals, err := labeledInt(lines, start)
	if err != nil {
		return nil, 0, err
	}
	if numTerminals < 0 {
		return nil, 0, fmt.Errorf("%w: %d terminals", ErrBadShape, numTerminals)
	}

	next := start + 1
	var root int
	if o == Directed {
		if root, err = labeledInt(lines, next); err != nil {
			return nil, 0, err
		}
		if root < 1 || root > numVertices {
			return nil, 0, fmt.Errorf("line %d: %w: root %d outside [1, %d]", next+1, scan.ErrIndexOutOfRange, root, numVertices)
		}
		next++
	}

	terminals := make([]int, 0, numTerminals)
	seen := make(map[int]struct{}, numTerminals)
	var k, v int
	for k = 0; k < numTerminals; k++ {
		if v, err = labeledInt(lines, next+k); err != nil {
			return nil, 0, err
		}
		if v < 1 || v > numVertices {
			return nil, 0, fmt.Errorf("line %d: %w: terminal %d outside [1, %d]", next+k+1, scan.ErrIndexOutOfRange, v, numVertices)
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		terminals = append(terminals, v)
	}

	return terminals, root, nil
}
