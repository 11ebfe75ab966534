package setcover

import (
	"fmt"

	"github.com/kraussvitor/optinst/scan"
)

// Parse reads a weighted set-cover instance from in-memory text.
//
// Complexity: O(len(text)).
func Parse(text string) (*Instance, error) {
	return parseLines(scan.Lines(text))
}

// ParseFile reads a weighted set-cover instance from the file at path.
// Read failures wrap ErrRead; the file is fully consumed before parsing
// begins and is released on every exit path.
func ParseFile(path string) (*Instance, error) {
	lines, err := scan.ReadLines(path)
	if err != nil {
		return nil, err
	}

	return parseLines(lines)
}

// cursor walks the line sequence strictly left-to-right, once. Line numbers
// reported in errors are 1-based file positions.
type cursor struct {
	lines []string
	next  int
}

// nextLine consumes and returns the next line with its 1-based number,
// failing with ErrUnexpectedEOF when no lines remain.
func (c *cursor) nextLine() (string, int, error) {
	if c.next >= len(c.lines) {
		return "", 0, scan.ErrUnexpectedEOF
	}
	line := c.lines[c.next]
	c.next++

	return line, c.next, nil
}

// intStream drains whitespace-separated integers from consecutive lines of a
// cursor, flattening across line breaks. Blank lines contribute no tokens and
// are skipped. There is no lookahead: a line is consumed only when the
// previous one is exhausted.
type intStream struct {
	c      *cursor
	fields []string
	pos    int
	line   int // 1-based number of the line currently being drained
}

// next yields the next integer, refilling from the cursor as needed.
func (s *intStream) next() (int, error) {
	for s.pos >= len(s.fields) {
		line, num, err := s.c.nextLine()
		if err != nil {
			return 0, err
		}
		s.fields = scan.Fields(line)
		s.pos = 0
		s.line = num
	}
	tok := s.fields[s.pos]
	s.pos++
	n, err := scan.Int(tok)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", s.line, err)
	}

	return n, nil
}

// countLine reads one fresh line expected to carry a single integer count.
// Tokens left over from a previous flattened block are never consulted.
func countLine(c *cursor) (int, error) {
	line, num, err := c.nextLine()
	if err != nil {
		return 0, err
	}
	f := scan.Fields(line)
	if len(f) == 0 {
		return 0, fmt.Errorf("line %d: %w", num, scan.ErrUnexpectedEOF)
	}
	n, err := scan.Int(f[0])
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", num, err)
	}

	return n, nil
}

// parseLines implements the grammar over an already-split line sequence.
func parseLines(lines []string) (*Instance, error) {
	cur := &cursor{lines: lines}

	// 1) Header: num_constraints num_variables on the first line.
	header, headerNum, err := cur.nextLine()
	if err != nil {
		return nil, err
	}
	f := scan.Fields(header)
	if len(f) < 2 {
		return nil, fmt.Errorf("line %d: %w", headerNum, scan.ErrUnexpectedEOF)
	}
	numConstraints, err := scan.Int(f[0])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", headerNum, err)
	}
	numVariables, err := scan.Int(f[1])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", headerNum, err)
	}
	if numConstraints < 0 || numVariables < 0 {
		return nil, fmt.Errorf("%w: %d constraints, %d variables", ErrBadShape, numConstraints, numVariables)
	}

	// 2) Cost block: exactly numVariables integers, flattened across lines.
	costs := make([]int, numVariables)
	stream := &intStream{c: cur}
	var i int
	for i = 0; i < numVariables; i++ {
		if costs[i], err = stream.next(); err != nil {
			return nil, err
		}
	}

	// 3) Incidence lists, transposed on the fly: for each constraint c, a
	//    count line then the flattened variable indices covering c.
	covers := make(map[int][]int, numVariables)
	var c, j, n, v int
	for c = 1; c <= numConstraints; c++ {
		if n, err = countLine(cur); err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: constraint %d declares %d covering variables", ErrBadShape, c, n)
		}
		stream = &intStream{c: cur} // leftover tokens of the previous block are discarded
		for j = 0; j < n; j++ {
			if v, err = stream.next(); err != nil {
				return nil, err
			}
			if v < 1 || v > numVariables {
				return nil, fmt.Errorf("line %d: %w: variable %d outside [1, %d]",
					stream.line, scan.ErrIndexOutOfRange, v, numVariables)
			}
			covers[v] = append(covers[v], c)
		}
	}

	// 4) Freeze through the builder so file parsing and raw construction share
	//    one validation path.
	return NewInstance(numConstraints, numVariables, costs, covers)
}
