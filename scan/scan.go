package scan

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Lines splits raw text into an ordered sequence of trimmed lines.
// Leading and trailing whitespace (including a trailing \r from CRLF input)
// is removed from each line; blank lines are preserved so that line indices
// map 1:1 onto the original file. Empty input yields an empty sequence.
//
// Complexity: O(len(text)).
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	out := make([]string, len(raw))
	var i int
	var line string
	for i, line = range raw {
		out[i] = strings.TrimSpace(line)
	}

	return out
}

// Fields tokenizes a single line into its ordered, non-empty,
// whitespace-delimited fields. Repeated delimiters produce no empty fields.
//
// Complexity: O(len(line)).
func Fields(line string) []string {
	return strings.Fields(line)
}

// Int converts one token to an integer. A token that is not a valid base-10
// integer fails with ErrInvalidToken wrapped around the offending token;
// callers attach line context with a further %w wrap.
func Int(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	return n, nil
}

// ReadLines reads the file at path in full and returns its trimmed lines.
// Read failures wrap ErrRead; the underlying file handle is scoped entirely
// to this call and released on every exit path.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return Lines(string(data)), nil
}
