package scan

import (
	"fmt"
	"strings"
)

// LocateSection scans lines from the start for the first line whose trimmed,
// case-folded content equals the case-folded marker (a full-line match, not a
// substring match) and returns the index of the line immediately after it.
// If the marker never occurs, the scan fails with ErrSectionNotFound wrapped
// around the marker.
//
// Each call is an independent from-start scan: locating two sections of the
// same file is order-insensitive, and a duplicate marker later in the file is
// never reached.
//
// Complexity: O(len(lines)).
func LocateSection(lines []string, marker string) (int, error) {
	want := strings.ToLower(strings.TrimSpace(marker))
	var i int
	var line string
	for i, line = range lines {
		// Lines are pre-trimmed by Lines; fold case only.
		if strings.ToLower(line) == want {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrSectionNotFound, marker)
}
