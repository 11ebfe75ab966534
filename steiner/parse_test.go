package steiner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraussvitor/optinst/steiner"
)

// undirectedSmall is the reference undirected instance: a 4-vertex path with
// weights 5, 3, 2 and terminals {1, 4}.
const undirectedSmall = `SECTION Graph
Nodes 4
Edges 3
E 1 2 5
E 2 3 3
E 3 4 2
SECTION Terminals
Terminals 2
T 1
T 4
EOF
`

// directedSmall is the same instance as arcs, with Root 1 inserted right
// after the terminal count.
const directedSmall = `SECTION Graph
Nodes 4
Arcs 3
A 1 2 5
A 2 3 3
A 3 4 2
SECTION Terminals
Terminals 2
Root 1
T 1
T 4
EOF
`

// TestParse_Undirected verifies the reference undirected instance in full.
func TestParse_Undirected(t *testing.T) {
	in, err := steiner.Parse(undirectedSmall, steiner.Undirected)
	require.NoError(t, err)

	assert.Equal(t, steiner.Undirected, in.Orientation())
	assert.Equal(t, 4, in.NumVertices())
	assert.Equal(t, []steiner.Link{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}, in.Links())
	assert.Equal(t, map[steiner.Link]int{
		{U: 1, V: 2}: 5,
		{U: 2, V: 3}: 3,
		{U: 3, V: 4}: 2,
	}, in.Weights())
	assert.Equal(t, []int{1, 4}, in.Terminals())
	assert.True(t, in.IsTerminal(4))
	assert.False(t, in.IsTerminal(2))

	_, ok := in.Root()
	assert.False(t, ok, "undirected instances carry no root")
}

// TestParse_Directed verifies the root line and that arcs keep (tail, head)
// order with no canonicalization.
func TestParse_Directed(t *testing.T) {
	in, err := steiner.Parse(directedSmall, steiner.Directed)
	require.NoError(t, err)

	assert.Equal(t, steiner.Directed, in.Orientation())
	root, ok := in.Root()
	require.True(t, ok)
	assert.Equal(t, 1, root)
	assert.Equal(t, []int{1, 4}, in.Terminals())

	// Reversed arcs stay reversed.
	rev, err := steiner.Parse(
		"SECTION Graph\nNodes 3\nArcs 1\nA 3 1 7\nSECTION Terminals\nTerminals 1\nRoot 3\nT 1\n",
		steiner.Directed)
	require.NoError(t, err)
	assert.Equal(t, []steiner.Link{{U: 3, V: 1}}, rev.Links())
	w, ok := rev.Weight(steiner.Link{U: 3, V: 1})
	require.True(t, ok)
	assert.Equal(t, 7, w)
	_, ok = rev.Weight(steiner.Link{U: 1, V: 3})
	assert.False(t, ok, "directed weight lookup must respect orientation")
}

// TestParse_UndirectedCanonicalization verifies links listed high-to-low are
// stored (min, max) and Weight queries ignore orientation.
func TestParse_UndirectedCanonicalization(t *testing.T) {
	in, err := steiner.Parse(
		"SECTION Graph\nNodes 3\nEdges 1\nE 3 1 7\nSECTION Terminals\nTerminals 1\nT 2\n",
		steiner.Undirected)
	require.NoError(t, err)

	assert.Equal(t, []steiner.Link{{U: 1, V: 3}}, in.Links())
	w, ok := in.Weight(steiner.Link{U: 3, V: 1})
	require.True(t, ok)
	assert.Equal(t, 7, w)
}

// TestParse_SectionIndependence verifies a file listing its terminals block
// before its graph block parses identically to the reference layout.
func TestParse_SectionIndependence(t *testing.T) {
	reordered := `SECTION Terminals
Terminals 2
T 1
T 4
SECTION Graph
Nodes 4
Edges 3
E 1 2 5
E 2 3 3
E 3 4 2
EOF
`
	a, err := steiner.Parse(undirectedSmall, steiner.Undirected)
	require.NoError(t, err)
	b, err := steiner.Parse(reordered, steiner.Undirected)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestParse_Deterministic verifies parsing the same text twice yields
// structurally equal instances.
func TestParse_Deterministic(t *testing.T) {
	a, err := steiner.Parse(directedSmall, steiner.Directed)
	require.NoError(t, err)
	b, err := steiner.Parse(directedSmall, steiner.Directed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestParse_RepeatedLink verifies last-write-wins weights: the repeated link
// keeps its first position and its last weight.
func TestParse_RepeatedLink(t *testing.T) {
	in, err := steiner.Parse(
		"SECTION Graph\nNodes 3\nEdges 3\nE 1 2 5\nE 2 3 4\nE 2 1 9\nSECTION Terminals\nTerminals 1\nT 1\n",
		steiner.Undirected)
	require.NoError(t, err)

	assert.Equal(t, []steiner.Link{{U: 1, V: 2}, {U: 2, V: 3}}, in.Links())
	assert.Equal(t, 2, in.NumLinks())
	w, ok := in.Weight(steiner.Link{U: 1, V: 2})
	require.True(t, ok)
	assert.Equal(t, 9, w)
}

// TestParse_MissingSection verifies fail-fast section errors that name the
// absent marker, with no partial instance.
func TestParse_MissingSection(t *testing.T) {
	noTerminals := "SECTION Graph\nNodes 2\nEdges 1\nE 1 2 1\n"
	in, err := steiner.Parse(noTerminals, steiner.Undirected)
	assert.Nil(t, in)
	require.ErrorIs(t, err, steiner.ErrSectionNotFound)
	assert.Contains(t, err.Error(), "section terminals")

	noGraph := "SECTION Terminals\nTerminals 1\nT 1\n"
	_, err = steiner.Parse(noGraph, steiner.Undirected)
	require.ErrorIs(t, err, steiner.ErrSectionNotFound)
	assert.Contains(t, err.Error(), "section graph")
}

// TestParse_Errors exercises the remaining parser failure modes.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		o    steiner.Orientation
		err  error
	}{
		{"NodesLineMissing", "SECTION Graph\n", steiner.Undirected, steiner.ErrUnexpectedEOF},
		{"NodesLineShort", "SECTION Graph\nNodes\n", steiner.Undirected, steiner.ErrUnexpectedEOF},
		{"NodesJunk", "SECTION Graph\nNodes four\n", steiner.Undirected, steiner.ErrInvalidToken},
		{"NegativeCounts", "SECTION Graph\nNodes -2\nEdges 0\n", steiner.Undirected, steiner.ErrBadShape},
		{"LinkLineMissing", "SECTION Graph\nNodes 2\nEdges 1\n", steiner.Undirected, steiner.ErrUnexpectedEOF},
		{"LinkLineShort", "SECTION Graph\nNodes 2\nEdges 1\nE 1 2\n", steiner.Undirected, steiner.ErrUnexpectedEOF},
		{"LinkJunk", "SECTION Graph\nNodes 2\nEdges 1\nE 1 2 w\n", steiner.Undirected, steiner.ErrInvalidToken},
		{"EndpointOutOfRange", "SECTION Graph\nNodes 2\nEdges 1\nE 1 3 1\n", steiner.Undirected, steiner.ErrIndexOutOfRange},
		{"NegativeWeight", "SECTION Graph\nNodes 2\nEdges 1\nE 1 2 -1\n", steiner.Undirected, steiner.ErrBadWeight},
		{
			"TerminalOutOfRange",
			"SECTION Graph\nNodes 2\nEdges 0\nSECTION Terminals\nTerminals 1\nT 3\n",
			steiner.Undirected, steiner.ErrIndexOutOfRange,
		},
		{
			"TerminalLineMissing",
			"SECTION Graph\nNodes 2\nEdges 0\nSECTION Terminals\nTerminals 2\nT 1\n",
			steiner.Undirected, steiner.ErrUnexpectedEOF,
		},
		{
			"RootLineMissing",
			"SECTION Graph\nNodes 2\nArcs 0\nSECTION Terminals\nTerminals 0\n",
			steiner.Directed, steiner.ErrUnexpectedEOF,
		},
		{
			"RootOutOfRange",
			"SECTION Graph\nNodes 2\nArcs 0\nSECTION Terminals\nTerminals 0\nRoot 5\n",
			steiner.Directed, steiner.ErrIndexOutOfRange,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := steiner.Parse(tc.in, tc.o)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_IrregularSpacing verifies empty tokens from irregular spacing are
// filtered before parsing.
func TestParse_IrregularSpacing(t *testing.T) {
	in, err := steiner.Parse(
		"SECTION Graph\nNodes   3\nEdges  1\n  E   1\t2    5 \nSECTION Terminals\nTerminals   1\n T\t3 \n",
		steiner.Undirected)
	require.NoError(t, err)

	assert.Equal(t, []steiner.Link{{U: 1, V: 2}}, in.Links())
	assert.Equal(t, []int{3}, in.Terminals())
}

// TestParseFile verifies the file entry point and its ErrRead failure mode.
func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inst.stp")
	require.NoError(t, os.WriteFile(path, []byte(undirectedSmall), 0o644))

	fromFile, err := steiner.ParseFile(path, steiner.Undirected)
	require.NoError(t, err)
	fromText, err := steiner.Parse(undirectedSmall, steiner.Undirected)
	require.NoError(t, err)
	assert.Equal(t, fromText, fromFile)

	_, err = steiner.ParseFile(filepath.Join(dir, "absent.stp"), steiner.Directed)
	assert.ErrorIs(t, err, steiner.ErrRead)
}
