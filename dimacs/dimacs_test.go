// Tests for the DIMACS codec.
//
// Focus:
//  1. Read understands comments, blank lines, duplicate and reversed
//     edge records, and keeps declared-but-isolated vertices.
//  2. Every malformed document maps to its sentinel, with the line
//     number in the message.
//  3. Write output is deterministic and canonical; Read ∘ Write is the
//     identity on parsed graphs.
//  4. The file wrappers round-trip through the filesystem.
package dimacs_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxclique/builder"
	"github.com/katalvlaran/maxclique/core"
	"github.com/katalvlaran/maxclique/dimacs"
)

func TestRead_Document(t *testing.T) {
	t.Parallel()

	const doc = `
c DIMACS benchmark, mixed with noise the parser must skip
c
p edge 5 4

e 1 2
e 2 3
e 3 1
e 3 2
e 4 2
`
	g, err := dimacs.Read(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 5, g.NodeCount(), "all declared vertices exist, including isolated 5")
	assert.Equal(t, 4, g.EdgeCount(), "duplicate and reversed records collapse")
	assert.True(t, g.HasNode(5))
	assert.True(t, g.HasEdge(1, 3))
	assert.True(t, g.HasEdge(2, 4))
	assert.False(t, g.HasEdge(4, 5))
}

func TestRead_ColFormat(t *testing.T) {
	t.Parallel()

	g, err := dimacs.Read(strings.NewReader("p col 3 2\ne 1 2\ne 2 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty input", "", dimacs.ErrBadHeader},
		{"comments only", "c nothing here\n", dimacs.ErrBadHeader},
		{"edge before header", "e 1 2\np edge 2 1\n", dimacs.ErrBadHeader},
		{"short problem line", "p edge 4\n", dimacs.ErrBadHeader},
		{"unknown format", "p graph 4 2\n", dimacs.ErrBadHeader},
		{"negative vertex count", "p edge -1 0\n", dimacs.ErrBadHeader},
		{"non-numeric vertex count", "p edge five 2\n", dimacs.ErrBadHeader},
		{"non-numeric edge count", "p edge 5 two\n", dimacs.ErrBadHeader},
		{"duplicate problem line", "p edge 2 1\np edge 2 1\n", dimacs.ErrBadHeader},
		{"short edge record", "p edge 3 1\ne 1\n", dimacs.ErrBadRecord},
		{"non-numeric endpoint", "p edge 3 1\ne 1 x\n", dimacs.ErrBadRecord},
		{"unknown record type", "p edge 3 1\nq 1 2\n", dimacs.ErrBadRecord},
		{"endpoint zero", "p edge 3 1\ne 0 2\n", dimacs.ErrNodeRange},
		{"endpoint above n", "p edge 3 1\ne 1 4\n", dimacs.ErrNodeRange},
		{"self-loop", "p edge 3 1\ne 2 2\n", core.ErrSelfLoop},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := dimacs.Read(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRead_ErrorCarriesLineNumber(t *testing.T) {
	t.Parallel()

	_, err := dimacs.Read(strings.NewReader("c one\np edge 3 2\ne 1 2\ne 9 1\n"))
	require.ErrorIs(t, err, dimacs.ErrNodeRange)
	assert.Contains(t, err.Error(), "line 4")
}

func TestWrite_Canonical(t *testing.T) {
	t.Parallel()

	// Nodes 10, 20, 30 renumber to 1, 2, 3 in ascending order.
	g, err := core.FromEdges([]core.Edge{
		{U: 30, V: 10},
		{U: 20, V: 30},
	})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, dimacs.Write(&sb, g))
	assert.Equal(t, "p edge 3 2\ne 1 3\ne 2 3\n", sb.String())
}

func TestWrite_EmptyAndNil(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, dimacs.Write(&sb, core.NewGraph()))
	assert.Equal(t, "p edge 0 0\n", sb.String())

	require.ErrorIs(t, dimacs.Write(&sb, nil), dimacs.ErrNilGraph)
}

func TestRoundTrip_Fixpoint(t *testing.T) {
	t.Parallel()

	// A graph that came from Read writes back byte-identically.
	const canonical = "p edge 4 3\ne 1 2\ne 1 4\ne 3 4\n"
	g, err := dimacs.Read(strings.NewReader(canonical))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, dimacs.Write(&sb, g))
	assert.Equal(t, canonical, sb.String())

	// Arbitrary graphs stabilize after one Write: renumbering is
	// idempotent from then on.
	rg, err := builder.RandomGraph(24, 0.3, builder.WithSeed(17))
	require.NoError(t, err)

	var first strings.Builder
	require.NoError(t, dimacs.Write(&first, rg))
	back, err := dimacs.Read(strings.NewReader(first.String()))
	require.NoError(t, err)
	assert.Equal(t, rg.NodeCount(), back.NodeCount())
	assert.Equal(t, rg.EdgeCount(), back.EdgeCount())

	var second strings.Builder
	require.NoError(t, dimacs.Write(&second, back))
	assert.Equal(t, first.String(), second.String())
}

func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Wheel(7))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wheel7.clq")
	require.NoError(t, dimacs.WriteFile(path, g))

	back, err := dimacs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.NodeCount(), back.NodeCount())
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())
}

func TestReadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := dimacs.ReadFile(filepath.Join(t.TempDir(), "absent.clq"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, dimacs.ErrBadHeader), "an I/O failure is not a format error")
}
