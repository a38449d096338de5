package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxclique/core"
)

func TestBuilder_FreezeMatchesFromEdges(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddEdge(1, 2))
	require.NoError(t, b.AddEdge(2, 3))
	require.NoError(t, b.AddEdge(3, 1))
	got := b.Graph()

	want, err := core.FromEdges([]core.Edge{
		{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3},
	})
	require.NoError(t, err)

	assert.True(t, got.Equal(want), "builder freeze must equal the factory graph")
}

func TestBuilder_SelfLoopRejected(t *testing.T) {
	b := core.NewBuilder()
	err := b.AddEdge(5, 5)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
	assert.Equal(t, 0, b.EdgeCount(), "rejected edge must leave no trace")
	assert.Equal(t, 0, b.NodeCount())
}

func TestBuilder_DuplicatesCollapse(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddEdge(1, 2))
	require.NoError(t, b.AddEdge(2, 1))
	b.AddNode(1).AddNode(1)

	assert.Equal(t, 1, b.EdgeCount())
	assert.Equal(t, 2, b.NodeCount())
	assert.True(t, b.HasEdge(2, 1))
}

func TestBuilder_IsolatedNodesSurviveFreeze(t *testing.T) {
	b := core.NewBuilder()
	b.AddNode(7)
	require.NoError(t, b.AddEdge(1, 2))
	g := b.Graph()

	assert.Equal(t, 3, g.NodeCount())
	assert.True(t, g.HasNode(7))
	assert.Equal(t, 0, g.Degree(7))
}

// TestBuilder_ResetAfterFreeze locks in the hand-off contract: Graph()
// transfers ownership of the working maps, so later builder mutations must
// never leak into the frozen snapshot.
func TestBuilder_ResetAfterFreeze(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddEdge(1, 2))
	first := b.Graph()

	assert.Equal(t, 0, b.NodeCount(), "builder must reset after freeze")
	assert.Equal(t, 0, b.EdgeCount())

	require.NoError(t, b.AddEdge(3, 4))
	second := b.Graph()

	assert.True(t, first.HasEdge(1, 2))
	assert.False(t, first.HasEdge(3, 4), "post-freeze mutation leaked into the first snapshot")
	assert.True(t, second.HasEdge(3, 4))
	assert.False(t, second.HasEdge(1, 2))
}
