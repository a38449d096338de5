package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxclique/core"
)

func TestNewEdge_Canonicalizes(t *testing.T) {
	ab, err := core.NewEdge(2, 1)
	require.NoError(t, err)
	assert.Equal(t, core.Node(1), ab.U)
	assert.Equal(t, core.Node(2), ab.V)

	ba, err := core.NewEdge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, ab, ba, "endpoint order must not matter")
}

func TestNewEdge_SelfLoop(t *testing.T) {
	_, err := core.NewEdge(7, 7)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestEdge_Other(t *testing.T) {
	e, err := core.NewEdge(3, 9)
	require.NoError(t, err)

	n, ok := e.Other(3)
	assert.True(t, ok)
	assert.Equal(t, core.Node(9), n)

	n, ok = e.Other(9)
	assert.True(t, ok)
	assert.Equal(t, core.Node(3), n)

	_, ok = e.Other(5)
	assert.False(t, ok, "non-endpoint must report false")
}

func TestNodeSet_Basics(t *testing.T) {
	s := core.NewNodeSet(3, 1, 2, 1)

	assert.Equal(t, 3, s.Len(), "duplicates must collapse")
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(4))

	s.Add(4)
	assert.True(t, s.Contains(4))

	s.Remove(4)
	assert.False(t, s.Contains(4))
	s.Remove(4) // absent removal is a no-op

	assert.Equal(t, []core.Node{1, 2, 3}, s.Sorted())
}

func TestNodeSet_CloneIsIndependent(t *testing.T) {
	s := core.NewNodeSet(1, 2)
	c := s.Clone()

	c.Add(3)
	assert.False(t, s.Contains(3), "mutating the clone must not touch the original")
	assert.True(t, c.Contains(3))
}

func TestNodeSet_Intersect(t *testing.T) {
	a := core.NewNodeSet(1, 2, 3, 4)
	b := core.NewNodeSet(3, 4, 5)

	got := a.Intersect(b)
	assert.Equal(t, []core.Node{3, 4}, got.Sorted())

	// Symmetric regardless of which operand is smaller.
	assert.True(t, got.Equal(b.Intersect(a)))

	// Disjoint operands intersect to the empty set.
	assert.Equal(t, 0, a.Intersect(core.NewNodeSet(9)).Len())

	// Intersection is a fresh set, not a view.
	got.Add(99)
	assert.False(t, a.Contains(99))
	assert.False(t, b.Contains(99))
}

func TestNodeSet_Equal(t *testing.T) {
	assert.True(t, core.NewNodeSet(1, 2).Equal(core.NewNodeSet(2, 1)))
	assert.False(t, core.NewNodeSet(1, 2).Equal(core.NewNodeSet(1)))
	assert.False(t, core.NewNodeSet(1, 2).Equal(core.NewNodeSet(1, 3)))
	assert.True(t, core.NewNodeSet().Equal(core.NewNodeSet()))
}
