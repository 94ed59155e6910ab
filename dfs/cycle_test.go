package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewalk/core"
	"github.com/katalvlaran/cubewalk/dfs"
)

func graph(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// TestDetectCycles_NilGraph verifies DetectCycles handles nil input without error.
func TestDetectCycles_NilGraph(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(nil)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

// TestDetectCycles_Tree ensures a net-shaped tree has no cycle.
//
//	. . 1 .
//	2 3 4 .
//	. . 5 6
func TestDetectCycles_Tree(t *testing.T) {
	g := graph(t, [2]string{"1", "4"}, [2]string{"2", "3"}, [2]string{"3", "4"},
		[2]string{"4", "5"}, [2]string{"5", "6"})

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cycles)
}

// TestDetectCycles_Rectangle finds both squares of a 2×3 block rectangle.
//
//	1 2 3
//	4 5 6
func TestDetectCycles_Rectangle(t *testing.T) {
	g := graph(t,
		[2]string{"1", "2"}, [2]string{"2", "3"},
		[2]string{"4", "5"}, [2]string{"5", "6"},
		[2]string{"1", "4"}, [2]string{"2", "5"}, [2]string{"3", "6"},
	)

	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Len(t, cycles, 2)
	for _, c := range cycles {
		assert.Equal(t, c[0], c[len(c)-1], "closed cycle %v", c)
		assert.GreaterOrEqual(t, len(c), 5, "at least four vertices in %v", c)
	}
}

// TestDetectCycles_Canonical checks rotation and orientation of a triangle
// discovered from a non-minimal vertex.
func TestDetectCycles_Canonical(t *testing.T) {
	g := graph(t, [2]string{"C", "B"}, [2]string{"B", "A"}, [2]string{"A", "C"})

	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "C", "A"}}, cycles)
}

// TestDetectCycles_Forest treats separate components independently.
func TestDetectCycles_Forest(t *testing.T) {
	g := graph(t, [2]string{"A", "B"}, [2]string{"X", "Y"}, [2]string{"Y", "Z"}, [2]string{"Z", "X"})

	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"X", "Y", "Z", "X"}}, cycles)
}
