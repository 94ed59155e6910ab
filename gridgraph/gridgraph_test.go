package gridgraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewalk/compass"
)

// TestNewGridGraph_Errors checks that empty or ragged inputs are rejected.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   [][]int
		want error
	}{
		{"nil", nil, ErrEmptyGrid},
		{"empty row", [][]int{{}}, ErrEmptyGrid},
		{"ragged", [][]int{{1, 2}, {3}}, ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGridGraph(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNewGridGraph_DeepCopy verifies that later mutation of the input does
// not leak into the graph.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	in := [][]int{{1, 0}, {2, 3}}
	gg, err := NewGridGraph(in)
	require.NoError(t, err)
	in[0][0] = 9
	assert.Equal(t, 1, gg.Value(0, 0))
	assert.Equal(t, 2, gg.Width)
	assert.Equal(t, 2, gg.Height)
}

func TestNeighbor(t *testing.T) {
	gg, err := NewGridGraph([][]int{
		{0, 1, 2},
		{0, 3, 0},
	})
	require.NoError(t, err)

	cases := []struct {
		x, y int
		d    compass.Direction
		want int
		ok   bool
	}{
		{1, 0, compass.Right, 2, true},
		{1, 0, compass.Down, 3, true},
		{1, 0, compass.Left, Empty, false},
		{1, 0, compass.Up, Empty, false},
		{1, 1, compass.Up, 1, true},
		{2, 0, compass.Right, Empty, false},
	}
	for _, tc := range cases {
		got, ok := gg.Neighbor(tc.x, tc.y, tc.d)
		assert.Equal(t, tc.ok, ok, "(%d,%d) %s", tc.x, tc.y, tc.d)
		assert.Equal(t, tc.want, got, "(%d,%d) %s", tc.x, tc.y, tc.d)
	}
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	gg, err := NewGridGraph([][]int{{0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			cx, cy := gg.Coordinate(gg.index(x, y))
			assert.Equal(t, [2]int{x, y}, [2]int{cx, cy})
		}
	}
}

func TestToCoreGraph(t *testing.T) {
	gg, err := NewGridGraph([][]int{
		{0, 1, 2},
		{0, 3, 0},
		{5, 4, 0},
	})
	require.NoError(t, err)

	g, err := gg.ToCoreGraph()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
	nbrs, err := g.NeighborIDs("3")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, nbrs, "2 touches 3 only at a corner")

	v, err := g.Vertex("4")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Metadata["x"])
	assert.Equal(t, 2, v.Metadata["y"])
}

func TestToCoreGraph_DuplicateLabel(t *testing.T) {
	gg, err := NewGridGraph([][]int{{1, 0, 1}})
	require.NoError(t, err)
	_, err = gg.ToCoreGraph()
	assert.True(t, errors.Is(err, ErrDuplicateLabel))
}
