package topology_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cubewalk/compass"
	"github.com/katalvlaran/cubewalk/topology"
)

// TestOppositeEdge_BackIsSymmetric checks that the shared-side relation is
// its own inverse for every side and orientation.
func TestOppositeEdge_BackIsSymmetric(t *testing.T) {
	for _, side := range compass.Directions {
		for _, o := range compass.Directions {
			back := topology.OppositeEdge{Face: 2, Orientation: o}.Back(side)
			// The neighbour's entry has the orientation that maps back to side.
			rev := topology.OppositeEdge{Face: 1, Orientation: back.Turned(1 - int(side))}
			assert.Equal(t, side, rev.Back(back), "side %s orientation %s", side, o)
		}
	}
	flat := topology.OppositeEdge{Face: 2, Orientation: compass.Up}
	for _, side := range compass.Directions {
		assert.Equal(t, side.Opposite(), flat.Back(side))
	}
}

func TestTopology_Graph(t *testing.T) {
	topo, err := topology.New(crossTable)
	require.NoError(t, err)

	g, err := topo.Graph()
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())
	for _, id := range g.Vertices() {
		deg, err := g.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, 4, deg, "face %s", id)
	}
	for _, pair := range [][2]string{{"1", "5"}, {"2", "4"}, {"3", "6"}} {
		nbrs, err := g.NeighborIDs(pair[0])
		require.NoError(t, err)
		assert.NotContains(t, nbrs, pair[1], "opposite faces %v", pair)
	}

	seams, err := topo.Seams()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"1.RIGHT-6.RIGHT", "1.DOWN-4.UP", "1.LEFT-3.UP", "1.UP-2.UP",
		"2.RIGHT-3.LEFT", "2.DOWN-5.DOWN", "2.LEFT-6.DOWN",
		"3.RIGHT-4.LEFT", "3.DOWN-5.LEFT",
		"4.RIGHT-6.UP", "4.DOWN-5.UP",
		"5.RIGHT-6.LEFT",
	}, seams)
}

func TestNew_Rejects(t *testing.T) {
	var empty [topology.FaceCount][4]topology.OppositeEdge
	_, err := topology.New(empty)
	assert.ErrorIs(t, err, topology.ErrInvalidTopologyCount)

	// Face 1's right side claims face 6's left side, which points elsewhere.
	broken := crossTable
	broken[0][compass.Right] = oe(6, compass.Up)
	_, err = topology.New(broken)
	assert.ErrorIs(t, err, topology.ErrAmbiguousTopology)
}

func TestTopology_YAML(t *testing.T) {
	topo, err := topology.New(stairTable)
	require.NoError(t, err)

	out, err := yaml.Marshal(topo)
	require.NoError(t, err)

	var doc topology.Document
	require.NoError(t, yaml.Unmarshal(out, &doc))
	require.Len(t, doc.Sides, 24)
	assert.Equal(t, topology.Entry{
		Face:         1,
		Side:         "LEFT",
		Neighbor:     4,
		NeighborSide: "LEFT",
		Orientation:  "DOWN",
	}, doc.Sides[2])
	assert.Equal(t, topo.Entries(), doc.Sides)
	assert.Len(t, doc.Seams, 12)
	assert.Contains(t, doc.Seams, "1.LEFT-4.LEFT")
}

// ExampleResolve folds the cross-shaped net and prints where each side of
// each face leads.
func ExampleResolve() {
	gg := mustLayout(crossLayout)
	topo, err := topology.Resolve(gg)
	if err != nil {
		fmt.Println(err)
		return
	}
	for f := 1; f <= topology.FaceCount; f++ {
		fmt.Printf("%d:", f)
		for _, d := range compass.Directions {
			fmt.Printf(" %s", topo.Neighbor(topology.Edge{Face: f, Dir: d}))
		}
		fmt.Println()
	}

	// Output:
	// 1: 6.RIGHT 4.UP 3.UP 2.UP
	// 2: 3.LEFT 5.DOWN 6.DOWN 1.UP
	// 3: 4.LEFT 5.LEFT 2.RIGHT 1.LEFT
	// 4: 6.UP 5.UP 3.RIGHT 1.DOWN
	// 5: 6.LEFT 2.DOWN 3.DOWN 4.DOWN
	// 6: 1.RIGHT 2.LEFT 5.RIGHT 4.RIGHT
}
