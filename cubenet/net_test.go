package cubenet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewalk/compass"
	"github.com/katalvlaran/cubewalk/cubenet"
	"github.com/katalvlaran/cubewalk/internal/nettest"
)

func exampleNet(t *testing.T) *cubenet.Net {
	t.Helper()
	grid, err := cubenet.ParseGrid(nettest.ExampleRows())
	require.NoError(t, err)
	net, err := cubenet.Extract(grid, 4)
	require.NoError(t, err)

	return net
}

func TestParseGrid(t *testing.T) {
	g, err := cubenet.ParseGrid([]string{"  .#", "..", ""})
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, cubenet.Void, g.At(cubenet.Coord{X: 0, Y: 0}))
	assert.Equal(t, cubenet.Open, g.At(cubenet.Coord{X: 2, Y: 0}))
	assert.Equal(t, cubenet.Wall, g.At(cubenet.Coord{X: 3, Y: 0}))
	assert.Equal(t, cubenet.Void, g.At(cubenet.Coord{X: 3, Y: 1}), "padded")
	assert.Equal(t, cubenet.Void, g.At(cubenet.Coord{X: -1, Y: 0}))
	assert.Equal(t, "..  ", g.Row(1))

	_, err = cubenet.ParseGrid([]string{"..x"})
	assert.ErrorIs(t, err, cubenet.ErrMalformedNet)
}

func TestExtract_Example(t *testing.T) {
	net := exampleNet(t)

	assert.Equal(t, 4, net.Size())
	assert.Equal(t, 16, net.Width())
	assert.Equal(t, 12, net.Height())
	assert.Equal(t, cubenet.Coord{X: 8, Y: 0}, net.Start())

	wantBlocks := []cubenet.Coord{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}}
	faces := net.Faces()
	require.Len(t, faces, cubenet.FaceCount)
	for i, f := range faces {
		assert.Equal(t, i+1, f.ID)
		assert.Equal(t, wantBlocks[i], f.Block, "face %d", f.ID)
		got, ok := net.Face(f.ID)
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
	_, ok := net.Face(0)
	assert.False(t, ok)
	_, ok = net.Face(7)
	assert.False(t, ok)

	layout := net.Layout()
	assert.Equal(t, [][]int{{0, 0, 1, 0}, {2, 3, 4, 0}, {0, 0, 5, 6}}, layout.CellValues)
}

// side collects the tiles along side d of f.
func side(f cubenet.Face, d compass.Direction) []cubenet.Coord {
	var out []cubenet.Coord
	for i := 0; ; i++ {
		c, ok := f.BoundaryTile(d, i)
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

// TestFace_Boundary checks the clockwise ordering of every side of face 1.
func TestFace_Boundary(t *testing.T) {
	f, ok := exampleNet(t).Face(1)
	require.True(t, ok)
	c := func(x, y int) cubenet.Coord { return cubenet.Coord{X: x, Y: y} }

	assert.Equal(t, []cubenet.Coord{c(8, 0), c(9, 0), c(10, 0), c(11, 0)}, side(f, compass.Up))
	assert.Equal(t, []cubenet.Coord{c(11, 0), c(11, 1), c(11, 2), c(11, 3)}, side(f, compass.Right))
	assert.Equal(t, []cubenet.Coord{c(11, 3), c(10, 3), c(9, 3), c(8, 3)}, side(f, compass.Down))
	assert.Equal(t, []cubenet.Coord{c(8, 3), c(8, 2), c(8, 1), c(8, 0)}, side(f, compass.Left))
	assert.Empty(t, side(f, compass.Direction(4)))

	for _, d := range compass.Directions {
		for i, p := range side(f, d) {
			got, ok := f.BoundaryIndex(p, d)
			assert.True(t, ok, "%v on %s", p, d)
			assert.Equal(t, i, got, "%v on %s", p, d)
		}
	}
	_, ok = f.BoundaryTile(compass.Up, -1)
	assert.False(t, ok)
	_, ok = f.BoundaryIndex(c(9, 1), compass.Up)
	assert.False(t, ok, "interior tile")
	_, ok = f.BoundaryIndex(c(0, 4), compass.Up)
	assert.False(t, ok, "other face")
}

// TestNet_Immutable checks that what a Net hands out cannot change it.
func TestNet_Immutable(t *testing.T) {
	net := exampleNet(t)

	f, _ := net.Face(1)
	f.Origin = cubenet.Coord{X: 0, Y: 4}
	faces := net.Faces()
	faces[0].Origin = cubenet.Coord{X: 0, Y: 4}
	faces[1] = faces[0]
	net.Layout().CellValues[0][2] = 0

	again, ok := net.Face(1)
	require.True(t, ok)
	assert.Equal(t, cubenet.Coord{X: 8, Y: 0}, again.Origin)
	assert.Equal(t, []cubenet.Coord{{X: 11, Y: 0}, {X: 11, Y: 1}, {X: 11, Y: 2}, {X: 11, Y: 3}}, side(again, compass.Right))
	got, ok := net.FaceAt(cubenet.Coord{X: 8, Y: 0})
	require.True(t, ok)
	assert.Equal(t, 1, got.ID)
	got, ok = net.FaceAt(cubenet.Coord{X: 0, Y: 4})
	require.True(t, ok)
	assert.Equal(t, 2, got.ID)
}

func TestExtract_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		size int
	}{
		{"zero size", []string{"."}, 0},
		{"empty", nil, 1},
		{"not a multiple", []string{"...", "..."}, 2},
		{"mixed block", []string{"..", ". ", "..", ".."}, 2},
		{"five faces", []string{".....", "     "}, 1},
		{"seven faces", []string{".......", "       "}, 1},
		{"disconnected", []string{"..  ", "  ..", "  .."}, 1},
		{"no open start", []string{"###", "..."}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid, err := cubenet.ParseGrid(tc.rows)
			require.NoError(t, err)
			_, err = cubenet.Extract(grid, tc.size)
			assert.ErrorIs(t, err, cubenet.ErrMalformedNet)
		})
	}
}

// TestExtract_AllShapes extracts every orientation of every cube net.
func TestExtract_AllShapes(t *testing.T) {
	for i, shape := range nettest.Shapes {
		for _, cells := range nettest.Variants(shape) {
			grid, err := cubenet.ParseGrid(nettest.Rows(nettest.Blocks(cells), 3))
			require.NoError(t, err)
			net, err := cubenet.Extract(grid, 3)
			require.NoError(t, err, "shape %d %v", i, cells)
			assert.Equal(t, nettest.Blocks(cells), net.Layout().CellValues)
		}
	}
}

func TestInferFaceSize(t *testing.T) {
	grid, err := cubenet.ParseGrid(nettest.ExampleRows())
	require.NoError(t, err)
	n, err := cubenet.InferFaceSize(grid)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	for _, rows := range [][]string{nil, {"....."}, {"......", "......"}} {
		grid, err := cubenet.ParseGrid(rows)
		require.NoError(t, err)
		_, err = cubenet.InferFaceSize(grid)
		assert.ErrorIs(t, err, cubenet.ErrMalformedNet, "%q", rows)
	}
}
