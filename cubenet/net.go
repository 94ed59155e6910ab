// SPDX-License-Identifier: MIT

package cubenet

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cubewalk/compass"
	"github.com/katalvlaran/cubewalk/gridgraph"
)

// ErrMalformedNet indicates the grid cannot be partitioned into a cube net.
var ErrMalformedNet = errors.New("cubenet: malformed net")

// FaceCount is the number of faces of a cube.
const FaceCount = 6

// Face is one faceSize×faceSize block of the net. Faces are handed out by
// value and their boundaries only through copies, so a Net never changes
// after Extract.
type Face struct {
	// ID is 1..6 in row-major block order.
	ID int
	// Block is the face's column/row in the block layout.
	Block Coord
	// Origin is the face's top-left tile.
	Origin Coord

	boundary [4][]Coord // tiles of each side, clockwise
	size     int
}

// BoundaryTile returns the tile at index i along side d, sides running
// clockwise around the face.
func (f Face) BoundaryTile(d compass.Direction, i int) (Coord, bool) {
	if !d.Valid() || i < 0 || i >= len(f.boundary[d]) {
		return Coord{}, false
	}

	return f.boundary[d][i], true
}

// Contains reports whether tile c lies on the face.
func (f Face) Contains(c Coord) bool {
	return c.X >= f.Origin.X && c.X < f.Origin.X+f.size &&
		c.Y >= f.Origin.Y && c.Y < f.Origin.Y+f.size
}

// BoundaryIndex returns the position of c along side d, or false if c is
// not on that side.
func (f Face) BoundaryIndex(c Coord, d compass.Direction) (int, bool) {
	if !f.Contains(c) {
		return 0, false
	}
	lx, ly, last := c.X-f.Origin.X, c.Y-f.Origin.Y, f.size-1
	switch d {
	case compass.Up:
		return lx, ly == 0
	case compass.Right:
		return ly, lx == last
	case compass.Down:
		return last - lx, ly == last
	default:
		return last - ly, lx == 0
	}
}

// newFace builds the face whose top-left tile is origin.
func newFace(id int, block, origin Coord, n int) Face {
	f := Face{ID: id, Block: block, Origin: origin, size: n}
	for d := range f.boundary {
		f.boundary[d] = make([]Coord, n)
	}
	ox, oy, last := origin.X, origin.Y, n-1
	for i := 0; i < n; i++ {
		f.boundary[compass.Up][i] = Coord{X: ox + i, Y: oy}
		f.boundary[compass.Right][i] = Coord{X: ox + last, Y: oy + i}
		f.boundary[compass.Down][i] = Coord{X: ox + last - i, Y: oy + last}
		f.boundary[compass.Left][i] = Coord{X: ox, Y: oy + last - i}
	}

	return f
}

// Net is an immutable cube net: the tile grid, its six faces and their
// block layout.
type Net struct {
	grid   *Grid
	size   int
	faces  []Face
	layout *gridgraph.GridGraph
	start  Coord
}

// Extract partitions grid into faceSize blocks and builds the Net.
// Returns ErrMalformedNet (wrapped with details) for any partition failure.
// Complexity: O(W×H).
func Extract(grid *Grid, faceSize int) (*Net, error) {
	if faceSize <= 0 {
		return nil, fmt.Errorf("%w: face size %d", ErrMalformedNet, faceSize)
	}
	if grid == nil || grid.Width == 0 || grid.Height == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedNet)
	}
	if grid.Width%faceSize != 0 || grid.Height%faceSize != 0 {
		return nil, fmt.Errorf("%w: extent %dx%d is not a multiple of %d",
			ErrMalformedNet, grid.Width, grid.Height, faceSize)
	}

	bw, bh := grid.Width/faceSize, grid.Height/faceSize
	blocks := make([][]int, bh)
	n := &Net{grid: grid, size: faceSize}
	for by := 0; by < bh; by++ {
		blocks[by] = make([]int, bw)
		for bx := 0; bx < bw; bx++ {
			origin := Coord{X: bx * faceSize, Y: by * faceSize}
			on, err := blockOnNet(grid, origin, faceSize)
			if err != nil {
				return nil, err
			}
			if !on {
				continue
			}
			id := len(n.faces) + 1
			if id > FaceCount {
				return nil, fmt.Errorf("%w: more than %d faces", ErrMalformedNet, FaceCount)
			}
			n.faces = append(n.faces, newFace(id, Coord{X: bx, Y: by}, origin, faceSize))
			blocks[by][bx] = id
		}
	}
	if len(n.faces) != FaceCount {
		return nil, fmt.Errorf("%w: found %d faces, want %d", ErrMalformedNet, len(n.faces), FaceCount)
	}

	layout, err := gridgraph.NewGridGraph(blocks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedNet, err)
	}
	if comps := layout.ConnectedComponents(); len(comps) != 1 {
		return nil, fmt.Errorf("%w: faces form %d separate groups", ErrMalformedNet, len(comps))
	}
	n.layout = layout

	if n.start, err = findStart(grid); err != nil {
		return nil, err
	}

	return n, nil
}

// blockOnNet reports whether the block at origin is entirely on the net.
// A block mixing on-net and off-net tiles is ErrMalformedNet.
func blockOnNet(grid *Grid, origin Coord, n int) (bool, error) {
	on, off := 0, 0
	for y := origin.Y; y < origin.Y+n; y++ {
		for x := origin.X; x < origin.X+n; x++ {
			if grid.At(Coord{X: x, Y: y}).OnNet() {
				on++
			} else {
				off++
			}
		}
	}
	if on > 0 && off > 0 {
		return false, fmt.Errorf("%w: block at %v mixes on-net and off-net tiles", ErrMalformedNet, origin)
	}

	return on > 0, nil
}

// findStart returns the leftmost open tile of the first row that holds any
// on-net tile.
func findStart(grid *Grid) (Coord, error) {
	for y := 0; y < grid.Height; y++ {
		seen := false
		for x := 0; x < grid.Width; x++ {
			c := Coord{X: x, Y: y}
			switch grid.At(c) {
			case Open:
				return c, nil
			case Wall:
				seen = true
			}
		}
		if seen {
			break
		}
	}

	return Coord{}, fmt.Errorf("%w: no open tile on the top row", ErrMalformedNet)
}

// Size returns the face edge length in tiles.
func (n *Net) Size() int { return n.size }

// Width returns the padded grid width.
func (n *Net) Width() int { return n.grid.Width }

// Height returns the grid height.
func (n *Net) Height() int { return n.grid.Height }

// Start returns the leftmost open tile of the top row.
func (n *Net) Start() Coord { return n.start }

// Layout returns a copy of the block layout: one cell per block, valued
// with the face ID or gridgraph.Empty.
func (n *Net) Layout() *gridgraph.GridGraph {
	gg, _ := gridgraph.NewGridGraph(n.layout.CellValues) // rectangular since Extract

	return gg
}

// Tile returns the tile at c, or Void outside the grid.
func (n *Net) Tile(c Coord) Tile { return n.grid.At(c) }

// Faces returns the six faces in ID order.
func (n *Net) Faces() []Face {
	out := make([]Face, len(n.faces))
	copy(out, n.faces)

	return out
}

// Face returns the face with the given ID, or false if id is out of range.
func (n *Net) Face(id int) (Face, bool) {
	if id < 1 || id > len(n.faces) {
		return Face{}, false
	}

	return n.faces[id-1], true
}

// FaceAt returns the face containing c, or false if c is off the net.
func (n *Net) FaceAt(c Coord) (Face, bool) {
	if c.X < 0 || c.Y < 0 {
		return Face{}, false
	}

	return n.Face(n.layout.Value(c.X/n.size, c.Y/n.size))
}

// InferFaceSize derives the face size from the number of on-net tiles,
// which must be six times a perfect square.
func InferFaceSize(grid *Grid) (int, error) {
	if grid == nil {
		return 0, fmt.Errorf("%w: empty grid", ErrMalformedNet)
	}
	tiles := 0
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.At(Coord{X: x, Y: y}).OnNet() {
				tiles++
			}
		}
	}
	if tiles == 0 || tiles%FaceCount != 0 {
		return 0, fmt.Errorf("%w: %d tiles do not split into %d faces", ErrMalformedNet, tiles, FaceCount)
	}
	area := tiles / FaceCount
	n := 1
	for n*n < area {
		n++
	}
	if n*n != area {
		return 0, fmt.Errorf("%w: face area %d is not square", ErrMalformedNet, area)
	}

	return n, nil
}
