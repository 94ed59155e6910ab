// SPDX-License-Identifier: MIT

package wrap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cubewalk/compass"
	"github.com/katalvlaran/cubewalk/cubenet"
	"github.com/katalvlaran/cubewalk/topology"
)

var (
	// ErrNotOnBoundary indicates a crossing was requested from a tile that
	// is not on the side being left.
	ErrNotOnBoundary = errors.New("wrap: tile is not on the boundary")

	// ErrMissingInput indicates NewTable or NewFlat got a nil argument.
	ErrMissingInput = errors.New("wrap: net and topology are required")

	// ErrBrokenInvolution indicates a crossing does not lead back to its
	// origin.
	ErrBrokenInvolution = errors.New("wrap: crossing is not reversible")
)

// CoordPos is where a step off one boundary tile lands.
type CoordPos struct {
	Face   int
	Index  int
	Facing compass.Direction
}

// Table is the dense crossing table of a folded net. It is read-only after
// NewTable and safe for concurrent use.
type Table struct {
	net *cubenet.Net
	pos [topology.FaceCount][4][]CoordPos
}

// NewTable builds the crossing table for net folded as topo and checks
// that every crossing can be walked back.
// Complexity: O(faceSize).
func NewTable(net *cubenet.Net, topo *topology.Topology) (*Table, error) {
	if net == nil || topo == nil {
		return nil, ErrMissingInput
	}
	n := net.Size()
	t := &Table{net: net}
	for _, face := range net.Faces() {
		f := face.ID
		for _, d := range compass.Directions {
			nb := topo.Neighbor(topology.Edge{Face: f, Dir: d})
			row := make([]CoordPos, n)
			for i := range row {
				row[i] = CoordPos{Face: nb.Face, Index: n - 1 - i, Facing: nb.Dir.Opposite()}
			}
			t.pos[f-1][d] = row
		}
	}
	if err := t.Involution(); err != nil {
		return nil, err
	}

	return t, nil
}

// Lookup returns the crossing for index i along side d of face.
func (t *Table) Lookup(face int, d compass.Direction, i int) (CoordPos, error) {
	if face < 1 || face > topology.FaceCount || !d.Valid() || i < 0 || i >= t.net.Size() {
		return CoordPos{}, fmt.Errorf("%w: face %d side %s index %d", ErrNotOnBoundary, face, d, i)
	}

	return t.pos[face-1][d][i], nil
}

// Cross resolves a step from c heading facing off its face. It returns the
// destination tile and the facing after the crossing.
func (t *Table) Cross(c cubenet.Coord, facing compass.Direction) (cubenet.Coord, compass.Direction, error) {
	f, ok := t.net.FaceAt(c)
	if !ok {
		return c, facing, fmt.Errorf("%w: %v is off the net", ErrNotOnBoundary, c)
	}
	i, ok := f.BoundaryIndex(c, facing)
	if !ok {
		return c, facing, fmt.Errorf("%w: %v is not on the %s side of face %d", ErrNotOnBoundary, c, facing, f.ID)
	}
	cp, err := t.Lookup(f.ID, facing, i)
	if err != nil {
		return c, facing, err
	}

	dst, _ := t.net.Face(cp.Face)
	tile, ok := dst.BoundaryTile(cp.Facing.Opposite(), cp.Index)
	if !ok {
		return c, facing, fmt.Errorf("%w: face %d side %s index %d", ErrNotOnBoundary, cp.Face, cp.Facing.Opposite(), cp.Index)
	}

	return tile, cp.Facing, nil
}

// Involution checks that every crossing, followed by the crossing back
// out of the side it entered through, returns to the origin tile with the
// reversed facing.
func (t *Table) Involution() error {
	for f := 1; f <= topology.FaceCount; f++ {
		for _, d := range compass.Directions {
			for i, cp := range t.pos[f-1][d] {
				back, err := t.Lookup(cp.Face, cp.Facing.Opposite(), cp.Index)
				if err != nil {
					return err
				}
				if want := (CoordPos{Face: f, Index: i, Facing: d.Opposite()}); back != want {
					return fmt.Errorf("%w: face %d side %s index %d returns as %+v",
						ErrBrokenInvolution, f, d, i, back)
				}
			}
		}
	}

	return nil
}
