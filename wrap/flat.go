// SPDX-License-Identifier: MIT

package wrap

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/compass"
	"github.com/katalvlaran/cubewalk/cubenet"
)

// Flat wraps a walker around the unfolded net: leaving the net re-enters
// at the far on-net tile of the same row or column.
type Flat struct {
	net *cubenet.Net
}

// NewFlat returns the flat wraparound for net.
func NewFlat(net *cubenet.Net) (*Flat, error) {
	if net == nil {
		return nil, ErrMissingInput
	}

	return &Flat{net: net}, nil
}

// Cross resolves a step from c heading facing out of its face. A step onto
// a neighbouring face of the net is taken as is; a step off the net wraps.
// The facing is unchanged.
// Complexity: O(W+H).
func (w *Flat) Cross(c cubenet.Coord, facing compass.Direction) (cubenet.Coord, compass.Direction, error) {
	if !w.net.Tile(c).OnNet() {
		return c, facing, fmt.Errorf("%w: %v is off the net", ErrNotOnBoundary, c)
	}
	if next := c.Step(facing); w.net.Tile(next).OnNet() {
		return next, facing, nil
	}
	back := facing.Opposite()
	p := c
	for w.net.Tile(p.Step(back)).OnNet() {
		p = p.Step(back)
	}

	return p, facing, nil
}
