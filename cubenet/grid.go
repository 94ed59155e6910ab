// SPDX-License-Identifier: MIT

package cubenet

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cubewalk/compass"
)

// Tile is the content of one grid position.
type Tile uint8

const (
	// Void is off the net (space or beyond the end of a row).
	Void Tile = iota
	// Open is a walkable tile ('.').
	Open
	// Wall blocks movement ('#').
	Wall
)

// Rune returns the character the tile was parsed from.
func (t Tile) Rune() rune {
	switch t {
	case Open:
		return '.'
	case Wall:
		return '#'
	default:
		return ' '
	}
}

// OnNet reports whether the tile belongs to a face.
func (t Tile) OnNet() bool { return t != Void }

// Coord is a 0-based tile position in the flat grid, y growing downwards.
type Coord struct {
	X, Y int
}

// Step returns the coordinate one tile away in direction d.
func (c Coord) Step(d compass.Direction) Coord {
	dx, dy := d.Delta()

	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a rectangular tile grid. Ragged input rows are padded with Void
// up to the longest row.
type Grid struct {
	Width, Height int
	tiles         [][]Tile
}

// ParseGrid converts text rows into a Grid. Recognised characters are
// '.', '#' and ' '; anything else is ErrMalformedNet.
// Complexity: O(W×H).
func ParseGrid(lines []string) (*Grid, error) {
	g := &Grid{Height: len(lines)}
	for _, line := range lines {
		if n := len(line); n > g.Width {
			g.Width = n
		}
	}
	g.tiles = make([][]Tile, g.Height)
	for y, line := range lines {
		row := make([]Tile, g.Width)
		for x, r := range []byte(line) {
			switch r {
			case '.':
				row[x] = Open
			case '#':
				row[x] = Wall
			case ' ':
				row[x] = Void
			default:
				return nil, fmt.Errorf("%w: unknown tile %q at %v", ErrMalformedNet, r, Coord{X: x, Y: y})
			}
		}
		g.tiles[y] = row
	}

	return g, nil
}

// At returns the tile at c, or Void outside the grid.
func (g *Grid) At(c Coord) Tile {
	if c.X < 0 || c.Y < 0 || c.X >= g.Width || c.Y >= g.Height {
		return Void
	}

	return g.tiles[c.Y][c.X]
}

// Row returns row y as text padded to Width.
func (g *Grid) Row(y int) string {
	var b strings.Builder
	b.Grow(g.Width)
	for _, t := range g.tiles[y] {
		b.WriteRune(t.Rune())
	}

	return b.String()
}
