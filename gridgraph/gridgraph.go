// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/cubewalk/compass"
	"github.com/katalvlaran/cubewalk/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{Width: w, Height: h, CellValues: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Occupied reports whether (x,y) is in bounds and holds a value ≥ 1.
func (gg *GridGraph) Occupied(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] > Empty
}

// Value returns the value at (x,y), or Empty when out of bounds.
func (gg *GridGraph) Value(x, y int) int {
	if !gg.InBounds(x, y) {
		return Empty
	}

	return gg.CellValues[y][x]
}

// Neighbor returns the value of the occupied cell one step from (x,y) in
// direction d. ok is false when that cell is out of bounds or empty.
// Complexity: O(1).
func (gg *GridGraph) Neighbor(x, y int, d compass.Direction) (value int, ok bool) {
	dx, dy := d.Delta()
	nx, ny := x+dx, y+dy
	if !gg.Occupied(nx, ny) {
		return Empty, false
	}

	return gg.CellValues[ny][nx], true
}

// Cells returns the occupied cells in row-major order.
func (gg *GridGraph) Cells() []Cell {
	var out []Cell
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if v := gg.CellValues[y][x]; v > Empty {
				out = append(out, Cell{X: x, Y: y, Value: v})
			}
		}
	}

	return out
}

// ToCoreGraph converts the occupied cells into an undirected *core.Graph.
// Each occupied cell becomes a vertex whose ID is its decimal value, with
// metadata {x, y}. One edge joins every pair of orthogonally adjacent
// occupied cells.
// Returns ErrDuplicateLabel if two occupied cells share a value.
// Complexity: O(W×H + E) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, c := range gg.Cells() {
		id := strconv.Itoa(c.Value)
		if g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrDuplicateLabel, c.Value, c.X, c.Y)
		}
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
		v, err := g.Vertex(id)
		if err != nil {
			return nil, err
		}
		v.Metadata["x"] = c.X
		v.Metadata["y"] = c.Y
	}
	// Right and Down cover each undirected pair exactly once.
	for _, c := range gg.Cells() {
		for _, d := range []compass.Direction{compass.Right, compass.Down} {
			nv, ok := gg.Neighbor(c.X, c.Y, d)
			if !ok {
				continue
			}
			_, err := g.AddEdge(strconv.Itoa(c.Value), strconv.Itoa(nv))
			if err != nil {
				return nil, fmt.Errorf("gridgraph: edge %d-%d: %w", c.Value, nv, err)
			}
		}
	}

	return g, nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
