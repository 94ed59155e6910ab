// SPDX-License-Identifier: MIT

package gridgraph

import "github.com/katalvlaran/cubewalk/compass"

// ConnectedComponents finds all 4-connected regions of occupied cells
// (CellValues[y][x] ≥ 1).
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order, components ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Occupied(x, y) {
				continue
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				ux, uy := gg.Coordinate(u)
				for _, d := range compass.Directions {
					dx, dy := d.Delta()
					vx, vy := ux+dx, uy+dy
					if !gg.Occupied(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
