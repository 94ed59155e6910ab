// SPDX-License-Identifier: MIT

// Package nettest provides cube nets and an independent folding oracle for
// tests.
package nettest

import (
	"fmt"
	"sort"
	"strings"
)

// Example is the worked example: a cross-shaped net with face size 4 and
// its path.
const Example = `        ...#
        .#..
        #...
        ....
...#.......#
........#...
..#....#....
..........#.
        ...#....
        .....#..
        .#......
        ......#.

10R5L5R10L4R5L5
`

// ExampleRows returns the net rows of Example.
func ExampleRows() []string {
	body, _, _ := strings.Cut(Example, "\n\n")

	return strings.Split(body, "\n")
}

// ExamplePath returns the path line of Example.
func ExamplePath() string {
	_, path, _ := strings.Cut(Example, "\n\n")

	return strings.TrimSpace(path)
}

// Cell is a block position (column, row).
type Cell struct{ X, Y int }

// Shapes are the eleven distinct cube nets, as block cells.
var Shapes = [][]Cell{
	{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {0, 2}},
	{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {1, 2}},
	{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {2, 2}},
	{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {3, 2}},
	{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {1, 2}},
	{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {3, 1}, {1, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {3, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {3, 1}, {3, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}, {3, 2}},
	{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {3, 1}, {4, 1}},
}

// Variants returns every distinct rotation and reflection of shape,
// normalised so the smallest column and row are 0, in a stable order.
func Variants(shape []Cell) [][]Cell {
	seen := map[string]bool{}
	var out [][]Cell
	for mirror := 0; mirror < 2; mirror++ {
		cur := append([]Cell(nil), shape...)
		if mirror == 1 {
			for i, c := range cur {
				cur[i] = Cell{-c.X, c.Y}
			}
		}
		for rot := 0; rot < 4; rot++ {
			norm := normalise(cur)
			if key := fmt.Sprint(norm); !seen[key] {
				seen[key] = true
				out = append(out, norm)
			}
			for i, c := range cur {
				cur[i] = Cell{-c.Y, c.X}
			}
		}
	}

	return out
}

func normalise(cells []Cell) []Cell {
	minX, minY := cells[0].X, cells[0].Y
	for _, c := range cells {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
	}
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{c.X - minX, c.Y - minY}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})

	return out
}

// Blocks returns the block layout of cells with faces numbered 1..6 in
// row-major order, 0 elsewhere.
func Blocks(cells []Cell) [][]int {
	cells = normalise(cells)
	w, h := 0, 0
	for _, c := range cells {
		if c.X+1 > w {
			w = c.X + 1
		}
		if c.Y+1 > h {
			h = c.Y + 1
		}
	}
	out := make([][]int, h)
	for y := range out {
		out[y] = make([]int, w)
	}
	for i, c := range cells {
		out[c.Y][c.X] = i + 1
	}

	return out
}

// Rows renders blocks as a text net with open tiles and faceSize n.
func Rows(blocks [][]int, n int) []string {
	var rows []string
	for _, br := range blocks {
		var b strings.Builder
		for _, v := range br {
			if v == 0 {
				b.WriteString(strings.Repeat(" ", n))
			} else {
				b.WriteString(strings.Repeat(".", n))
			}
		}
		for i := 0; i < n; i++ {
			rows = append(rows, b.String())
		}
	}

	return rows
}

// Link is one side of a folded face: the neighbour's ID and which of its
// sides (0=Right, 1=Down, 2=Left, 3=Up) is shared.
type Link struct {
	Face, Back int
}

type vec [3]int

func (v vec) neg() vec { return vec{-v[0], -v[1], -v[2]} }

type frame struct{ normal, right, down vec }

// out returns the outward vector of side d.
func (f frame) out(d int) vec {
	switch d {
	case 0:
		return f.right
	case 1:
		return f.down
	case 2:
		return f.right.neg()
	default:
		return f.down.neg()
	}
}

// Fold folds blocks into a unit cube and returns, for each face ID, the
// Link across each side. It tracks each face's normal and in-plane axes as
// the net is rolled, without any of the combinatorial reasoning under test.
func Fold(blocks [][]int) map[int][4]Link {
	type pos struct{ x, y int }
	at := map[pos]int{}
	var first pos
	found := false
	for y, row := range blocks {
		for x, v := range row {
			if v == 0 {
				continue
			}
			at[pos{x, y}] = v
			if !found {
				first, found = pos{x, y}, true
			}
		}
	}

	frames := map[int]frame{at[first]: {normal: vec{0, 0, -1}, right: vec{1, 0, 0}, down: vec{0, 1, 0}}}
	queue := []pos{first}
	steps := [4]pos{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		f := frames[at[p]]
		for d, s := range steps {
			q := pos{p.x + s.x, p.y + s.y}
			id, ok := at[q]
			if !ok {
				continue
			}
			if _, done := frames[id]; done {
				continue
			}
			var nf frame
			switch d {
			case 0:
				nf = frame{normal: f.right, right: f.normal.neg(), down: f.down}
			case 2:
				nf = frame{normal: f.right.neg(), right: f.normal, down: f.down}
			case 1:
				nf = frame{normal: f.down, right: f.right, down: f.normal.neg()}
			default:
				nf = frame{normal: f.down.neg(), right: f.right, down: f.normal}
			}
			frames[id] = nf
			queue = append(queue, q)
		}
	}

	byNormal := map[vec]int{}
	for id, f := range frames {
		byNormal[f.normal] = id
	}
	out := map[int][4]Link{}
	for id, f := range frames {
		var links [4]Link
		for d := 0; d < 4; d++ {
			nid := byNormal[f.out(d)]
			nf := frames[nid]
			for b := 0; b < 4; b++ {
				if nf.out(b) == f.normal {
					links[d] = Link{Face: nid, Back: b}
				}
			}
		}
		out[id] = links
	}

	return out
}
