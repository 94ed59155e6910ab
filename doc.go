// Package cubewalk walks a path across a cube net, either folded into a
// cube or wrapped flat.
//
// What is cubewalk?
//
//	A small library and CLI that take the 2D unfolding of a cube, work out
//	how its faces meet once folded, and replay a path of step counts and
//	left/right turns across the surface:
//		• cubenet   – split a tile grid into six faces and their boundaries
//		• gridgraph – the block layout of the net as a grid graph
//		• topology  – fold the layout: planar, corner and residual passes
//		• wrap      – per-tile crossings for the cube, or flat wraparound
//		• walk      – the expedition engine, trail rendering and password
//		• notes     – read notes files (net, blank line, path)
//		• core, bfs – the graph store and traversal used to check layouts
//
// The folding never builds 3D coordinates. It reasons only about faces,
// sides, shared vertices and quarter-turns, so any of the eleven cube nets
// in any rotation or reflection works.
//
// Quick example:
//
//	        ...#
//	        .#..          10R5L5R10L4R5L5
//	        #...
//	        ....          folded:  row 5, column 7, facing Up  → 5031
//	...#.......#          flat:    row 6, column 8, facing Right → 6032
//	  …
//
//	go run ./cmd/cubewalk run notes.txt
package cubewalk
