// SPDX-License-Identifier: MIT

// Package gridgraph treats a small 2D grid of labelled cells as a graph.
// In cubewalk it holds the block layout of a cube net: one cell per
// faceSize×faceSize block, valued with the face ID or 0 where the block is
// empty.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; values ≥ 1 are occupied.
//   - Neighbor reads the occupied cell one step away in a compass.Direction.
//   - ConnectedComponents finds 4-connected regions of occupied cells.
//   - ToCoreGraph exports the occupied cells and their orthogonal adjacency
//     as a *core.Graph for generic algorithms such as bfs.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//   - ToCoreGraph:         O(W×H + E), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDuplicateLabel: two occupied cells carry the same value.
package gridgraph
