// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - An optional MaxDepth limit.
//
// Why
//
//   - Reachability of the six faces over the flat net adjacency.
//   - Layering of the folded cube: from any face, its four neighbours sit at
//     depth 1 and the opposite face alone at depth 2.
//
// Determinism
//
//	core.Graph returns neighbours in a fixed order, so the visit sequence is
//	reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
