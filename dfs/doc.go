// SPDX-License-Identifier: MIT

// Package dfs finds cycles in an undirected core.Graph by depth-first
// search.
//
// What:
//
//   - DetectCycles runs a three-colour DFS (White, Gray, Black) from every
//     unvisited vertex and reports one cycle per back edge.
//   - Each cycle is returned closed ([v0, v1, ..., v0]) and canonical: it
//     starts at its smallest vertex ID and runs towards the smaller of that
//     vertex's two cycle neighbours.
//
// Why:
//
//   - A cube net's block layout must be a tree: six faces, five planar
//     joins, no loop. A 2×3 rectangle of blocks has six faces but contains
//     a cycle and cannot fold into a cube.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C = cycles found, L = their length)
//   - Memory: O(V)
package dfs
