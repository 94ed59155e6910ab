// SPDX-License-Identifier: MIT

// Package topology infers how the six faces of a cube net meet once the net
// is folded, using only the block layout and quarter-turn arithmetic.
//
// What:
//
//   - Resolve runs three ordered passes over a gridgraph.GridGraph layout:
//     planar adjacency, corner propagation and residual matching.
//   - The result is an immutable Topology: for every face side, the face
//     across it and that neighbour's orientation.
//   - Topology.Graph exports the twelve cube edges as a *core.Graph and
//     Topology.Validate checks coverage, symmetry and the cube's distance
//     layering with bfs.
//
// Orientation:
//
// OppositeEdge.Orientation is the direction the neighbour's local Up points
// to, seen from the referring face. Up means no rotation. For a side d with
// orientation o the neighbour's shared side is d+1-o (mod 4), a relation
// that is its own inverse.
//
// Cube-corner rule:
//
// If side d of face X meets side p of P, and side d+1 of X meets side q of
// Q, then X, P and Q share a cube vertex and side p-1 of P meets side q+1
// of Q. Every non-planar edge is derived from this rule or from pairing the
// last free sides.
//
// Errors:
//
//   - ErrInvalidTopologyCount: the layout does not hold six connected faces,
//     a face has no planar neighbour, the corner count is outside 2..4, or
//     residual matching stalls.
//   - ErrAmbiguousTopology: a derived edge contradicts a known one, or the
//     residual sides cannot be paired uniquely.
//   - ErrOptionViolation: an invalid Option was supplied.
package topology
