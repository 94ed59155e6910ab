// SPDX-License-Identifier: MIT

// Package cubenet slices a flat tile grid into the six square faces of a
// cube net.
//
// What:
//
//   - ParseGrid turns text rows into a blank-padded Grid of Void/Open/Wall tiles.
//   - Extract partitions the grid into faceSize×faceSize blocks, numbers the
//     on-net blocks 1..6 in row-major order and records each face's boundary
//     tiles per compass.Direction.
//   - Net.Layout exposes the block arrangement as a gridgraph.GridGraph, the
//     only 2D information later folding steps look at.
//
// Boundary order:
//
// Every side of a face lists exactly faceSize tiles, ordered clockwise around
// the face: Up left→right, Right top→bottom, Down right→left, Left
// bottom→top. Two sides joined by a fold therefore run in opposite order,
// and index i on one lands on index faceSize-1-i on the other.
//
// Errors:
//
//   - ErrMalformedNet: unknown tile character, extent not a multiple of
//     faceSize, a block mixing on-net and off-net tiles, a face count other
//     than six, disconnected faces, or no open start tile.
package cubenet
