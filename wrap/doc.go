// SPDX-License-Identifier: MIT

// Package wrap turns a resolved cube topology into tile-level crossings.
//
// Table precomputes, for every face side and every tile index along it,
// where a step off the face lands: the destination face, the index along
// that face's shared side and the facing after the crossing. Because
// boundaries are stored clockwise, a crossing at index i always lands at
// index faceSize-1-i.
//
// Flat is the non-folded variant: stepping off the net re-enters at the far
// end of the same row or column with the facing unchanged.
//
// Both satisfy the same Cross contract, so a walker can be driven by
// either.
package wrap
