// SPDX-License-Identifier: MIT

// Package walk replays a path of step counts and turns across a cube net.
//
// An Engine owns one expedition: its position, facing and the trail of
// visited tiles. Steps that stay on the current face are ordinary grid
// moves; steps leaving it are resolved by a Wrapper, either the folded
// cube (wrap.Table) or the flat wraparound (wrap.Flat). Running into a wall
// ends the current step count early and is not an error.
//
// Engines are not safe for concurrent use. Any number of engines may share
// one net and one Wrapper.
package walk
