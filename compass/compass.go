// SPDX-License-Identifier: MIT

// Package compass defines the four grid headings and the two quarter-turns
// used to steer across a cube net.
//
// Direction values follow the facing encoding of the password formula:
// Right=0, Down=1, Left=2, Up=3, cyclic in clockwise order. All rotation is
// reduced modulo 4, so every Direction a method returns is one of the four
// constants.
package compass

import (
	"errors"
	"fmt"
)

// ErrUnknownTurn indicates a turn token other than 'L' or 'R'.
var ErrUnknownTurn = errors.New("compass: unknown turn")

// Direction is one of the four grid headings.
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
	Up
)

// count is the number of headings; rotation arithmetic is done modulo count.
const count = 4

// Directions lists all headings in clockwise order starting at Right.
var Directions = [count]Direction{Right, Down, Left, Up}

// Turned returns d rotated by k quarter-turns clockwise (negative k turns
// anticlockwise). k may be any int.
// Complexity: O(1).
func (d Direction) Turned(k int) Direction {
	k %= count
	if k < 0 {
		k += count
	}

	return Direction((int(d) + k) % count)
}

// Rotate returns d after applying turn t.
func (d Direction) Rotate(t Turn) Direction {
	return d.Turned(t.Delta())
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	return d.Turned(2)
}

// Delta returns the unit grid offset of d, with y growing downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, -1
	}
}

// Glyph returns the arrow used when rendering a trail: '>', 'v', '<' or '^'.
func (d Direction) Glyph() rune {
	return [count]rune{'>', 'v', '<', '^'}[d%count]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Up:
		return "UP"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Valid reports whether d is one of the four constants.
func (d Direction) Valid() bool {
	return d < count
}

// Turn is a quarter-turn instruction.
type Turn uint8

const (
	// Clockwise is the 'R' instruction (+1 quarter-turn).
	Clockwise Turn = iota
	// Anticlockwise is the 'L' instruction (-1 quarter-turn).
	Anticlockwise
)

// Delta returns the signed quarter-turn count of t.
func (t Turn) Delta() int {
	if t == Anticlockwise {
		return -1
	}

	return 1
}

// String returns the instruction letter, "R" or "L".
func (t Turn) String() string {
	if t == Anticlockwise {
		return "L"
	}

	return "R"
}

// ParseTurn maps an instruction letter to a Turn.
// Returns ErrUnknownTurn for anything but 'L' or 'R'.
func ParseTurn(r rune) (Turn, error) {
	switch r {
	case 'R':
		return Clockwise, nil
	case 'L':
		return Anticlockwise, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownTurn, r)
}
