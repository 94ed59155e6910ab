// SPDX-License-Identifier: MIT

package walk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cubewalk/compass"
)

// ErrInvalidPath indicates a malformed path string.
var ErrInvalidPath = errors.New("walk: invalid path")

// Kind tells a move from a turn.
type Kind uint8

const (
	// Move advances up to Steps tiles.
	Move Kind = iota
	// Rotate turns in place.
	Rotate
)

// Instruction is one path token.
type Instruction struct {
	Kind  Kind
	Steps int
	Turn  compass.Turn
}

func (in Instruction) String() string {
	if in.Kind == Rotate {
		return in.Turn.String()
	}

	return strconv.Itoa(in.Steps)
}

// ParsePath splits a path such as "10R5L5" into instructions. Counts and
// turns must alternate, starting and ending with a count. Surrounding
// whitespace is ignored.
func ParsePath(s string) ([]Instruction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPath)
	}

	var out []Instruction
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i {
			return nil, fmt.Errorf("%w: expected a count at offset %d of %q", ErrInvalidPath, i, s)
		}
		n, err := strconv.Atoi(s[i:j])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
		}
		out = append(out, Instruction{Kind: Move, Steps: n})
		if j == len(s) {
			break
		}

		t, err := compass.ParseTurn(rune(s[j]))
		if err != nil {
			return nil, fmt.Errorf("%w: offset %d: %v", ErrInvalidPath, j, err)
		}
		if j+1 == len(s) {
			return nil, fmt.Errorf("%w: ends with a turn", ErrInvalidPath)
		}
		out = append(out, Instruction{Kind: Rotate, Turn: t})
		i = j + 1
	}

	return out, nil
}
