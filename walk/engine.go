// SPDX-License-Identifier: MIT

package walk

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cubewalk/compass"
	"github.com/katalvlaran/cubewalk/cubenet"
)

var (
	// ErrInvalidTraversal indicates a step could not be resolved.
	ErrInvalidTraversal = errors.New("walk: invalid traversal")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")
)

// Wrapper resolves a step that leaves the current face.
type Wrapper interface {
	Cross(c cubenet.Coord, facing compass.Direction) (cubenet.Coord, compass.Direction, error)
}

// Phase is what the engine does with its next instruction.
type Phase uint8

const (
	Moving Phase = iota
	Turning
	Done
)

func (p Phase) String() string {
	switch p {
	case Moving:
		return "moving"
	case Turning:
		return "turning"
	default:
		return "done"
	}
}

// State is a position and facing.
type State struct {
	Pos    cubenet.Coord
	Facing compass.Direction
}

// Row returns the 1-based row.
func (s State) Row() int { return s.Pos.Y + 1 }

// Column returns the 1-based column.
func (s State) Column() int { return s.Pos.X + 1 }

// Password is 1000×row + 4×column + facing.
func (s State) Password() int {
	return 1000*s.Row() + 4*s.Column() + int(s.Facing)
}

// Option configures an Engine.
type Option func(*Options)

// Options holds Engine parameters.
type Options struct {
	// Logger receives one debug record per instruction.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns Options with a silent logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}

// WithLogger routes traversal logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// Engine replays a path over a net.
type Engine struct {
	net   *cubenet.Net
	wrap  Wrapper
	path  []Instruction
	next  int
	state State
	trail map[cubenet.Coord]compass.Direction
	log   logrus.FieldLogger
}

// NewEngine starts an expedition on the leftmost open tile of the top row,
// facing Right.
func NewEngine(net *cubenet.Net, w Wrapper, path []Instruction, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if net == nil || w == nil {
		return nil, fmt.Errorf("%w: net and wrapper are required", ErrInvalidTraversal)
	}

	start := State{Pos: net.Start(), Facing: compass.Right}
	e := &Engine{
		net:   net,
		wrap:  w,
		path:  append([]Instruction(nil), path...),
		state: start,
		trail: map[cubenet.Coord]compass.Direction{start.Pos: start.Facing},
		log:   o.Logger,
	}

	return e, nil
}

// State returns the current position and facing.
func (e *Engine) State() State { return e.state }

// Phase reports what the next instruction will do.
func (e *Engine) Phase() Phase {
	if e.next >= len(e.path) {
		return Done
	}
	if e.path[e.next].Kind == Rotate {
		return Turning
	}

	return Moving
}

// Next consumes one instruction. It returns false once the path is
// exhausted.
func (e *Engine) Next() (bool, error) {
	if e.Phase() == Done {
		return false, nil
	}
	in := e.path[e.next]
	e.next++

	switch in.Kind {
	case Move:
		taken := 0
		for ; taken < in.Steps; taken++ {
			moved, err := e.step()
			if err != nil {
				return false, err
			}
			if !moved {
				break
			}
		}
		e.log.WithFields(logrus.Fields{
			"instruction": in.String(),
			"taken":       taken,
			"pos":         e.state.Pos.String(),
			"facing":      e.state.Facing.String(),
		}).Debug("moved")
	case Rotate:
		e.state.Facing = e.state.Facing.Rotate(in.Turn)
		e.trail[e.state.Pos] = e.state.Facing
		e.log.WithFields(logrus.Fields{
			"instruction": in.String(),
			"facing":      e.state.Facing.String(),
		}).Debug("turned")
	default:
		return false, fmt.Errorf("%w: unknown instruction kind %d", ErrInvalidTraversal, in.Kind)
	}

	return true, nil
}

// Run consumes the rest of the path and returns the final state.
func (e *Engine) Run() (State, error) {
	for {
		more, err := e.Next()
		if err != nil {
			return e.state, err
		}
		if !more {
			return e.state, nil
		}
	}
}

// step advances one tile. It reports false without changing state when a
// wall is in the way.
func (e *Engine) step() (bool, error) {
	cur, ok := e.net.FaceAt(e.state.Pos)
	if !ok {
		return false, fmt.Errorf("%w: %v is off the net", ErrInvalidTraversal, e.state.Pos)
	}

	dest, facing := e.state.Pos.Step(e.state.Facing), e.state.Facing
	if !cur.Contains(dest) {
		var err error
		dest, facing, err = e.wrap.Cross(e.state.Pos, e.state.Facing)
		if err != nil {
			return false, fmt.Errorf("%w: leaving %v heading %s: %v",
				ErrInvalidTraversal, e.state.Pos, e.state.Facing, err)
		}
	}

	switch e.net.Tile(dest) {
	case cubenet.Wall:
		return false, nil
	case cubenet.Void:
		return false, fmt.Errorf("%w: %v heading %s lands off the net at %v",
			ErrInvalidTraversal, e.state.Pos, e.state.Facing, dest)
	}
	e.state = State{Pos: dest, Facing: facing}
	e.trail[dest] = facing

	return true, nil
}

// Trail returns a copy of the last facing recorded on each visited tile.
func (e *Engine) Trail() map[cubenet.Coord]compass.Direction {
	out := make(map[cubenet.Coord]compass.Direction, len(e.trail))
	for c, d := range e.trail {
		out[c] = d
	}

	return out
}

// Render draws the grid with the trail's arrows over visited tiles. Rows
// are padded to the grid width.
func (e *Engine) Render() string {
	rows := make([]string, e.net.Height())
	for y := range rows {
		var b strings.Builder
		for x := 0; x < e.net.Width(); x++ {
			c := cubenet.Coord{X: x, Y: y}
			if d, ok := e.trail[c]; ok {
				b.WriteRune(d.Glyph())
				continue
			}
			b.WriteRune(e.net.Tile(c).Rune())
		}
		rows[y] = b.String()
	}

	return strings.Join(rows, "\n")
}
