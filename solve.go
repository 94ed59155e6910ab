// SPDX-License-Identifier: MIT

package cubewalk

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cubewalk/cubenet"
	"github.com/katalvlaran/cubewalk/notes"
	"github.com/katalvlaran/cubewalk/topology"
	"github.com/katalvlaran/cubewalk/walk"
	"github.com/katalvlaran/cubewalk/wrap"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("cubewalk: invalid option supplied")

// Variant selects how steps off a face are resolved.
type Variant uint8

const (
	// Cube folds the net.
	Cube Variant = iota
	// Flat wraps around the unfolded net.
	Flat
)

func (v Variant) String() string {
	if v == Flat {
		return "flat"
	}

	return "cube"
}

// Options configures Solve.
type Options struct {
	// FaceSize is the face edge length; 0 infers it from the tile count.
	FaceSize int
	// Variant picks the wrap rule.
	Variant Variant
	// Logger is shared by every stage.
	Logger logrus.FieldLogger

	err error
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// DefaultOptions infers the face size, folds the cube and logs nothing.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Variant: Cube, Logger: l}
}

// WithFaceSize fixes the face size. n must be positive.
func WithFaceSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: face size must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.FaceSize = n
	}
}

// WithVariant selects the wrap rule.
func WithVariant(v Variant) Option {
	return func(o *Options) {
		if v != Cube && v != Flat {
			o.err = fmt.Errorf("%w: unknown variant %d", ErrOptionViolation, v)
			return
		}
		o.Variant = v
	}
}

// WithLogger routes logs from every stage to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// Result is the outcome of one walk.
type Result struct {
	Net *cubenet.Net
	// Topology is the folded cube; nil for the Flat variant.
	Topology *topology.Topology
	Final    walk.State
	engine   *walk.Engine
}

// Password returns the score of the final state.
func (r *Result) Password() int { return r.Final.Password() }

// Render draws the trail of the walk over the net.
func (r *Result) Render() string { return r.engine.Render() }

// Solve builds the net described by n and replays its path. Only the Cube
// variant folds the net, so Flat also walks block layouts that are not
// cube nets.
func Solve(n *notes.Notes, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if n == nil {
		return nil, notes.ErrEmptyNet
	}

	grid, err := cubenet.ParseGrid(n.Rows)
	if err != nil {
		return nil, err
	}
	size := o.FaceSize
	if size == 0 {
		if size, err = cubenet.InferFaceSize(grid); err != nil {
			return nil, err
		}
	}
	net, err := cubenet.Extract(grid, size)
	if err != nil {
		return nil, err
	}
	var topo *topology.Topology
	if o.Variant == Cube {
		if topo, err = topology.Resolve(net.Layout(), topology.WithLogger(o.Logger)); err != nil {
			return nil, err
		}
	}
	path, err := walk.ParsePath(n.Path)
	if err != nil {
		return nil, err
	}

	var w walk.Wrapper
	switch o.Variant {
	case Flat:
		w, err = wrap.NewFlat(net)
	default:
		w, err = wrap.NewTable(net, topo)
	}
	if err != nil {
		return nil, err
	}

	e, err := walk.NewEngine(net, w, path, walk.WithLogger(o.Logger))
	if err != nil {
		return nil, err
	}
	final, err := e.Run()
	if err != nil {
		return nil, err
	}
	o.Logger.WithFields(logrus.Fields{
		"variant":   o.Variant.String(),
		"face_size": size,
		"password":  final.Password(),
	}).Info("walk complete")

	return &Result{Net: net, Topology: topo, Final: final, engine: e}, nil
}
