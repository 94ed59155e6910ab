// SPDX-License-Identifier: MIT

package topology

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cubewalk/compass"
)

// Sentinel errors for topology resolution.
var (
	// ErrInvalidTopologyCount indicates the layout is not a cube net.
	ErrInvalidTopologyCount = errors.New("topology: invalid topology count")

	// ErrAmbiguousTopology indicates conflicting or non-unique edges.
	ErrAmbiguousTopology = errors.New("topology: ambiguous topology")

	// ErrNilLayout is returned when Resolve gets a nil layout.
	ErrNilLayout = errors.New("topology: layout is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("topology: invalid option supplied")
)

// FaceCount is the number of faces of a cube.
const FaceCount = 6

// Edge identifies one side of one face.
type Edge struct {
	Face int
	Dir  compass.Direction
}

// Turned returns the side of the same face k quarter-turns clockwise.
func (e Edge) Turned(k int) Edge {
	return Edge{Face: e.Face, Dir: e.Dir.Turned(k)}
}

func (e Edge) String() string {
	return fmt.Sprintf("%d.%s", e.Face, e.Dir)
}

// OppositeEdge is the face across an edge and the direction that face's
// local Up points to in the referring face's frame.
type OppositeEdge struct {
	Face        int
	Orientation compass.Direction
}

// Back returns the neighbour's side that is shared with side d.
func (o OppositeEdge) Back(d compass.Direction) compass.Direction {
	return d.Turned(1 - int(o.Orientation))
}

func (o OppositeEdge) String() string {
	return fmt.Sprintf("%d/%s", o.Face, o.Orientation)
}

// orientation returns the orientation of a link from side d to the
// neighbour's side back.
func orientation(d, back compass.Direction) compass.Direction {
	return d.Turned(1 - int(back))
}

// Corner is a face with two flat sides meeting at From→To, To being one
// quarter-turn clockwise from From.
type Corner struct {
	Face     int
	From, To compass.Direction
}

// Option configures Resolve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds resolution parameters.
type Options struct {
	// Logger receives per-pass debug records. Defaults to a discarding logger.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns Options with a silent logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}

// WithLogger routes resolution logs to l. A nil logger is an option
// violation.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}
