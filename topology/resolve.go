// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cubewalk/compass"
	"github.com/katalvlaran/cubewalk/gridgraph"
)

// resolver holds the append-only edge table while the passes run.
// links[f-1][d] is the neighbour side of face f's side d; Face 0 means
// unknown. flat marks sides found by the planar pass.
type resolver struct {
	layout *gridgraph.GridGraph
	links  [FaceCount][4]Edge
	flat   [FaceCount][4]bool
	log    logrus.FieldLogger
}

// Resolve infers the folded cube from the block layout of a net. Cell
// values 1..6 are face IDs, 0 marks an empty block.
// Returns ErrNilLayout, ErrOptionViolation, ErrInvalidTopologyCount or
// ErrAmbiguousTopology.
// Complexity: O(W×H) for the layout scan, constant afterwards.
func Resolve(layout *gridgraph.GridGraph, opts ...Option) (*Topology, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if layout == nil {
		return nil, ErrNilLayout
	}

	r := &resolver{layout: layout, log: o.Logger}
	if err := r.planar(); err != nil {
		return nil, err
	}
	if err := r.fold(); err != nil {
		return nil, err
	}
	if err := r.residual(); err != nil {
		return nil, err
	}

	t := r.topology()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	r.log.WithField("edges", 12).Debug("topology resolved")

	return t, nil
}

// Corners runs the planar pass over layout and returns the corners it
// exposes, in the order the corner pass visits them.
func Corners(layout *gridgraph.GridGraph) ([]Corner, error) {
	if layout == nil {
		return nil, ErrNilLayout
	}
	r := &resolver{layout: layout, log: DefaultOptions().Logger}
	if err := r.planar(); err != nil {
		return nil, err
	}

	return r.corners(), nil
}

// get returns the neighbour side of e, if known.
func (r *resolver) get(e Edge) (Edge, bool) {
	nb := r.links[e.Face-1][e.Dir]

	return nb, nb.Face != 0
}

// isFlat reports whether e was joined by the planar pass.
func (r *resolver) isFlat(e Edge) bool {
	return r.flat[e.Face-1][e.Dir]
}

// link joins a and b in both directions. Re-linking an identical pair is a
// no-op; anything that contradicts a published side is
// ErrAmbiguousTopology.
func (r *resolver) link(a, b Edge) error {
	if a.Face == b.Face {
		return fmt.Errorf("%w: %v folds onto its own face at %v", ErrAmbiguousTopology, a, b)
	}
	for _, p := range [2][2]Edge{{a, b}, {b, a}} {
		if cur, ok := r.get(p[0]); ok && cur != p[1] {
			return fmt.Errorf("%w: %v already meets %v, not %v", ErrAmbiguousTopology, p[0], cur, p[1])
		}
	}
	r.links[a.Face-1][a.Dir] = b
	r.links[b.Face-1][b.Dir] = a
	r.log.WithFields(logrus.Fields{"from": a.String(), "to": b.String()}).Trace("edge linked")

	return nil
}

// unmatched lists the sides still unknown, by face then direction.
func (r *resolver) unmatched() []Edge {
	var out []Edge
	for f := 1; f <= FaceCount; f++ {
		for _, d := range compass.Directions {
			e := Edge{Face: f, Dir: d}
			if _, ok := r.get(e); !ok {
				out = append(out, e)
			}
		}
	}

	return out
}

// topology freezes the table into a Topology.
func (r *resolver) topology() *Topology {
	t := &Topology{}
	for f := range r.links {
		for _, d := range compass.Directions {
			nb := r.links[f][d]
			t.edges[f][d] = OppositeEdge{Face: nb.Face, Orientation: orientation(d, nb.Dir)}
		}
	}

	return t
}
