// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cubewalk/compass"
)

const (
	minCorners = 2
	maxCorners = 4
)

// corners enumerates faces with two consecutive planar sides. Direction
// pairs are the outer loop, faces in ID order the inner one.
func (r *resolver) corners() []Corner {
	var out []Corner
	for _, from := range compass.Directions {
		to := from.Turned(1)
		for f := 1; f <= FaceCount; f++ {
			if r.isFlat(Edge{Face: f, Dir: from}) && r.isFlat(Edge{Face: f, Dir: to}) {
				out = append(out, Corner{Face: f, From: from, To: to})
			}
		}
	}

	return out
}

// fold applies the cube-corner rule at every corner of the net, and once
// more at each neighbour whose planar strip continues past it.
func (r *resolver) fold() error {
	corners := r.corners()
	if n := len(corners); n < minCorners || n > maxCorners {
		return fmt.Errorf("%w: %d corners, want %d..%d", ErrInvalidTopologyCount, n, minCorners, maxCorners)
	}

	for _, c := range corners {
		if err := r.meet(Edge{Face: c.Face, Dir: c.From}); err != nil {
			return err
		}
		a, _ := r.get(Edge{Face: c.Face, Dir: c.From})
		if r.isFlat(Edge{Face: a.Face, Dir: c.From}) {
			if err := r.meet(Edge{Face: a.Face, Dir: c.From}); err != nil {
				return err
			}
		}
		b, _ := r.get(Edge{Face: c.Face, Dir: c.To})
		if r.isFlat(Edge{Face: b.Face, Dir: c.To}) {
			if err := r.meet(Edge{Face: b.Face, Dir: c.From}); err != nil {
				return err
			}
		}
	}
	r.log.WithFields(logrus.Fields{
		"pass":      "corner",
		"corners":   len(corners),
		"unmatched": len(r.unmatched()),
	}).Debug("corners folded")

	return nil
}

// meet applies the cube-corner rule at side e and the side clockwise of
// it: the two faces across them are joined at the vertex they share.
func (r *resolver) meet(e Edge) error {
	p, ok := r.get(e)
	if !ok {
		return fmt.Errorf("%w: corner side %v is unknown", ErrInvalidTopologyCount, e)
	}
	q, ok := r.get(e.Turned(1))
	if !ok {
		return fmt.Errorf("%w: corner side %v is unknown", ErrInvalidTopologyCount, e.Turned(1))
	}

	return r.link(p.Turned(-1), q.Turned(1))
}
