// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// residual pairs the sides the earlier passes left open. Two open sides
// are the cube's last edge. Four are two edges told apart by the face
// each pair shares a vertex with. Any other count gets one round of
// vertex inference and is looked at again.
func (r *resolver) residual() error {
	for {
		open := r.unmatched()
		r.log.WithFields(logrus.Fields{"pass": "residual", "unmatched": len(open)}).Debug("residual edges")

		switch len(open) {
		case 0:
			return nil
		case 2:
			if err := r.link(open[0], open[1]); err != nil {
				return err
			}
		case 4:
			if err := r.pairSiblings(open); err != nil {
				return err
			}
		default:
			progress, err := r.infer(open)
			if err != nil {
				return err
			}
			if !progress {
				return fmt.Errorf("%w: %d sides left with no inference", ErrInvalidTopologyCount, len(open))
			}
		}
	}
}

// pairSiblings links four open sides in two pairs. Each open side must
// have exactly one resolved adjacent side (a quarter-turn either way)
// leading to a face that holds no open side; sides sharing that face are
// siblings around one cube vertex.
func (r *resolver) pairSiblings(open []Edge) error {
	busy := make(map[int]bool, len(open))
	for _, e := range open {
		busy[e.Face] = true
	}

	var order []int
	groups := make(map[int][]Edge)
	for _, e := range open {
		var ext []int
		for _, k := range []int{-1, 1} {
			if nb, ok := r.get(e.Turned(k)); ok && !busy[nb.Face] {
				ext = append(ext, nb.Face)
			}
		}
		if len(ext) != 1 {
			return fmt.Errorf("%w: side %v reaches %d outside faces", ErrAmbiguousTopology, e, len(ext))
		}
		if _, seen := groups[ext[0]]; !seen {
			order = append(order, ext[0])
		}
		groups[ext[0]] = append(groups[ext[0]], e)
	}

	for _, f := range order {
		g := groups[f]
		if len(g) != 2 {
			return fmt.Errorf("%w: %d open sides share face %d", ErrAmbiguousTopology, len(g), f)
		}
		if err := r.link(g[0], g[1]); err != nil {
			return err
		}
	}

	return nil
}

// infer resolves open sides through a resolved neighbour: if side e of X
// meets P, and P's next side round the shared vertex is known, the face
// there meets X at e. Reports whether any side was linked.
func (r *resolver) infer(open []Edge) (bool, error) {
	progress := false
	for _, e := range open {
		if _, ok := r.get(e); ok {
			continue
		}
		// Clockwise neighbour first, then anticlockwise.
		for _, k := range []int{1, -1} {
			p, ok := r.get(e.Turned(k))
			if !ok {
				continue
			}
			y, ok := r.get(p.Turned(k))
			if !ok {
				continue
			}
			if err := r.link(e, y.Turned(k)); err != nil {
				return progress, err
			}
			progress = true

			break
		}
	}

	return progress, nil
}
