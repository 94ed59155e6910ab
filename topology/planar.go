// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cubewalk/bfs"
	"github.com/katalvlaran/cubewalk/compass"
	"github.com/katalvlaran/cubewalk/core"
	"github.com/katalvlaran/cubewalk/dfs"
)

// planar records every side whose neighbour sits next to it in the flat
// layout. Those pairs need no rotation. The layout must hold faces 1..6
// once each, joined as a tree.
func (r *resolver) planar() error {
	if err := r.checkLayout(); err != nil {
		return err
	}

	total := 0
	for _, c := range r.layout.Cells() {
		count := 0
		for _, d := range compass.Directions {
			nb, ok := r.layout.Neighbor(c.X, c.Y, d)
			if !ok {
				continue
			}
			if err := r.link(Edge{Face: c.Value, Dir: d}, Edge{Face: nb, Dir: d.Opposite()}); err != nil {
				return err
			}
			r.flat[c.Value-1][d] = true
			count++
		}
		if count == 0 {
			return fmt.Errorf("%w: face %d has no planar neighbour", ErrInvalidTopologyCount, c.Value)
		}
		total += count
	}
	r.log.WithFields(logrus.Fields{"pass": "planar", "sides": total}).Debug("planar adjacency built")

	return nil
}

// checkLayout verifies the face labels and that the flat adjacency is a
// spanning tree of the six faces.
func (r *resolver) checkLayout() error {
	cells := r.layout.Cells()
	if len(cells) != FaceCount {
		return fmt.Errorf("%w: layout has %d faces, want %d", ErrInvalidTopologyCount, len(cells), FaceCount)
	}
	for _, c := range cells {
		if c.Value > FaceCount {
			return fmt.Errorf("%w: face label %d out of range", ErrInvalidTopologyCount, c.Value)
		}
	}

	g, err := r.layout.ToCoreGraph()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTopologyCount, err)
	}
	has, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		return fmt.Errorf("topology: layout cycles: %w", err)
	}
	if has {
		return fmt.Errorf("%w: layout loops through blocks %s", ErrInvalidTopologyCount, blocks(g, cycles[0]))
	}
	res, err := bfs.BFS(g, strconv.Itoa(cells[0].Value))
	if err != nil {
		return fmt.Errorf("topology: layout walk: %w", err)
	}
	if len(res.Order) != FaceCount {
		return fmt.Errorf("%w: only %d faces are connected", ErrInvalidTopologyCount, len(res.Order))
	}

	return nil
}

// blocks renders faces as "ID(x,y)" using the block position stored on
// each layout vertex.
func blocks(g *core.Graph, ids []string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			parts = append(parts, id)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s(%v,%v)", id, v.Metadata["x"], v.Metadata["y"]))
	}

	return strings.Join(parts, "-")
}
