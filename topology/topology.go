// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cubewalk/bfs"
	"github.com/katalvlaran/cubewalk/compass"
	"github.com/katalvlaran/cubewalk/core"
)

// cubeEdges is the number of edges of a cube.
const cubeEdges = 12

// Topology is the complete, read-only side table of a folded cube.
// It is safe for concurrent readers.
type Topology struct {
	edges [FaceCount][4]OppositeEdge
}

var _ yaml.Marshaler = (*Topology)(nil)

// New builds a Topology from an explicit table indexed by face-1 and
// direction, and validates it.
func New(table [FaceCount][4]OppositeEdge) (*Topology, error) {
	t := &Topology{edges: table}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Opposite returns the entry for side e, or the zero value if e.Face is
// not 1..6.
func (t *Topology) Opposite(e Edge) OppositeEdge {
	if e.Face < 1 || e.Face > FaceCount {
		return OppositeEdge{}
	}

	return t.edges[e.Face-1][e.Dir]
}

// Neighbor returns the side of the neighbouring face that side e is
// glued to.
func (t *Topology) Neighbor(e Edge) Edge {
	o := t.Opposite(e)

	return Edge{Face: o.Face, Dir: o.Back(e.Dir)}
}

// Validate checks that every side has a distinct neighbour that points
// back at it, and that the faces layer like a cube: four neighbours at
// distance one and one opposite face at distance two.
func (t *Topology) Validate() error {
	for f := 1; f <= FaceCount; f++ {
		seen := make(map[int]bool, 4)
		for _, d := range compass.Directions {
			e := Edge{Face: f, Dir: d}
			nb := t.Neighbor(e)
			if nb.Face < 1 || nb.Face > FaceCount || nb.Face == f {
				return fmt.Errorf("%w: side %v has no neighbour", ErrInvalidTopologyCount, e)
			}
			if back := t.Neighbor(nb); back != e {
				return fmt.Errorf("%w: %v meets %v but %v meets %v", ErrAmbiguousTopology, e, nb, nb, back)
			}
			if seen[nb.Face] {
				return fmt.Errorf("%w: face %d meets face %d twice", ErrAmbiguousTopology, f, nb.Face)
			}
			seen[nb.Face] = true
		}
	}

	g, err := t.Graph()
	if err != nil {
		return err
	}
	if n := g.EdgeCount(); n != cubeEdges {
		return fmt.Errorf("%w: %d face pairs, want %d", ErrInvalidTopologyCount, n, cubeEdges)
	}
	for f := 1; f <= FaceCount; f++ {
		id := strconv.Itoa(f)
		deg, err := g.Degree(id)
		if err != nil {
			return fmt.Errorf("topology: degree of face %d: %w", f, err)
		}
		if deg != 4 {
			return fmt.Errorf("%w: face %d borders %d faces", ErrInvalidTopologyCount, f, deg)
		}
		res, err := bfs.BFS(g, id, bfs.WithMaxDepth(2))
		if err != nil {
			return fmt.Errorf("topology: layering from face %d: %w", f, err)
		}
		if len(res.Order) != FaceCount || len(res.AtDepth(2)) != 1 {
			return fmt.Errorf("%w: face %d reaches %d faces within two folds, %d opposite",
				ErrInvalidTopologyCount, f, len(res.Order), len(res.AtDepth(2)))
		}
	}

	return nil
}

// Graph exports the faces as vertices "1".."6" and each cube edge once,
// labelled "1.RIGHT-6.UP" style from the lower face ID.
func (t *Topology) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for f := 1; f <= FaceCount; f++ {
		if err := g.AddVertex(strconv.Itoa(f)); err != nil {
			return nil, err
		}
	}
	for f := 1; f <= FaceCount; f++ {
		for _, d := range compass.Directions {
			e := Edge{Face: f, Dir: d}
			nb := t.Neighbor(e)
			if nb.Face <= f {
				continue
			}
			label := e.String() + "-" + nb.String()
			if _, err := g.AddEdge(strconv.Itoa(f), strconv.Itoa(nb.Face), core.WithEdgeLabel(label)); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrAmbiguousTopology, label, err)
			}
		}
	}

	return g, nil
}

// Seams lists each of the twelve cube edges once as "4.RIGHT-6.UP", from
// the lower face ID, in face then direction order.
func (t *Topology) Seams() ([]string, error) {
	g, err := t.Graph()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, cubeEdges)
	for _, e := range g.Edges() {
		out = append(out, e.Label)
	}

	return out, nil
}

// Document is the serialised form of a Topology.
type Document struct {
	Sides []Entry  `yaml:"sides"`
	Seams []string `yaml:"seams"`
}

// Entry is one row of the side table in a serialisable form.
type Entry struct {
	Face         int    `yaml:"face"`
	Side         string `yaml:"side"`
	Neighbor     int    `yaml:"neighbor"`
	NeighborSide string `yaml:"neighbor_side"`
	Orientation  string `yaml:"orientation"`
}

// Entries returns the 24 side entries by face then direction.
func (t *Topology) Entries() []Entry {
	out := make([]Entry, 0, FaceCount*4)
	for f := 1; f <= FaceCount; f++ {
		for _, d := range compass.Directions {
			o := t.Opposite(Edge{Face: f, Dir: d})
			out = append(out, Entry{
				Face:         f,
				Side:         d.String(),
				Neighbor:     o.Face,
				NeighborSide: o.Back(d).String(),
				Orientation:  o.Orientation.String(),
			})
		}
	}

	return out
}

// MarshalYAML encodes the topology as a Document.
func (t *Topology) MarshalYAML() (interface{}, error) {
	seams, err := t.Seams()
	if err != nil {
		return nil, err
	}

	return Document{Sides: t.Entries(), Seams: seams}, nil
}
