// SPDX-License-Identifier: MIT

// Package core provides a small, thread-safe, undirected simple graph used
// to hold cube-net connectivity: faces are vertices and shared sides are
// edges.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected: AddEdge(a, b) is visible from both endpoints.
//   - Simple: no self-loops (ErrLoopNotAllowed) and at most one edge per
//     vertex pair (ErrMultiEdgeNotAllowed). A cube face never borders itself
//     and two faces share at most one side, so either error signals a broken
//     topology.
//   - Labelled: an EdgeOption may attach a free-form Label (for example
//     "1:RIGHT|6:RIGHT") describing which sides meet.
//   - Deterministic: Vertices(), Edges(), Neighbors() and NeighborIDs() return
//     sorted results, so tests and dumps are reproducible.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); mutators always lock muVert before muEdgeAdj.
//
// Core Methods:
//
//	AddVertex(id string) error                                  // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	Vertex(id string) (*Vertex, error)                          // O(1)
//	AddEdge(from, to string, opts ...EdgeOption) (string, error) // O(1)
//	Neighbors(id string) ([]*Edge, error)                       // O(d log d)
//	NeighborIDs(id string) ([]string, error)                    // O(d log d)
//	Degree(id string) (int, error)                              // O(1)
//	Vertices() []string, Edges() []*Edge                        // sorted snapshots
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop requested.
//	ErrMultiEdgeNotAllowed - a second edge between the same two vertices.
package core
