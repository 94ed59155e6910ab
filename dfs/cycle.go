// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/cubewalk/core"
)

// DetectCycles inspects undirected graph g for cycles.
// Returns (true, cycles, nil) if any back edge closes a cycle, and
// (false, nil, nil) for a forest. A nil graph is cycle-free.
// Cycles are sorted by their comma-joined signature.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	path := make([]string, 0, len(verts))
	var cycles [][]string

	for _, v := range verts {
		if state[v] != White {
			continue
		}
		if err := visit(g, v, "", state, &path, &cycles); err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
		}
	}
	if len(cycles) == 0 {
		return false, nil, nil
	}
	sort.Slice(cycles, func(i, j int) bool {
		return strings.Join(cycles[i], ",") < strings.Join(cycles[j], ",")
	})

	return true, cycles, nil
}

// visit explores id, whose DFS parent is parent ("" for a root), and
// records the cycle closed by every Gray neighbour other than the parent.
func visit(g *core.Graph, id, parent string, state map[string]int, path *[]string, cycles *[][]string) error {
	state[id] = Gray
	*path = append(*path, id)

	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrNeighbors, id, err)
	}
	for _, nbr := range nbrs {
		switch state[nbr] {
		case White:
			if err := visit(g, nbr, id, state, path, cycles); err != nil {
				return err
			}
		case Gray:
			if nbr == parent {
				continue
			}
			*cycles = append(*cycles, canonical(*path, nbr))
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil
}

// canonical returns the closed cycle formed by the stack suffix starting
// at start, rotated to its smallest vertex and oriented towards the
// smaller neighbour.
func canonical(path []string, start string) []string {
	i := len(path) - 1
	for path[i] != start {
		i--
	}
	base := append([]string(nil), path[i:]...)

	lo := 0
	for j, v := range base {
		if v < base[lo] {
			lo = j
		}
	}
	n := len(base)
	rot := make([]string, n)
	for j := range rot {
		rot[j] = base[(lo+j)%n]
	}
	if n > 2 && rot[n-1] < rot[1] {
		for a, b := 1, n-1; a < b; a, b = a+1, b-1 {
			rot[a], rot[b] = rot[b], rot[a]
		}
	}

	return append(rot, rot[0])
}
