// SPDX-License-Identifier: MIT

package dfs

import "errors"

// Vertex visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

// ErrNeighbors wraps a failure to list a vertex's neighbours.
var ErrNeighbors = errors.New("dfs: neighbor iteration error")
