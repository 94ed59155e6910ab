// SPDX-License-Identifier: MIT

// Command cubewalk reads puzzle notes and walks their path across the net,
// folded into a cube or wrapped flat.
//
// Usage:
//
//	cubewalk run [--face-size N] [--flat] [--trail] [--dump-topology] notes.txt
//	cubewalk topology [--face-size N] notes.txt
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
