// SPDX-License-Identifier: MIT

// Package notes reads puzzle notes: the rows of a net, a blank line, then
// the path.
package notes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrMissingPath indicates no path line follows the net.
	ErrMissingPath = errors.New("notes: missing path")

	// ErrEmptyNet indicates the notes hold no net rows.
	ErrEmptyNet = errors.New("notes: empty net")
)

// Notes are the parsed contents of a notes file.
type Notes struct {
	// Rows are the net rows as written, without line terminators.
	Rows []string
	// Path is the instruction line, trimmed.
	Path string
}

// Parse reads notes from r. Carriage returns are dropped; trailing lines
// after the path are ignored.
func Parse(r io.Reader) (*Notes, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	n := &Notes{}
	inNet := true
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if inNet {
			if strings.TrimSpace(line) == "" {
				if len(n.Rows) > 0 {
					inNet = false
				}
				continue
			}
			n.Rows = append(n.Rows, line)
			continue
		}
		if p := strings.TrimSpace(line); p != "" {
			n.Path = p
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("notes: read: %w", err)
	}
	if len(n.Rows) == 0 {
		return nil, ErrEmptyNet
	}
	if n.Path == "" {
		return nil, ErrMissingPath
	}

	return n, nil
}

// Load parses the notes file at path.
func Load(path string) (*Notes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("notes: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
