package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/banana/trigraph"
)

// ReadTWW parses a `p tww n m` instance from r into a Trigraph whose black
// edges are the instance's edges.
func ReadTWW(r io.Reader) (*trigraph.Trigraph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	var n, m int
	headerFound := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 || fields[0] != "p" || fields[1] != "tww" {
			return nil, ErrMalformedHeader
		}
		var err error
		if n, err = strconv.Atoi(fields[2]); err != nil {
			return nil, ErrMalformedHeader
		}
		if m, err = strconv.Atoi(fields[3]); err != nil {
			return nil, ErrMalformedHeader
		}
		headerFound = true

		break
	}
	if !headerFound {
		return nil, ErrMalformedHeader
	}

	edges := make([]trigraph.Edge, 0, m)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("dimacs: edge line %q: %w", line, ErrMalformedHeader)
		}
		u, err1 := strconv.Atoi(fields[0])
		v, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("dimacs: edge line %q: %w", line, ErrMalformedHeader)
		}
		if u < 1 || u > n || v < 1 || v > n {
			return nil, ErrVertexOutOfRange
		}
		edges = append(edges, trigraph.Edge{U: u - 1, V: v - 1})
	}

	if len(edges) != m {
		return nil, ErrEdgeCountMismatch
	}

	return trigraph.New(n, edges), nil
}

// ContractionPair is a single `parent child` output line, 0-based; Parent
// survives, Child is absorbed.
type ContractionPair struct {
	Parent, Child int
}

// WriteTWWSequence writes a contraction sequence as `parent child` pairs,
// 1-based, in application order.
func WriteTWWSequence(w io.Writer, steps []ContractionPair) error {
	bw := bufio.NewWriter(w)
	for _, s := range steps {
		if _, err := fmt.Fprintf(bw, "%d %d\n", s.Parent+1, s.Child+1); err != nil {
			return err
		}
	}

	return bw.Flush()
}
