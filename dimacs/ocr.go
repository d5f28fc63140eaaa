package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/banana/bigraph"
)

// ReadOCR parses a `p ocr n_a n_b m [cutwidth]` instance from r. When the
// optional cutwidth token is present, the following n_a+n_b lines (one
// integer each) are consumed and discarded, matching the format's allowance
// for an ignored cutwidth ordering.
func ReadOCR(r io.Reader) (*bigraph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	var nA, nB, m int
	var hasCutwidth bool
	headerFound := false

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[0] != "p" || fields[1] != "ocr" {
			return nil, ErrMalformedHeader
		}
		var err error
		if nA, err = strconv.Atoi(fields[2]); err != nil {
			return nil, ErrMalformedHeader
		}
		if nB, err = strconv.Atoi(fields[3]); err != nil {
			return nil, ErrMalformedHeader
		}
		if len(fields) < 5 {
			return nil, ErrMalformedHeader
		}
		if m, err = strconv.Atoi(fields[4]); err != nil {
			return nil, ErrMalformedHeader
		}
		if len(fields) >= 6 {
			hasCutwidth = true
		}
		headerFound = true

		break
	}
	if !headerFound {
		return nil, ErrMalformedHeader
	}

	if hasCutwidth {
		for i := 0; i < nA+nB && sc.Scan(); i++ {
			// cutwidth ordering is consumed, never interpreted
		}
	}

	edges := make([]bigraph.Edge, 0, m)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("dimacs: edge line %q: %w", line, ErrMalformedHeader)
		}
		a, err1 := strconv.Atoi(fields[0])
		b, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("dimacs: edge line %q: %w", line, ErrMalformedHeader)
		}
		if a < 1 || a > nA || b < nA+1 || b > nA+nB {
			return nil, ErrVertexOutOfRange
		}
		edges = append(edges, bigraph.Edge{A: a - 1, B: b - nA - 1})
	}

	if len(edges) != m {
		return nil, ErrEdgeCountMismatch
	}

	return bigraph.NewGraph(nA, nB, edges)
}

// WriteOCROrder writes the solved B-vertex order as 1-based ids, one per
// line, offset by nA per the input format's b-indexing convention.
func WriteOCROrder(w io.Writer, nA int, order []int) error {
	bw := bufio.NewWriter(w)
	for _, id := range order {
		if _, err := fmt.Fprintf(bw, "%d\n", id+nA+1); err != nil {
			return err
		}
	}

	return bw.Flush()
}
