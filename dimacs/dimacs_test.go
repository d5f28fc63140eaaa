package dimacs_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banana/dimacs"
)

func TestReadOCR_ParsesHeaderAndEdges(t *testing.T) {
	input := "c a comment\np ocr 2 2 2\n1 3\n2 4\n"
	g, err := dimacs.ReadOCR(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumA())
	assert.Equal(t, 2, g.NumB())
}

func TestReadOCR_ConsumesCutwidthOrdering(t *testing.T) {
	input := "p ocr 2 2 2 1\n1\n2\n3\n4\n1 3\n2 4\n"
	g, err := dimacs.ReadOCR(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumB())
}

func TestReadOCR_RejectsOutOfRangeEdge(t *testing.T) {
	input := "p ocr 2 2 1\n1 99\n"
	_, err := dimacs.ReadOCR(strings.NewReader(input))
	assert.ErrorIs(t, err, dimacs.ErrVertexOutOfRange)
}

func TestReadOCR_RejectsEdgeCountMismatch(t *testing.T) {
	input := "p ocr 2 2 2\n1 3\n"
	_, err := dimacs.ReadOCR(strings.NewReader(input))
	assert.ErrorIs(t, err, dimacs.ErrEdgeCountMismatch)
}

func TestWriteOCROrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dimacs.WriteOCROrder(&buf, 2, []int{0, 1}))
	assert.Equal(t, "3\n4\n", buf.String())
}

func TestReadTWW_ParsesTriangle(t *testing.T) {
	input := "p tww 3 3\n1 2\n2 3\n1 3\n"
	g, err := dimacs.ReadTWW(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumVertices())
}

func TestWriteTWWSequence(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dimacs.WriteTWWSequence(&buf, []dimacs.ContractionPair{{Parent: 1, Child: 0}, {Parent: 2, Child: 1}}))
	assert.Equal(t, "2 1\n3 2\n", buf.String())
}
