package export

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/marketdash/analysis"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestWriteFrameCSV(t *testing.T) {
	frame := &analysis.AlignedFrame{
		Dates: []time.Time{day(1), day(2)},
		Columns: []analysis.Column{
			{Name: "A", Values: []float64{10, 11}},
			{Name: "B", Values: []float64{20, math.NaN()}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFrameCSV(&buf, frame))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,A,B", lines[0])
	assert.Equal(t, "2025-01-01,10.000000,20.000000", lines[1])
	// gap cell is blank, not zero
	assert.Equal(t, "2025-01-02,11.000000,", lines[2])
}

func TestWriteMatrixCSV(t *testing.T) {
	m := &analysis.CorrelationMatrix{
		Symbols: []string{"A", "B"},
		Values:  [][]float64{{1, 0.5}, {0.5, 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMatrixCSV(&buf, m))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ",A,B", lines[0])
	assert.Equal(t, "A,1.000000,0.500000", lines[1])
	assert.Equal(t, "B,0.500000,1.000000", lines[2])
}

func TestWriteFrameFile(t *testing.T) {
	frame := &analysis.AlignedFrame{
		Dates:   []time.Time{day(1)},
		Columns: []analysis.Column{{Name: "A", Values: []float64{1}}},
	}

	path := t.TempDir() + "/frame.csv"
	require.NoError(t, WriteFrameFile(path, frame))

	var buf bytes.Buffer
	require.NoError(t, WriteFrameCSV(&buf, frame))
	assert.NotEmpty(t, buf.String())
}
