package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/marketdash/market"
)

func TestCorrelationMatrixSymmetryAndDiagonal(t *testing.T) {
	a := testSeries("A", []int{1, 2, 3, 4, 5}, []float64{10, 11, 12, 11, 13})
	b := testSeries("B", []int{1, 2, 3, 4, 5}, []float64{20, 21, 20, 22, 21})

	m, err := BuildCorrelationMatrix([]market.Series{a, b})
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B"}, m.Symbols)
	assert.InDelta(t, 1.0, m.Values[0][0], 1e-9)
	assert.InDelta(t, 1.0, m.Values[1][1], 1e-9)
	assert.Equal(t, m.Values[0][1], m.Values[1][0])
	assert.GreaterOrEqual(t, m.Values[0][1], -1.0)
	assert.LessOrEqual(t, m.Values[0][1], 1.0)
}

func TestCorrelationPerfectlyCorrelated(t *testing.T) {
	a := testSeries("A", []int{1, 2, 3, 4}, []float64{10, 11, 12, 13})
	b := testSeries("B", []int{1, 2, 3, 4}, []float64{20, 22, 24, 26})

	m, err := BuildCorrelationMatrix([]market.Series{a, b})
	require.NoError(t, err)
	// Identical return direction every day, but not identical magnitudes.
	assert.Greater(t, m.At("A", "B"), 0.99)
}

func TestCorrelationInsufficientOverlap(t *testing.T) {
	// A has returns on days 2,3; B only on day 2. The inner join keeps one
	// return row, which is not enough.
	a := testSeries("A", []int{1, 2, 3}, []float64{10, 11, 12})
	b := testSeries("B", []int{1, 2}, []float64{20, 22})

	_, err := BuildCorrelationMatrix([]market.Series{a, b})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestCorrelationNeedsTwoSymbols(t *testing.T) {
	a := testSeries("A", []int{1, 2, 3}, []float64{10, 11, 12})

	_, err := BuildCorrelationMatrix([]market.Series{a})
	assert.ErrorIs(t, err, ErrInsufficientData)

	empty := market.Series{Symbol: "GONE"}
	_, err = BuildCorrelationMatrix([]market.Series{a, empty})
	assert.ErrorIs(t, err, ErrInsufficientData)
}
