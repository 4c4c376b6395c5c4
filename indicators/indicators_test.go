package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMAWarmupAndValues(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	out, err := SMA(values, 3)
	require.NoError(t, err)
	require.Len(t, out, 5)

	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	assert.InDelta(t, 2.0, out[2], 1e-9)
	assert.InDelta(t, 3.0, out[3], 1e-9)
	assert.InDelta(t, 4.0, out[4], 1e-9)
}

func TestSMAShorterThanWindow(t *testing.T) {
	out, err := SMA([]float64{1, 2}, 5)
	require.NoError(t, err)
	for _, v := range out {
		assert.True(t, math.IsNaN(v))
	}
}

func TestSMABadWindow(t *testing.T) {
	_, err := SMA([]float64{1}, 0)
	assert.Error(t, err)
}

func TestRSIRangeAndWarmup(t *testing.T) {
	closes := []float64{44, 44.5, 44.2, 44.9, 45.3, 45.0, 45.8, 46.2, 45.9, 46.5,
		46.8, 46.3, 46.9, 47.2, 47.0, 47.6, 48.1, 47.8, 48.4, 48.9}

	out, err := RSI(closes, 14)
	require.NoError(t, err)
	require.Len(t, out, len(closes))

	for i := 0; i < 14; i++ {
		assert.True(t, math.IsNaN(out[i]), "row %d should be undefined", i)
	}
	for i := 14; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i], 0.0)
		assert.LessOrEqual(t, out[i], 100.0)
	}
}

func TestRSISaturatesAtHundred(t *testing.T) {
	// Strictly rising closes: the trailing loss sum is zero.
	closes := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	out, err := RSI(closes, 5)
	require.NoError(t, err)
	assert.Equal(t, 100.0, out[len(out)-1])
}

func TestRSIAllFalling(t *testing.T) {
	closes := []float64{8, 7, 6, 5, 4, 3, 2, 1}

	out, err := RSI(closes, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, out[len(out)-1], 1e-9)
}

func TestBollingerBandWidth(t *testing.T) {
	// 25 closes, window 20: rows 0..18 undefined, rows 19..24 defined with
	// upper-lower = 4 * rolling stddev.
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 100 + float64(i%7)
	}

	mid, upper, lower, err := Bollinger(closes, 20)
	require.NoError(t, err)

	for i := 0; i < 19; i++ {
		assert.True(t, math.IsNaN(mid[i]))
		assert.True(t, math.IsNaN(upper[i]))
		assert.True(t, math.IsNaN(lower[i]))
	}
	for i := 19; i < 25; i++ {
		require.False(t, math.IsNaN(mid[i]), "row %d should be defined", i)
		sd := sampleStddev(closes[i-19:i+1], mid[i])
		assert.InDelta(t, 4*sd, upper[i]-lower[i], 1e-9)
		assert.InDelta(t, mid[i], (upper[i]+lower[i])/2, 1e-9)
	}
}

func TestBollingerSampleStddev(t *testing.T) {
	// Sample (n-1) convention: {2,4,4,4,5,5,7,9} has sample stddev ~2.138.
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	mid, upper, _, err := Bollinger(values, 8)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, mid[7], 1e-9)
	assert.InDelta(t, 5.0+2*2.1380899, upper[7], 1e-5)
}

func TestReturns(t *testing.T) {
	out := Returns([]float64{10, 11, 12})

	require.Len(t, out, 3)
	assert.True(t, math.IsNaN(out[0]))
	assert.InDelta(t, 0.1, out[1], 1e-9)
	assert.InDelta(t, 1.0/11, out[2], 1e-9)
}

func TestReturnsSkipsNaNAndZero(t *testing.T) {
	out := Returns([]float64{0, 5, math.NaN(), 6})

	assert.True(t, math.IsNaN(out[1])) // previous close is zero
	assert.True(t, math.IsNaN(out[2]))
	assert.True(t, math.IsNaN(out[3])) // previous close is NaN
}
