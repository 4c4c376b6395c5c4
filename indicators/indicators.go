// Package indicators provides technical analysis indicators for charting.
//
// All functions are pure and operate on flat float64 slices, returning a
// slice of the same length. Entries inside an indicator's warmup prefix are
// NaN, which downstream rendering treats as "undefined" rather than an error.
// A window that contains a NaN input also yields NaN.
package indicators

import (
	"fmt"
	"math"
)

// SMA computes the rolling arithmetic mean of values over window trailing
// rows (inclusive of the current row). The first window-1 entries are NaN.
func SMA(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("window must be positive, got %d", window)
	}

	out := nanSlice(len(values))
	for i := window - 1; i < len(values); i++ {
		if m, ok := windowMean(values[i-window+1 : i+1]); ok {
			out[i] = m
		}
	}
	return out, nil
}

// Bollinger computes the rolling mean (mid) and mid ± 2 rolling standard
// deviations (upper, lower) of values over window trailing rows. The
// standard deviation uses the sample (n-1) formula. The first window-1
// entries of each band are NaN.
func Bollinger(values []float64, window int) (mid, upper, lower []float64, err error) {
	if window <= 0 {
		return nil, nil, nil, fmt.Errorf("window must be positive, got %d", window)
	}

	mid = nanSlice(len(values))
	upper = nanSlice(len(values))
	lower = nanSlice(len(values))
	for i := window - 1; i < len(values); i++ {
		w := values[i-window+1 : i+1]
		m, ok := windowMean(w)
		if !ok {
			continue
		}
		sd := sampleStddev(w, m)
		mid[i] = m
		upper[i] = m + 2*sd
		lower[i] = m - 2*sd
	}
	return mid, upper, lower, nil
}

// RSI computes the Relative Strength Index of closes over period trailing
// rows: first differences split into gains and losses, rolling means of each,
// rs = avgGain/avgLoss, rsi = 100 - 100/(1+rs). A window whose loss average
// is exactly zero saturates to 100. The first period entries are NaN.
func RSI(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("period must be positive, got %d", period)
	}

	out := nanSlice(len(closes))
	if len(closes) < 2 {
		return out, nil
	}

	// First differences; the difference column starts one row late, so the
	// rolling means below cannot be defined before index period.
	gains := nanSlice(len(closes))
	losses := nanSlice(len(closes))
	for i := 1; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		if math.IsNaN(d) {
			continue
		}
		gains[i], losses[i] = 0, 0
		if d > 0 {
			gains[i] = d
		} else if d < 0 {
			losses[i] = -d
		}
	}

	for i := period; i < len(closes); i++ {
		avgGain, okG := windowMean(gains[i-period+1 : i+1])
		avgLoss, okL := windowMean(losses[i-period+1 : i+1])
		if !okG || !okL {
			continue
		}
		if avgLoss == 0 {
			out[i] = 100
			continue
		}
		rs := avgGain / avgLoss
		out[i] = 100 - 100/(1+rs)
	}
	return out, nil
}

// Returns computes the day-over-day percentage change of closes. The first
// entry is NaN, as is any entry whose current or previous close is NaN or
// whose previous close is zero.
func Returns(closes []float64) []float64 {
	out := nanSlice(len(closes))
	for i := 1; i < len(closes); i++ {
		prev, cur := closes[i-1], closes[i]
		if math.IsNaN(prev) || math.IsNaN(cur) || prev == 0 {
			continue
		}
		out[i] = (cur - prev) / prev
	}
	return out
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// windowMean returns the mean of w, reporting false when any entry is NaN.
func windowMean(w []float64) (float64, bool) {
	sum := 0.0
	for _, v := range w {
		if math.IsNaN(v) {
			return 0, false
		}
		sum += v
	}
	return sum / float64(len(w)), true
}

// sampleStddev computes the sample (n-1) standard deviation of w around mean.
// A single-element window has zero deviation.
func sampleStddev(w []float64, mean float64) float64 {
	if len(w) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range w {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(w)-1))
}
