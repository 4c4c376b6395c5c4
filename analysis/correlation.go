package analysis

import (
	"errors"
	"math"
	"sort"

	"github.com/rustyeddy/marketdash/indicators"
	"github.com/rustyeddy/marketdash/market"
)

// ErrInsufficientData reports that fewer than two symbols (or fewer than two
// overlapping return rows) survived the inner join, so no correlation can be
// computed. Callers render a warning instead of a heatmap.
var ErrInsufficientData = errors.New("insufficient overlapping data for correlation")

// CorrelationMatrix is a symmetric square table of pairwise Pearson
// correlations of daily returns, indexed by symbol.
type CorrelationMatrix struct {
	Symbols []string    `json:"symbols"`
	Values  [][]float64 `json:"values"`
}

// At returns the correlation between two symbols, or NaN when either is not
// part of the matrix.
func (m *CorrelationMatrix) At(a, b string) float64 {
	ai, bi := -1, -1
	for i, s := range m.Symbols {
		if s == a {
			ai = i
		}
		if s == b {
			bi = i
		}
	}
	if ai < 0 || bi < 0 {
		return math.NaN()
	}
	return m.Values[ai][bi]
}

// BuildCorrelationMatrix computes pairwise Pearson correlations of
// day-over-day percentage changes across symbols. Returns are inner-joined on
// dates where every included symbol has a defined value; union dates are not
// used. Fewer than two symbols with a close column, or fewer than two joined
// return rows, yields ErrInsufficientData.
func BuildCorrelationMatrix(series []market.Series) (*CorrelationMatrix, error) {
	type returnCol struct {
		symbol string
		byDate map[int64]float64
	}
	var cols []returnCol
	for _, s := range series {
		if s.Empty() || !s.HasClose() {
			continue
		}
		rets := indicators.Returns(s.Closes())
		byDate := map[int64]float64{}
		for i, b := range s.Bars {
			if !math.IsNaN(rets[i]) {
				byDate[b.Date.UnixNano()] = rets[i]
			}
		}
		cols = append(cols, returnCol{symbol: s.Symbol, byDate: byDate})
	}
	if len(cols) < 2 {
		return nil, ErrInsufficientData
	}

	// Inner join: keep only dates where every symbol has a defined return.
	var joined []int64
	for d := range cols[0].byDate {
		all := true
		for _, c := range cols[1:] {
			if _, ok := c.byDate[d]; !ok {
				all = false
				break
			}
		}
		if all {
			joined = append(joined, d)
		}
	}
	if len(joined) < 2 {
		return nil, ErrInsufficientData
	}
	sort.Slice(joined, func(i, j int) bool { return joined[i] < joined[j] })

	m := &CorrelationMatrix{
		Symbols: make([]string, len(cols)),
		Values:  make([][]float64, len(cols)),
	}
	vectors := make([][]float64, len(cols))
	for i, c := range cols {
		m.Symbols[i] = c.symbol
		vec := make([]float64, len(joined))
		for j, d := range joined {
			vec[j] = c.byDate[d]
		}
		vectors[i] = vec
		m.Values[i] = make([]float64, len(cols))
	}

	for i := range vectors {
		m.Values[i][i] = 1
		for j := i + 1; j < len(vectors); j++ {
			r := pearson(vectors[i], vectors[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m, nil
}

// pearson computes the Pearson correlation coefficient of two equal-length
// vectors. A constant vector has no defined correlation and yields NaN.
func pearson(x, y []float64) float64 {
	n := float64(len(x))
	var sumX, sumY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range x {
		dx, dy := x[i]-meanX, y[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}
