package market

import (
	"math"
	"sort"
	"strings"
)

// fieldAliases maps vendor field spellings to canonical column names. Fields
// that map to "" are recognized but dropped (the raw close is preferred over
// vendor-adjusted variants). Unknown fields are skipped entirely.
var fieldAliases = map[string]string{
	"open":      "open",
	"high":      "high",
	"low":       "low",
	"close":     "close",
	"last":      "close",
	"price":     "close",
	"volume":    "volume",
	"vol":       "volume",
	"adj close": "",
	"adjclose":  "",
}

func canonicalField(name string) (string, bool) {
	canon, ok := fieldAliases[strings.ToLower(strings.TrimSpace(name))]
	return canon, ok && canon != ""
}

// Normalize converts a vendor-shaped RawSeries into a canonical Series for
// the given symbol.
//
// Two-level column headers collapse to their field name when the ticker
// qualifier matches the requested symbol; columns qualified with a different
// ticker belong to another symbol and are skipped. Every cell is flattened to
// a scalar (null cells become NaN). Rows are sorted ascending by date only
// when needed, duplicate dates keep the first occurrence, and rows without a
// date are dropped. Normalize never fails: malformed rows are coerced or
// dropped, and an empty input yields an empty series.
func Normalize(raw RawSeries, symbol string) Series {
	s := Series{Symbol: symbol}
	if raw.Empty() {
		return s
	}

	n := len(raw.Dates)
	cols := map[string][]float64{}
	for _, col := range raw.Columns {
		canon, ok := canonicalField(col.Field)
		if !ok {
			continue
		}
		if col.Ticker != "" && !strings.EqualFold(col.Ticker, symbol) {
			continue
		}
		if _, dup := cols[canon]; dup {
			continue // keep-first on duplicate columns
		}
		cols[canon] = flatten(col.Cells, n)
	}

	s.Bars = make([]Bar, 0, n)
	for i, date := range raw.Dates {
		if date.IsZero() {
			continue
		}
		s.Bars = append(s.Bars, Bar{
			Date:   date,
			Open:   cell(cols["open"], i),
			High:   cell(cols["high"], i),
			Low:    cell(cols["low"], i),
			Close:  cell(cols["close"], i),
			Volume: cell(cols["volume"], i),
		})
	}

	if !sort.SliceIsSorted(s.Bars, func(i, j int) bool {
		return s.Bars[i].Date.Before(s.Bars[j].Date)
	}) {
		sort.SliceStable(s.Bars, func(i, j int) bool {
			return s.Bars[i].Date.Before(s.Bars[j].Date)
		})
	}

	// Keep-first on duplicate dates.
	deduped := s.Bars[:0]
	var prev Bar
	for i, b := range s.Bars {
		if i > 0 && b.Date.Equal(prev.Date) {
			continue
		}
		deduped = append(deduped, b)
		prev = b
	}
	s.Bars = deduped
	return s
}

// flatten forces a column to a flat scalar-per-row sequence of length n.
// A cell wrapping its value in an extra dimension contributes its first
// value; an empty (null) or missing cell contributes NaN.
func flatten(cells [][]float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if i >= len(cells) || len(cells[i]) == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = cells[i][0]
	}
	return out
}

func cell(col []float64, i int) float64 {
	if col == nil {
		return math.NaN()
	}
	return col[i]
}
