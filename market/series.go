// Package market defines the canonical time-series types shared by the
// dashboard core: vendor-shaped raw series, normalized per-symbol series,
// and the normalizer that converts between them.
package market

import (
	"math"
	"time"
)

// Bar is one OHLCV row of a canonical series. Missing numeric fields are NaN.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series is a canonical per-symbol table: dates strictly ascending and
// unique, every numeric field a flat scalar per row.
type Series struct {
	Symbol string
	Bars   []Bar
}

// Empty reports whether the series carries no rows.
func (s Series) Empty() bool { return len(s.Bars) == 0 }

// HasClose reports whether at least one bar carries a usable close. Indicator
// computation and charting are disabled for a series without closes.
func (s Series) HasClose() bool {
	for _, b := range s.Bars {
		if !math.IsNaN(b.Close) {
			return true
		}
	}
	return false
}

// Dates returns the series' date axis.
func (s Series) Dates() []time.Time {
	out := make([]time.Time, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Date
	}
	return out
}

// Closes returns the close column.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

// CloseOn returns the close at the given date, or NaN when the series has no
// bar on that date.
func (s Series) CloseOn(date time.Time) float64 {
	for _, b := range s.Bars {
		if b.Date.Equal(date) {
			return b.Close
		}
	}
	return math.NaN()
}

// AsRaw re-wraps a canonical series in the vendor shape. Useful for round-trip
// checks: normalizing the result yields an identical series.
func (s Series) AsRaw() RawSeries {
	raw := RawSeries{Dates: s.Dates()}
	fields := []struct {
		name string
		get  func(Bar) float64
	}{
		{"open", func(b Bar) float64 { return b.Open }},
		{"high", func(b Bar) float64 { return b.High }},
		{"low", func(b Bar) float64 { return b.Low }},
		{"close", func(b Bar) float64 { return b.Close }},
		{"volume", func(b Bar) float64 { return b.Volume }},
	}
	for _, f := range fields {
		col := RawColumn{Field: f.name, Cells: make([][]float64, len(s.Bars))}
		for i, b := range s.Bars {
			v := f.get(b)
			if math.IsNaN(v) {
				continue // null cell
			}
			col.Cells[i] = []float64{v}
		}
		raw.Columns = append(raw.Columns, col)
	}
	return raw
}
