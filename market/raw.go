package market

import "time"

// RawColumn is one vendor-shaped column. Field is the vendor's field name
// (any casing); Ticker is the optional second level of a two-level column
// header. Cells holds one cell per row: single-symbol provider responses
// sometimes wrap each value in an extra dimension, and null values arrive as
// empty cells.
type RawColumn struct {
	Field  string
	Ticker string
	Cells  [][]float64
}

// RawSeries is the vendor-shaped table for one symbol over a date range.
// Dates and the cells of every column are parallel arrays. An empty RawSeries
// means the provider returned no data for the requested range, which is a
// valid outcome rather than an error.
type RawSeries struct {
	Dates   []time.Time
	Columns []RawColumn
}

// Empty reports whether the raw series carries no rows.
func (r RawSeries) Empty() bool { return len(r.Dates) == 0 }
