// Package analysis builds the derived views behind the combined chart and the
// correlation heatmap: the aligned multi-symbol frame and the matrix of
// pairwise daily-return correlations.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rustyeddy/marketdash/indicators"
	"github.com/rustyeddy/marketdash/market"
)

// ErrNoUsableData reports that no symbol contributed a usable close column,
// so there is nothing to chart. Callers render a warning instead of a chart.
var ErrNoUsableData = errors.New("no usable data for combined chart")

// Point is one long-form chart row: one (date, series-id, value) triple,
// shaped for direct overlay plotting.
type Point struct {
	Date   time.Time `json:"date"`
	Series string    `json:"series"`
	Value  float64   `json:"value"`
}

// Column is one named value column of an AlignedFrame, parallel to the
// frame's date axis. Gaps are NaN.
type Column struct {
	Name   string
	Values []float64
}

// AlignedFrame is the union of all symbols' dates (sorted, deduplicated)
// with each symbol's closes reindexed onto that axis. Dates a symbol lacks
// hold NaN: gaps stay gaps, there is no fill or interpolation.
type AlignedFrame struct {
	Dates   []time.Time
	Columns []Column
}

// BuildAlignedFrame aligns all non-empty series onto the sorted union of
// their dates and emits one close column per usable symbol. When includeMA is
// true, each usable symbol additionally contributes a "<SYM> N-Day MA" column
// sharing the same date axis. Returns ErrNoUsableData when no symbol has a
// close column to contribute.
func BuildAlignedFrame(series []market.Series, includeMA bool, maWindow int) (*AlignedFrame, error) {
	frame := &AlignedFrame{Dates: dateUnion(series)}

	for _, s := range series {
		if s.Empty() || !s.HasClose() {
			continue
		}
		frame.Columns = append(frame.Columns, Column{
			Name:   s.Symbol,
			Values: reindex(s, s.Closes(), frame.Dates),
		})
		if includeMA && maWindow > 0 {
			ma, err := indicators.SMA(s.Closes(), maWindow)
			if err != nil {
				return nil, err
			}
			frame.Columns = append(frame.Columns, Column{
				Name:   fmt.Sprintf("%s %d-Day MA", s.Symbol, maWindow),
				Values: reindex(s, ma, frame.Dates),
			})
		}
	}

	if len(frame.Columns) == 0 {
		return nil, ErrNoUsableData
	}
	return frame, nil
}

// Points flattens the frame into long-form chart rows. Gap cells are omitted:
// a missing value is absent from the overlay, not zero.
func (f *AlignedFrame) Points() []Point {
	var pts []Point
	for _, col := range f.Columns {
		for i, v := range col.Values {
			if math.IsNaN(v) {
				continue
			}
			pts = append(pts, Point{Date: f.Dates[i], Series: col.Name, Value: v})
		}
	}
	return pts
}

// Column returns the named column, or nil when the frame has no such column.
func (f *AlignedFrame) Column(name string) *Column {
	for i := range f.Columns {
		if f.Columns[i].Name == name {
			return &f.Columns[i]
		}
	}
	return nil
}

// dateUnion returns the sorted, deduplicated union of all non-empty series'
// dates.
func dateUnion(series []market.Series) []time.Time {
	seen := map[int64]time.Time{}
	for _, s := range series {
		for _, d := range s.Dates() {
			seen[d.UnixNano()] = d
		}
	}
	out := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// reindex maps a column parallel to the series' own bars onto the union date
// axis. Dates the series lacks become NaN.
func reindex(s market.Series, values []float64, dates []time.Time) []float64 {
	byDate := make(map[int64]float64, len(s.Bars))
	for i, b := range s.Bars {
		byDate[b.Date.UnixNano()] = values[i]
	}
	out := make([]float64, len(dates))
	for i, d := range dates {
		if v, ok := byDate[d.UnixNano()]; ok {
			out[i] = v
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}
