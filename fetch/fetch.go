// Package fetch retrieves raw market data from an external provider. The
// provider is abstracted behind Source so the render pipeline can run against
// the live Yahoo endpoint or a deterministic fake.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/rustyeddy/marketdash/market"
)

// Interval selects the bar spacing of a fetched series.
type Interval string

const (
	IntervalDaily   Interval = "daily"
	IntervalWeekly  Interval = "weekly"
	IntervalMonthly Interval = "monthly"
)

// Valid reports whether the interval is one of the supported values.
func (i Interval) Valid() bool {
	switch i {
	case IntervalDaily, IntervalWeekly, IntervalMonthly:
		return true
	}
	return false
}

// Source fetches the raw series for one symbol over a date range. An empty
// RawSeries with a nil error means the provider had no data for the request,
// which is a valid outcome (delisted ticker, bad range/interval combination).
type Source interface {
	Fetch(ctx context.Context, symbol string, start, end time.Time, interval Interval) (market.RawSeries, error)
}

// Result is the outcome of a batch fetch: the canonical series that produced
// data, plus one warning per symbol that failed or came back empty.
type Result struct {
	Series   []market.Series
	Warnings []string
}

// All fetches every symbol sequentially and normalizes what comes back.
// A failed or empty symbol is captured as a warning and excluded; it never
// aborts the remaining symbols.
func All(ctx context.Context, src Source, symbols []string, start, end time.Time, interval Interval) Result {
	var res Result
	for _, sym := range symbols {
		raw, err := src.Fetch(ctx, sym, start, end, interval)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: fetch failed: %v", sym, err))
			continue
		}
		s := market.Normalize(raw, sym)
		if s.Empty() {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: no data for the requested range", sym))
			continue
		}
		res.Series = append(res.Series, s)
	}
	return res
}
