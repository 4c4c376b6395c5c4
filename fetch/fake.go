package fetch

import (
	"context"
	"time"

	"github.com/rustyeddy/marketdash/market"
)

// FakeSource is a deterministic in-memory Source for tests and offline demos.
type FakeSource struct {
	Series map[string]market.RawSeries
	Errs   map[string]error
}

// NewFakeSource returns an empty FakeSource.
func NewFakeSource() *FakeSource {
	return &FakeSource{
		Series: map[string]market.RawSeries{},
		Errs:   map[string]error{},
	}
}

// Add registers a raw series for a symbol.
func (f *FakeSource) Add(symbol string, raw market.RawSeries) {
	f.Series[symbol] = raw
}

// Fail registers an error for a symbol.
func (f *FakeSource) Fail(symbol string, err error) {
	f.Errs[symbol] = err
}

// Fetch returns the registered series or error for the symbol; unknown
// symbols come back empty, mirroring a provider with no data.
func (f *FakeSource) Fetch(_ context.Context, symbol string, _, _ time.Time, _ Interval) (market.RawSeries, error) {
	if err, ok := f.Errs[symbol]; ok {
		return market.RawSeries{}, err
	}
	return f.Series[symbol], nil
}
