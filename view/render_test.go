package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/marketdash/fetch"
	"github.com/rustyeddy/marketdash/market"
	"github.com/rustyeddy/marketdash/quotes"
)

func rawSeries(days []int, closes []float64) market.RawSeries {
	raw := market.RawSeries{}
	cells := make([][]float64, len(days))
	for i, d := range days {
		raw.Dates = append(raw.Dates, time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC))
		cells[i] = []float64{closes[i]}
	}
	raw.Columns = []market.RawColumn{{Field: "close", Cells: cells}}
	return raw
}

func testRequest(tickers ...string) Request {
	return Request{
		Category: quotes.Stocks,
		Tickers:  tickers,
		Start:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		Interval: fetch.IntervalDaily,
	}
}

func TestRenderFullCycle(t *testing.T) {
	src := fetch.NewFakeSource()
	src.Add("A", rawSeries([]int{1, 2, 3, 4, 5}, []float64{10, 11, 12, 11, 13}))
	src.Add("B", rawSeries([]int{1, 2, 3, 4, 5}, []float64{20, 21, 20, 22, 21}))

	req := testRequest("A", "B")
	req.ShowSMA = true
	req.SMAWindow = 2

	vm, err := Render(context.Background(), req, src, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, vm.ID)
	assert.Len(t, vm.Symbols, 2)
	require.NotNil(t, vm.Frame)
	assert.Len(t, vm.Frame.Columns, 4) // close + MA per symbol
	assert.NotEmpty(t, vm.Chart)
	require.NotNil(t, vm.Matrix)
	assert.Equal(t, []string{"A", "B"}, vm.Matrix.Symbols)
	// nil quote backend: placeholder overview without a warning
	assert.False(t, vm.Overview.Live)
	assert.NotEmpty(t, vm.Overview.Rows)
}

func TestRenderIsolatesSymbolFailure(t *testing.T) {
	src := fetch.NewFakeSource()
	src.Add("A", rawSeries([]int{1, 2, 3}, []float64{10, 11, 12}))
	src.Fail("BAD", errors.New("boom"))

	vm, err := Render(context.Background(), testRequest("A", "BAD"), src, nil)
	require.NoError(t, err)

	assert.Len(t, vm.Symbols, 1)
	require.NotNil(t, vm.Frame)
	assert.Len(t, vm.Frame.Columns, 1)
	assert.Nil(t, vm.Matrix) // one survivor is not enough for correlation

	found := false
	for _, w := range vm.Warnings {
		if w == "BAD: fetch failed: boom" {
			found = true
		}
	}
	assert.True(t, found, "warnings: %v", vm.Warnings)
}

func TestRenderInsufficientOverlapScenario(t *testing.T) {
	// A has closes on d1..d3, B on d1,d2: the aligned frame spans 3 dates but
	// only one return row overlaps, so the matrix is unavailable.
	src := fetch.NewFakeSource()
	src.Add("A", rawSeries([]int{1, 2, 3}, []float64{10, 11, 12}))
	src.Add("B", rawSeries([]int{1, 2}, []float64{20, 22}))

	vm, err := Render(context.Background(), testRequest("A", "B"), src, nil)
	require.NoError(t, err)

	require.NotNil(t, vm.Frame)
	assert.Len(t, vm.Frame.Dates, 3)
	assert.Nil(t, vm.Matrix)
	assert.Contains(t, vm.Warnings, "insufficient overlapping data for correlation matrix")
}

func TestRenderAllSymbolsEmpty(t *testing.T) {
	src := fetch.NewFakeSource()

	vm, err := Render(context.Background(), testRequest("GONE1", "GONE2"), src, nil)
	require.NoError(t, err)

	assert.Empty(t, vm.Symbols)
	assert.Nil(t, vm.Frame)
	assert.Contains(t, vm.Warnings, "no usable data for combined chart")
}

func TestRenderBenchmarkAppended(t *testing.T) {
	src := fetch.NewFakeSource()
	src.Add("A", rawSeries([]int{1, 2}, []float64{10, 11}))
	src.Add("^GSPC", rawSeries([]int{1, 2}, []float64{4000, 4010}))

	req := testRequest("A")
	req.CompareBenchmark = true

	vm, err := Render(context.Background(), req, src, nil)
	require.NoError(t, err)
	assert.Len(t, vm.Symbols, 2)
}

func TestRenderInvalidRequest(t *testing.T) {
	src := fetch.NewFakeSource()

	req := testRequest("A")
	req.Start = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	req.End = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	_, err := Render(context.Background(), req, src, nil)
	assert.Error(t, err)
}

func TestRenderQuoteBackendFallback(t *testing.T) {
	src := fetch.NewFakeSource()
	src.Add("A", rawSeries([]int{1, 2}, []float64{10, 11}))

	qb := &quotes.FakeBackend{Err: errors.New("provider down")}
	vm, err := Render(context.Background(), testRequest("A"), src, qb)
	require.NoError(t, err)

	assert.False(t, vm.Overview.Live)
	assert.NotEmpty(t, vm.Overview.Rows)
	require.NotEmpty(t, vm.Warnings)
	assert.Contains(t, vm.Warnings[0], "placeholder data")
}

func TestParseTickers(t *testing.T) {
	assert.Equal(t, []string{"AAPL", "MSFT"}, ParseTickers(" aapl, msft ,"))
	assert.Nil(t, ParseTickers(""))
}

func TestRequestDefaults(t *testing.T) {
	var req Request
	req.Defaults()

	assert.Equal(t, quotes.Stocks, req.Category)
	assert.Equal(t, quotes.DefaultTickers(quotes.Stocks), req.Tickers)
	assert.Equal(t, fetch.IntervalDaily, req.Interval)
	assert.Equal(t, 50, req.SMAWindow)
	assert.Equal(t, 14, req.RSIPeriod)
	assert.Equal(t, 20, req.BollingerWindow)
	assert.True(t, req.Start.Before(req.End))
}
