// Package view drives one render cycle: fetch, normalize, indicators,
// alignment, correlation. Render is a pure function of its request and
// collaborators; every cycle recomputes from scratch with no cached state.
package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/marketdash/analysis"
	"github.com/rustyeddy/marketdash/fetch"
	"github.com/rustyeddy/marketdash/indicators"
	"github.com/rustyeddy/marketdash/market"
	"github.com/rustyeddy/marketdash/pkg/id"
	"github.com/rustyeddy/marketdash/quotes"
)

// Request is one user interaction's worth of parameters. Nothing here is
// persisted; a new Request is built for every render cycle.
type Request struct {
	Category quotes.Category
	Tickers  []string
	Start    time.Time
	End      time.Time
	Interval fetch.Interval

	ShowSMA          bool
	ShowRSI          bool
	ShowBollinger    bool
	CompareBenchmark bool

	SMAWindow       int
	RSIPeriod       int
	BollingerWindow int
}

// Defaults fills unset fields: category default tickers, one year of daily
// bars ending today, and the standard indicator windows.
func (r *Request) Defaults() {
	if r.Category == "" {
		r.Category = quotes.Stocks
	}
	if len(r.Tickers) == 0 {
		r.Tickers = quotes.DefaultTickers(r.Category)
	}
	if r.End.IsZero() {
		r.End = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if r.Start.IsZero() {
		r.Start = r.End.AddDate(-1, 0, 0)
	}
	if r.Interval == "" {
		r.Interval = fetch.IntervalDaily
	}
	if r.SMAWindow == 0 {
		r.SMAWindow = 50
	}
	if r.RSIPeriod == 0 {
		r.RSIPeriod = 14
	}
	if r.BollingerWindow == 0 {
		r.BollingerWindow = 20
	}
}

// Validate checks the request after defaults are applied.
func (r *Request) Validate() error {
	if !r.Category.Valid() {
		return fmt.Errorf("unknown category %q", r.Category)
	}
	if len(r.Tickers) == 0 {
		return errors.New("at least one ticker is required")
	}
	if !r.Interval.Valid() {
		return fmt.Errorf("unknown interval %q (want daily, weekly or monthly)", r.Interval)
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("end date %s precedes start date %s",
			r.End.Format("2006-01-02"), r.Start.Format("2006-01-02"))
	}
	return nil
}

// ParseTickers splits a user-edited comma-separated ticker list.
func ParseTickers(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// SymbolView is one symbol's canonical series plus its requested indicator
// columns.
type SymbolView struct {
	Series     market.Series
	Indicators indicators.Set
}

// ViewModel is everything one render cycle produces, already shaped for
// direct presentation: long-form chart points for overlays, matrix form for
// the heatmap, table rows for the overview. Worst case is a partial model
// with warnings.
type ViewModel struct {
	ID          string
	GeneratedAt time.Time
	Elapsed     time.Duration
	Request     Request

	Overview quotes.Table
	Symbols  []SymbolView
	Frame    *analysis.AlignedFrame
	Chart    []analysis.Point
	Matrix   *analysis.CorrelationMatrix
	Warnings []string
}

// Render executes one full cycle against the given collaborators. Symbols
// are fetched sequentially; a failing symbol becomes a warning, never an
// abort. A nil quote backend skips the live overview and uses placeholder
// rows. Only an invalid request or a nil source is an error.
func Render(ctx context.Context, req Request, src fetch.Source, qb quotes.Backend) (*ViewModel, error) {
	started := time.Now()

	req.Defaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("nil market data source")
	}

	vm := &ViewModel{
		ID:          id.New(),
		GeneratedAt: started.UTC(),
		Request:     req,
	}

	table, warn := quotes.Fetch(qb, req.Category)
	vm.Overview = table
	if warn != "" {
		vm.Warnings = append(vm.Warnings, warn)
	}

	symbols := req.Tickers
	if req.CompareBenchmark {
		symbols = appendUnique(symbols, req.Category.Benchmark())
	}

	res := fetch.All(ctx, src, symbols, req.Start, req.End, req.Interval)
	vm.Warnings = append(vm.Warnings, res.Warnings...)

	opts := indicators.Options{}
	if req.ShowSMA {
		opts.SMAWindow = req.SMAWindow
	}
	if req.ShowRSI {
		opts.RSIPeriod = req.RSIPeriod
	}
	if req.ShowBollinger {
		opts.BollingerWindow = req.BollingerWindow
	}

	for _, s := range res.Series {
		set, err := indicators.Compute(s, opts)
		if err != nil {
			return nil, err
		}
		if !s.HasClose() {
			vm.Warnings = append(vm.Warnings,
				fmt.Sprintf("%s: no close column, indicators disabled", s.Symbol))
		}
		vm.Symbols = append(vm.Symbols, SymbolView{Series: s, Indicators: set})
	}

	frame, err := analysis.BuildAlignedFrame(res.Series, req.ShowSMA, req.SMAWindow)
	switch {
	case errors.Is(err, analysis.ErrNoUsableData):
		vm.Warnings = append(vm.Warnings, "no usable data for combined chart")
	case err != nil:
		return nil, err
	default:
		vm.Frame = frame
		vm.Chart = frame.Points()
	}

	matrix, err := analysis.BuildCorrelationMatrix(res.Series)
	switch {
	case errors.Is(err, analysis.ErrInsufficientData):
		vm.Warnings = append(vm.Warnings, "insufficient overlapping data for correlation matrix")
	case err != nil:
		return nil, err
	default:
		vm.Matrix = matrix
	}

	vm.Elapsed = time.Since(started)
	return vm, nil
}

func appendUnique(symbols []string, sym string) []string {
	for _, s := range symbols {
		if strings.EqualFold(s, sym) {
			return symbols
		}
	}
	return append(symbols, sym)
}
