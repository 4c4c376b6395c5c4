// Package quotes provides the per-category overview tables shown at the top
// of the dashboard: a handful of headline symbols with current price and
// daily change. Live data comes from Yahoo Finance; when the provider is
// unreachable the built-in placeholder rows are shown instead.
package quotes

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category is one dashboard tab.
type Category string

const (
	Stocks      Category = "stocks"
	Markets     Category = "markets"
	Crypto      Category = "crypto"
	Forex       Category = "forex"
	Commodities Category = "commodities"
)

// Categories lists all dashboard categories in display order.
func Categories() []Category {
	return []Category{Stocks, Markets, Crypto, Forex, Commodities}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, k := range Categories() {
		if c == k {
			return true
		}
	}
	return false
}

// Title returns the category's display heading.
func (c Category) Title() string {
	switch c {
	case Stocks:
		return "Top 5 Stocks"
	case Markets:
		return "Global Market Indices"
	case Crypto:
		return "Top Cryptocurrencies"
	case Forex:
		return "Forex Rates"
	case Commodities:
		return "Commodities Overview"
	}
	return string(c)
}

var defaultTickers = map[Category][]string{
	Stocks:      {"AAPL", "MSFT", "AMZN", "GOOGL", "NVDA"},
	Markets:     {"^GSPC", "^IXIC", "^FTSE", "^GDAXI", "^N225", "^HSI"},
	Crypto:      {"BTC-USD", "ETH-USD", "USDT-USD", "BNB-USD", "XRP-USD"},
	Forex:       {"EURUSD=X", "JPY=X", "GBPUSD=X", "AUDUSD=X"},
	Commodities: {"GC=F", "SI=F", "CL=F", "NG=F", "PL=F"},
}

// DefaultTickers returns the category's default symbol list.
func DefaultTickers(c Category) []string {
	out := make([]string, len(defaultTickers[c]))
	copy(out, defaultTickers[c])
	return out
}

var benchmarks = map[Category]string{
	Stocks:      "^GSPC",
	Markets:     "^GSPC",
	Crypto:      "BTC-USD",
	Forex:       "DX-Y.NYB",
	Commodities: "GC=F",
}

// Benchmark returns the index the category is compared against when the
// compare-to-benchmark toggle is on.
func (c Category) Benchmark() string { return benchmarks[c] }

// Row is one overview table entry.
type Row struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ChangePct decimal.Decimal `json:"change_pct"`
}

// Table is the overview for one category. Live reports whether the rows came
// from the provider or from the placeholder data.
type Table struct {
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Rows     []Row    `json:"rows"`
	Live     bool     `json:"live"`
}

// Backend returns current quotes for a list of symbols.
type Backend interface {
	Quotes(symbols []string) ([]Row, error)
}

// Fetch builds the overview table for a category. When the backend fails or
// returns no rows the placeholder table is used and a warning is returned
// alongside; the warning is informational, never fatal.
func Fetch(b Backend, c Category) (Table, string) {
	t := Table{Category: c, Title: c.Title()}

	if b != nil {
		rows, err := b.Quotes(DefaultTickers(c))
		if err == nil && len(rows) > 0 {
			t.Rows = rows
			t.Live = true
			return t, ""
		}
		if err != nil {
			t.Rows = Placeholder(c)
			return t, fmt.Sprintf("%s quotes unavailable, showing placeholder data: %v", c, err)
		}
	}

	t.Rows = Placeholder(c)
	if b != nil {
		return t, fmt.Sprintf("%s quotes unavailable, showing placeholder data", c)
	}
	return t, ""
}
