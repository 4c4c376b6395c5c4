package quotes

import (
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// YahooBackend fetches current quotes from Yahoo Finance.
type YahooBackend struct{}

// NewYahooBackend returns a live quote backend.
func NewYahooBackend() *YahooBackend {
	return &YahooBackend{}
}

// Quotes returns one row per symbol the provider knows about. Prices and
// change percentages are rounded to two decimal places for display.
func (y *YahooBackend) Quotes(symbols []string) ([]Row, error) {
	var rows []Row

	iter := quote.List(symbols)
	for iter.Next() {
		q := iter.Quote()
		name := q.ShortName
		if name == "" {
			name = q.Symbol
		}
		rows = append(rows, Row{
			Symbol:    q.Symbol,
			Name:      name,
			Price:     decimal.NewFromFloat(q.RegularMarketPrice).Round(2),
			ChangePct: decimal.NewFromFloat(q.RegularMarketChangePercent).Round(2),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}
