package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rustyeddy/marketdash/market"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// YahooSource fetches historical series from the Yahoo Finance v8 chart API.
//
// The request's end date is inclusive: period2 is bumped by one day so bars
// stamped on the end date itself are returned.
type YahooSource struct {
	Client  *http.Client
	BaseURL string
}

// NewYahooSource returns a YahooSource with a 30 second request timeout.
func NewYahooSource() *YahooSource {
	return &YahooSource{
		Client:  &http.Client{Timeout: 30 * time.Second},
		BaseURL: defaultBaseURL,
	}
}

var intervalCodes = map[Interval]string{
	IntervalDaily:   "1d",
	IntervalWeekly:  "1wk",
	IntervalMonthly: "1mo",
}

// yahooChart is the response structure from the Yahoo chart endpoint. The
// quote arrays use interface{} cells because missing bars arrive as nulls.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Fetch retrieves one symbol's raw series. Provider errors come back as
// errors; a response with no bars comes back as an empty RawSeries.
func (y *YahooSource) Fetch(ctx context.Context, symbol string, start, end time.Time, interval Interval) (market.RawSeries, error) {
	code, ok := intervalCodes[interval]
	if !ok {
		return market.RawSeries{}, fmt.Errorf("unsupported interval %q", interval)
	}

	u := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=%s",
		y.BaseURL, url.PathEscape(symbol), start.Unix(), end.Add(24*time.Hour).Unix(), code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return market.RawSeries{}, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := y.Client.Do(req)
	if err != nil {
		return market.RawSeries{}, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return market.RawSeries{}, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return market.RawSeries{}, fmt.Errorf("yahoo: status %d", resp.StatusCode)
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return market.RawSeries{}, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return market.RawSeries{}, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return market.RawSeries{}, nil // no data, not an error
	}

	result := chart.Chart.Result[0]
	raw := market.RawSeries{Dates: make([]time.Time, len(result.Timestamp))}
	for i, ts := range result.Timestamp {
		raw.Dates[i] = time.Unix(ts, 0).UTC()
	}
	if len(result.Indicators.Quote) > 0 {
		q := result.Indicators.Quote[0]
		raw.Columns = []market.RawColumn{
			{Field: "open", Cells: toCells(q.Open, len(raw.Dates))},
			{Field: "high", Cells: toCells(q.High, len(raw.Dates))},
			{Field: "low", Cells: toCells(q.Low, len(raw.Dates))},
			{Field: "close", Cells: toCells(q.Close, len(raw.Dates))},
			{Field: "volume", Cells: toCells(q.Volume, len(raw.Dates))},
		}
	}
	return raw, nil
}

// toCells converts a nullable JSON number array into raw cells: null values
// become empty cells, which the normalizer coerces to NaN.
func toCells(values []interface{}, n int) [][]float64 {
	cells := make([][]float64, n)
	for i := 0; i < n && i < len(values); i++ {
		switch v := values[i].(type) {
		case float64:
			cells[i] = []float64{v}
		case int:
			cells[i] = []float64{float64(v)}
		}
	}
	return cells
}
