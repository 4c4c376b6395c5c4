package fetch

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/marketdash/market"
)

const chartFixture = `{
  "chart": {
    "result": [{
      "timestamp": [1735689600, 1735776000, 1735862400],
      "indicators": {
        "quote": [{
          "open":   [100.0, 101.0, null],
          "high":   [102.0, 103.0, null],
          "low":    [99.0, 100.5, null],
          "close":  [101.5, 102.5, null],
          "volume": [1000, 1100, null]
        }]
      }
    }],
    "error": null
  }
}`

func yahooTestSource(t *testing.T, status int, body string) (*YahooSource, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	src := NewYahooSource()
	src.BaseURL = srv.URL
	return src, srv
}

func TestYahooFetchDecodesChart(t *testing.T) {
	src, _ := yahooTestSource(t, http.StatusOK, chartFixture)

	raw, err := src.Fetch(context.Background(), "AAPL",
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		IntervalDaily)
	require.NoError(t, err)
	require.Len(t, raw.Dates, 3)

	s := market.Normalize(raw, "AAPL")
	require.Len(t, s.Bars, 3)
	assert.Equal(t, 101.5, s.Bars[0].Close)
	assert.Equal(t, 1100.0, s.Bars[1].Volume)
	// Null cells survive the trip as NaN.
	assert.True(t, math.IsNaN(s.Bars[2].Close))
}

func TestYahooFetchNoData(t *testing.T) {
	src, _ := yahooTestSource(t, http.StatusOK, `{"chart":{"result":[],"error":null}}`)

	raw, err := src.Fetch(context.Background(), "GONE", time.Now().AddDate(0, -1, 0), time.Now(), IntervalDaily)
	require.NoError(t, err)
	assert.True(t, raw.Empty())
}

func TestYahooFetchProviderError(t *testing.T) {
	body := `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`
	src, _ := yahooTestSource(t, http.StatusOK, body)

	_, err := src.Fetch(context.Background(), "NOPE", time.Now().AddDate(0, -1, 0), time.Now(), IntervalDaily)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No data found")
}

func TestYahooFetchBadStatus(t *testing.T) {
	src, _ := yahooTestSource(t, http.StatusTooManyRequests, "rate limited")

	_, err := src.Fetch(context.Background(), "AAPL", time.Now().AddDate(0, -1, 0), time.Now(), IntervalDaily)
	assert.Error(t, err)
}

func TestYahooFetchUnsupportedInterval(t *testing.T) {
	src := NewYahooSource()

	_, err := src.Fetch(context.Background(), "AAPL", time.Now(), time.Now(), Interval("hourly"))
	assert.Error(t, err)
}

func TestYahooEndDateInclusive(t *testing.T) {
	var gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	}))
	defer srv.Close()

	src := NewYahooSource()
	src.BaseURL = srv.URL

	end := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	_, err := src.Fetch(context.Background(), "AAPL", end.AddDate(0, 0, -2), end, IntervalDaily)
	require.NoError(t, err)
	// period2 is one day past the requested end date.
	assert.Contains(t, gotURL, "period2=1735948800")
}
