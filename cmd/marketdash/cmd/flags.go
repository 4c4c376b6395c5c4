package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// Shared dashboard flags, registered on the commands that render.
var (
	flagCategory  string
	flagTickers   string
	flagStart     string
	flagEnd       string
	flagInterval  string
	flagMA        bool
	flagRSI       bool
	flagBollinger bool
	flagBenchmark bool
)

func addDashboardFlags(c *cobra.Command) {
	c.Flags().StringVarP(&flagCategory, "category", "c", "", "category: stocks, markets, crypto, forex or commodities")
	c.Flags().StringVarP(&flagTickers, "tickers", "t", "", "comma-separated ticker list (default: category defaults)")
	c.Flags().StringVar(&flagStart, "start", "", "start date YYYY-MM-DD (default: one year back)")
	c.Flags().StringVar(&flagEnd, "end", "", "end date YYYY-MM-DD, inclusive (default: today)")
	c.Flags().StringVarP(&flagInterval, "interval", "i", "", "bar interval: daily, weekly or monthly")
	c.Flags().BoolVar(&flagMA, "ma", false, "add the 50-day moving average")
	c.Flags().BoolVar(&flagRSI, "rsi", false, "add the 14-day RSI")
	c.Flags().BoolVar(&flagBollinger, "bollinger", false, "add 20-day Bollinger Bands")
	c.Flags().BoolVar(&flagBenchmark, "benchmark", false, "compare against the category benchmark index")
}

func applyDateFlag(v string, dst *time.Time) error {
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return fmt.Errorf("want YYYY-MM-DD, got %q", v)
	}
	*dst = t
	return nil
}
