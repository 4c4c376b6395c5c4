package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/marketdash/config"
	"github.com/rustyeddy/marketdash/fetch"
	"github.com/rustyeddy/marketdash/quotes"
	"github.com/rustyeddy/marketdash/view"
)

var rootCmd = &cobra.Command{
	Use:   "marketdash",
	Short: "A financial dashboard for stocks, crypto, forex and commodities",
	Long: `Marketdash fetches financial time series, computes technical
indicators and produces chart-ready views from the terminal or over HTTP.

It provides tools for:
  - Category overview tables (stocks, markets, crypto, forex, commodities)
  - Historical series with moving average, RSI and Bollinger Bands
  - Multi-symbol overlay charts aligned on a shared date axis
  - Correlation matrices over daily returns
  - CSV export of the aligned frame and correlation matrix

Complete documentation is available at https://github.com/rustyeddy/marketdash`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (YAML or JSON)")
}

// loadConfig returns the file config when --config is set, defaults otherwise.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(configPath)
}

// requestFromFlags merges the shared dashboard flags over the config request.
func requestFromFlags(cfg *config.Config) (view.Request, error) {
	req, err := cfg.Request()
	if err != nil {
		return view.Request{}, err
	}
	if flagCategory != "" {
		req.Category = quotes.Category(flagCategory)
		if flagTickers == "" && cfg.Dashboard.Tickers == "" {
			req.Tickers = nil // re-derive defaults for the flag category
		}
	}
	if flagTickers != "" {
		req.Tickers = view.ParseTickers(flagTickers)
	}
	if flagInterval != "" {
		req.Interval = fetch.Interval(flagInterval)
	}
	if err := applyDateFlag(flagStart, &req.Start); err != nil {
		return view.Request{}, err
	}
	if err := applyDateFlag(flagEnd, &req.End); err != nil {
		return view.Request{}, err
	}
	if flagMA {
		req.ShowSMA = true
	}
	if flagRSI {
		req.ShowRSI = true
	}
	if flagBollinger {
		req.ShowBollinger = true
	}
	if flagBenchmark {
		req.CompareBenchmark = true
	}
	return req, nil
}
