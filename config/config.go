// Package config loads and validates the dashboard configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/marketdash/fetch"
	"github.com/rustyeddy/marketdash/journal"
	"github.com/rustyeddy/marketdash/quotes"
	"github.com/rustyeddy/marketdash/view"
)

// Config represents the complete dashboard configuration.
type Config struct {
	Dashboard DashboardConfig `json:"dashboard" yaml:"dashboard"`
	Journal   JournalConfig   `json:"journal" yaml:"journal"`
	Server    ServerConfig    `json:"server" yaml:"server"`
}

// DashboardConfig mirrors the dashboard's control panel: category, tickers,
// date range, interval and indicator toggles.
type DashboardConfig struct {
	Category  string `json:"category" yaml:"category"`
	Tickers   string `json:"tickers,omitempty" yaml:"tickers,omitempty"` // comma-separated; empty = category defaults
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Interval  string `json:"interval" yaml:"interval"`

	ShowMovingAverage bool `json:"show_moving_average" yaml:"show_moving_average"`
	ShowRSI           bool `json:"show_rsi" yaml:"show_rsi"`
	ShowBollinger     bool `json:"show_bollinger" yaml:"show_bollinger"`
	CompareBenchmark  bool `json:"compare_benchmark" yaml:"compare_benchmark"`

	MovingAverageWindow int `json:"moving_average_window,omitempty" yaml:"moving_average_window,omitempty"`
	RSIPeriod           int `json:"rsi_period,omitempty" yaml:"rsi_period,omitempty"`
	BollingerWindow     int `json:"bollinger_window,omitempty" yaml:"bollinger_window,omitempty"`
}

// JournalConfig selects the render-cycle journal backend.
type JournalConfig struct {
	Type string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !quotes.Category(c.Dashboard.Category).Valid() {
		return fmt.Errorf("unknown dashboard.category: %s", c.Dashboard.Category)
	}
	if !fetch.Interval(c.Dashboard.Interval).Valid() {
		return fmt.Errorf("dashboard.interval must be daily, weekly or monthly, got %s", c.Dashboard.Interval)
	}
	for _, d := range []string{c.Dashboard.StartDate, c.Dashboard.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return fmt.Errorf("dates must be YYYY-MM-DD, got %s", d)
		}
	}
	if c.Dashboard.MovingAverageWindow < 0 || c.Dashboard.RSIPeriod < 0 || c.Dashboard.BollingerWindow < 0 {
		return fmt.Errorf("indicator windows must not be negative")
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv", "sqlite":
		if c.Journal.Path == "" {
			return fmt.Errorf("journal.path required for %s journal", c.Journal.Type)
		}
	default:
		return fmt.Errorf("journal.type must be none, csv or sqlite, got %s", c.Journal.Type)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// Request builds the render request described by the configuration.
func (c *Config) Request() (view.Request, error) {
	req := view.Request{
		Category:         quotes.Category(c.Dashboard.Category),
		Interval:         fetch.Interval(c.Dashboard.Interval),
		ShowSMA:          c.Dashboard.ShowMovingAverage,
		ShowRSI:          c.Dashboard.ShowRSI,
		ShowBollinger:    c.Dashboard.ShowBollinger,
		CompareBenchmark: c.Dashboard.CompareBenchmark,
		SMAWindow:        c.Dashboard.MovingAverageWindow,
		RSIPeriod:        c.Dashboard.RSIPeriod,
		BollingerWindow:  c.Dashboard.BollingerWindow,
	}
	if c.Dashboard.Tickers != "" {
		req.Tickers = view.ParseTickers(c.Dashboard.Tickers)
	}
	if c.Dashboard.StartDate != "" {
		t, err := time.Parse("2006-01-02", c.Dashboard.StartDate)
		if err != nil {
			return view.Request{}, fmt.Errorf("start_date: %w", err)
		}
		req.Start = t
	}
	if c.Dashboard.EndDate != "" {
		t, err := time.Parse("2006-01-02", c.Dashboard.EndDate)
		if err != nil {
			return view.Request{}, fmt.Errorf("end_date: %w", err)
		}
		req.End = t
	}
	return req, nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			Category:            string(quotes.Stocks),
			Interval:            string(fetch.IntervalDaily),
			ShowMovingAverage:   true,
			ShowRSI:             false,
			ShowBollinger:       false,
			CompareBenchmark:    false,
			MovingAverageWindow: 50,
			RSIPeriod:           14,
			BollingerWindow:     20,
		},
		Journal: JournalConfig{
			Type: "none",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// OpenJournal returns the journal backend selected by the configuration.
func (c *Config) OpenJournal() (journal.Journal, error) {
	switch c.Journal.Type {
	case "csv":
		return journal.NewCSV(c.Journal.Path)
	case "sqlite":
		return journal.NewSQLite(c.Journal.Path)
	default:
		return journal.NewNoop(), nil
	}
}
