package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/marketdash/fetch"
	"github.com/rustyeddy/marketdash/quotes"
	"github.com/rustyeddy/marketdash/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Start the HTTP adapter. Every request triggers one full render
cycle; nothing is cached between requests.

Routes:
  GET /api/v1/dashboard            dashboard view model as JSON
  GET /api/v1/dashboard/frame.csv  aligned frame CSV download
  GET /api/v1/dashboard/matrix.csv correlation matrix CSV download
  GET /api/v1/quotes/:category     category overview table
  GET /healthz                     liveness check

Example:
  marketdash serve --addr :8080`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	jnl, err := cfg.OpenJournal()
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if jnl != nil {
		defer jnl.Close()
	}

	srv := server.New(fetch.NewYahooSource(), quotes.NewYahooBackend(), jnl)
	return srv.Run(addr)
}
