package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/marketdash/export"
	"github.com/rustyeddy/marketdash/fetch"
	"github.com/rustyeddy/marketdash/journal"
	"github.com/rustyeddy/marketdash/view"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the aligned frame and correlation matrix as CSV",
	Long: `Run one render cycle and write its derived views to CSV files.

Examples:
  marketdash export --frame combined.csv
  marketdash export -c crypto --frame frame.csv --matrix corr.csv --ma`,
	RunE: runExport,
}

var (
	exportFramePath  string
	exportMatrixPath string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	addDashboardFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportFramePath, "frame", "", "write the aligned frame CSV to this path")
	exportCmd.Flags().StringVar(&exportMatrixPath, "matrix", "", "write the correlation matrix CSV to this path")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFramePath == "" && exportMatrixPath == "" {
		return fmt.Errorf("nothing to export: set --frame and/or --matrix")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	req, err := requestFromFlags(cfg)
	if err != nil {
		return err
	}

	jnl, err := cfg.OpenJournal()
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if jnl != nil {
		defer jnl.Close()
	}

	vm, err := view.Render(context.Background(), req, fetch.NewYahooSource(), nil)
	if err != nil {
		return err
	}
	if jnl != nil {
		if err := jnl.RecordRender(journal.FromView(vm)); err != nil {
			log.Printf("[WARN] journal render %s: %v", vm.ID, err)
		}
	}

	for _, w := range vm.Warnings {
		fmt.Printf("⚠ %s\n", w)
	}

	if exportFramePath != "" {
		if vm.Frame == nil {
			return fmt.Errorf("aligned frame unavailable, nothing to write to %s", exportFramePath)
		}
		if err := export.WriteFrameFile(exportFramePath, vm.Frame); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		fmt.Printf("✓ Wrote aligned frame: %s\n", exportFramePath)
	}
	if exportMatrixPath != "" {
		if vm.Matrix == nil {
			return fmt.Errorf("correlation matrix unavailable, nothing to write to %s", exportMatrixPath)
		}
		if err := export.WriteMatrixFile(exportMatrixPath, vm.Matrix); err != nil {
			return fmt.Errorf("write matrix: %w", err)
		}
		fmt.Printf("✓ Wrote correlation matrix: %s\n", exportMatrixPath)
	}
	return nil
}
