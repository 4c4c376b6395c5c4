package cmd

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/marketdash/fetch"
	"github.com/rustyeddy/marketdash/journal"
	"github.com/rustyeddy/marketdash/quotes"
	"github.com/rustyeddy/marketdash/view"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the dashboard to the terminal",
	Long: `Run one render cycle and print the result: the category overview
table, the tail of each symbol's series with its indicator columns, the
correlation matrix, and any warnings.

Examples:
  marketdash show
  marketdash show -c crypto -t BTC-USD,ETH-USD --ma --rsi
  marketdash show -c stocks --start 2025-01-01 --end 2025-06-30 -i weekly`,
	RunE: runShow,
}

var showTail int

func init() {
	rootCmd.AddCommand(showCmd)
	addDashboardFlags(showCmd)
	showCmd.Flags().IntVar(&showTail, "tail", 5, "rows of each series to print")
}

func runShow(cmd *cobra.Command, args []string) error {
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

	vm, err := view.Render(context.Background(), req, fetch.NewYahooSource(), quotes.NewYahooBackend())
	if err != nil {
		return err
	}
	if jnl != nil {
		if err := jnl.RecordRender(journal.FromView(vm)); err != nil {
			log.Printf("[WARN] journal render %s: %v", vm.ID, err)
		}
	}

	printOverview(vm.Overview)
	for _, sv := range vm.Symbols {
		printSymbol(sv, showTail)
	}
	printMatrix(vm)
	for _, w := range vm.Warnings {
		fmt.Printf("⚠ %s\n", w)
	}
	fmt.Printf("\nrender %s completed in %s\n", vm.ID, vm.Elapsed.Round(time.Millisecond))
	return nil
}

func printOverview(t quotes.Table) {
	fmt.Printf("\n%s", t.Title)
	if !t.Live {
		fmt.Print(" (placeholder data)")
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tNAME\tPRICE\tCHANGE %")
	for _, r := range t.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Symbol, r.Name, r.Price.StringFixed(2), r.ChangePct.StringFixed(2))
	}
	w.Flush()
}

func printSymbol(sv view.SymbolView, tail int) {
	s := sv.Series
	fmt.Printf("\n%s (%d rows)\n", s.Symbol, len(s.Bars))

	start := len(s.Bars) - tail
	if start < 0 {
		start = 0
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	header := "DATE\tCLOSE"
	if sv.Indicators.SMA != nil {
		header += fmt.Sprintf("\tMA(%d)", sv.Indicators.SMAWindow)
	}
	if sv.Indicators.RSI != nil {
		header += fmt.Sprintf("\tRSI(%d)", sv.Indicators.RSIPeriod)
	}
	if sv.Indicators.BollMid != nil {
		header += fmt.Sprintf("\tBOLL(%d) LOW/HIGH", sv.Indicators.BollingerWindow)
	}
	fmt.Fprintln(w, header)

	for i := start; i < len(s.Bars); i++ {
		row := fmt.Sprintf("%s\t%s", s.Bars[i].Date.Format("2006-01-02"), cellStr(s.Bars[i].Close))
		if sv.Indicators.SMA != nil {
			row += "\t" + cellStr(sv.Indicators.SMA[i])
		}
		if sv.Indicators.RSI != nil {
			row += "\t" + cellStr(sv.Indicators.RSI[i])
		}
		if sv.Indicators.BollMid != nil {
			row += fmt.Sprintf("\t%s / %s", cellStr(sv.Indicators.BollLower[i]), cellStr(sv.Indicators.BollUpper[i]))
		}
		fmt.Fprintln(w, row)
	}
	w.Flush()
}

func printMatrix(vm *view.ViewModel) {
	if vm.Matrix == nil {
		return
	}
	fmt.Println("\nCorrelation of daily returns")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	header := ""
	for _, s := range vm.Matrix.Symbols {
		header += "\t" + s
	}
	fmt.Fprintln(w, header)
	for i, s := range vm.Matrix.Symbols {
		row := s
		for _, v := range vm.Matrix.Values[i] {
			row += "\t" + cellStr(v)
		}
		fmt.Fprintln(w, row)
	}
	w.Flush()
}

func cellStr(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
