package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/marketdash/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List recent render cycles from a SQLite journal",
	Long: `Print the most recent journaled render cycles, newest first.

Example:
  marketdash journal --db renders.db --limit 20`,
	RunE: runJournal,
}

var (
	journalDBPath string
	journalLimit  int
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.Flags().StringVar(&journalDBPath, "db", "", "path to the SQLite journal (required)")
	journalCmd.Flags().IntVar(&journalLimit, "limit", 20, "maximum records to list")
	journalCmd.MarkFlagRequired("db")
}

func runJournal(cmd *cobra.Command, args []string) error {
	jnl, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer jnl.Close()

	records, err := jnl.ListRenders(context.Background(), journalLimit)
	if err != nil {
		return fmt.Errorf("list renders: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("journal is empty")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tRENDER\tCATEGORY\tSYMBOLS\tINTERVAL\tDATA\tWARN\tMS")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
			r.Time.Format(time.RFC3339), r.RenderID, r.Category, r.Symbols,
			r.Interval, r.SymbolsWithData, r.Warnings, r.ElapsedMS)
	}
	return w.Flush()
}
