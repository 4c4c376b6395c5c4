package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/marketdash/quotes"
)

var quotesCmd = &cobra.Command{
	Use:   "quotes [category]",
	Short: "Print a category's overview table",
	Long: `Fetch current quotes for a category's headline symbols. Falls back
to placeholder data when the provider is unreachable.

Examples:
  marketdash quotes
  marketdash quotes crypto`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuotes,
}

func init() {
	rootCmd.AddCommand(quotesCmd)
}

func runQuotes(cmd *cobra.Command, args []string) error {
	cat := quotes.Stocks
	if len(args) == 1 {
		cat = quotes.Category(strings.ToLower(args[0]))
		if !cat.Valid() {
			return fmt.Errorf("unknown category %q (want one of: %s)", args[0], categoryList())
		}
	}

	table, warn := quotes.Fetch(quotes.NewYahooBackend(), cat)
	printOverview(table)
	if warn != "" {
		fmt.Printf("⚠ %s\n", warn)
	}
	return nil
}

func categoryList() string {
	var names []string
	for _, c := range quotes.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
