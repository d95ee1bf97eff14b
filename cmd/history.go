package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and manage the query log",
	Long: `Commands for the local query log.

Every successful current-conditions lookup appends one entry (location,
temperature, condition, time). The log is an intentional accumulator, not a
cache: entries persist until you clear them. Use --no-history to skip
logging for a single lookup.`,
}

// ─── history list ─────────────────────────────────────────────────────────────

var historyLimit int

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent lookups, newest first",
	Example: `  nimbus history list
  nimbus history list --limit 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		if err := deps.RequireHistory(); err != nil {
			return err
		}
		defer deps.Close()

		entries, err := deps.History.List(historyLimit)
		if err != nil {
			return fmt.Errorf("reading history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No lookups recorded yet.")
			return nil
		}

		printSimpleTable(cmd.OutOrStdout(), []string{"WHEN", "QUERY", "LOCATION", "TEMP", "CONDITION"}, func(add func(...string)) {
			for _, e := range entries {
				query := e.Query
				if query == "" {
					query = "(auto)"
				}
				add(
					e.When.Local().Format("2006-01-02 15:04"),
					query,
					e.Location,
					fmt.Sprintf("%.0f°C", e.TempC),
					e.Condition,
				)
			}
		})
		return nil
	},
}

// ─── history stats ────────────────────────────────────────────────────────────

var historyStatsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Show entry count and size of the query log",
	Example: `  nimbus history stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		if err := deps.RequireHistory(); err != nil {
			return err
		}
		defer deps.Close()

		count, bytes, err := deps.History.Stats()
		if err != nil {
			return fmt.Errorf("reading history stats: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Database: %s\n\n", deps.History.Path())
		printSimpleTable(cmd.OutOrStdout(), []string{"ENTRIES", "SIZE"}, func(add func(...string)) {
			add(fmt.Sprintf("%d", count), humanBytes(bytes))
		})
		return nil
	},
}

// ─── history clear ────────────────────────────────────────────────────────────

var historyClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Delete all logged lookups",
	Example: `  nimbus history clear`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		if err := deps.RequireHistory(); err != nil {
			return err
		}
		defer deps.Close()

		if err := deps.History.Clear(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ History cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20,
		"maximum entries to show (0 = all)")
}
