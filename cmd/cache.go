package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimbus-weather/nimbus/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the payload cache",
	Long: `Commands for inspecting and clearing the on-disk payload cache.

The cache holds one file per (location, language, data kind) tuple. Weather
entries are fresh for 15 minutes, air-quality entries for 30; stale entries
are refetched transparently, and the oldest entries are pruned once the
cache exceeds its size bound.`,
}

// ─── cache path ───────────────────────────────────────────────────────────────

var cachePathCmd = &cobra.Command{
	Use:     "path",
	Short:   "Print the cache directory",
	Example: `  nimbus cache path`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		if err := deps.RequireCache(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), deps.Cache.Dir())
		return nil
	},
}

// ─── cache stats ──────────────────────────────────────────────────────────────

var cacheStatsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Show entry count and size of the cache",
	Example: `  nimbus cache stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		if err := deps.RequireCache(); err != nil {
			return err
		}

		count, bytes, err := deps.Cache.Stats()
		if err != nil {
			return fmt.Errorf("reading cache stats: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Cache: %s\n\n", deps.Cache.Dir())
		printSimpleTable(cmd.OutOrStdout(), []string{"ENTRIES", "SIZE", "LIMIT"}, func(add func(...string)) {
			add(fmt.Sprintf("%d", count), humanBytes(bytes), fmt.Sprintf("%d entries", cache.MaxEntries))
		})
		return nil
	},
}

// ─── cache clear ──────────────────────────────────────────────────────────────

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached payloads",
	Long: `Delete every cached payload. Idempotent: clearing an empty or nonexistent
cache succeeds with the same confirmation.`,
	Example: `  nimbus cache clear`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		if err := cache.Clear(deps.Config.CacheDir); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Cache cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cachePathCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
