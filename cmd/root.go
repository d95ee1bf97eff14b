// Package cmd implements the nimbus CLI command tree.
// This file defines the root command and registers all global persistent flags.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nimbus-weather/nimbus/internal/app"
	"github.com/nimbus-weather/nimbus/internal/cache"
	"github.com/nimbus-weather/nimbus/internal/config"
	"github.com/nimbus-weather/nimbus/internal/meteo"
)

// globalFlags holds the parsed values of all persistent (global) flags.
// Commands read from the Config they receive, which these override.
var globalFlags struct {
	Imperial   bool
	Metric     bool
	Mode       string
	Format     string
	Tier       string
	Lang       string
	Refresh    bool
	ClearCache bool
	NoHistory  bool
	Timeout    string
	Debug      bool
}

// rootCmd is the base command. Running `nimbus` with no subcommand shows the
// current conditions for the auto-detected location; a positional argument
// is treated as a location query.
var rootCmd = &cobra.Command{
	Use:   "nimbus [location]",
	Short: "nimbus — weather conditions in your terminal",
	Long: `nimbus is a command-line weather client. It resolves a location, fetches
current conditions, forecasts, astronomy and air quality, and renders them
as tables, one-line summaries or raw records.

Weather data from wttr.in; geocoding and air quality from Open-Meteo.

Quick start:
  nimbus                    # current conditions, location auto-detected
  nimbus "Paris"            # current conditions for a place
  nimbus forecast Oslo      # multi-day forecast
  nimbus line --mode emoji  # one-line summary for a status bar`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCurrent(cmd, args)
	},
}

// Execute is the entry point called by main. Remediation hints are attached
// per error class: a missing location suggests a broader query, a transport
// failure echoes the underlying message.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var nf *meteo.NotFoundError
		if errors.As(err, &nf) {
			fmt.Fprintln(os.Stderr, "Hint: try a nearby major place name, e.g. the closest city.")
		}
		os.Exit(1)
	}
}

// buildDeps resolves config and constructs the dependency container.
// Called at the start of each command's RunE.
func buildDeps() (*app.Deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// Apply CLI flag overrides. Either unit flag displaces a file-level
	// choice entirely; imperial wins when both flags are set.
	if globalFlags.Metric {
		cfg.Imperial, cfg.Metric = false, true
	}
	if globalFlags.Imperial {
		cfg.Imperial, cfg.Metric = true, false
	}
	if globalFlags.Mode != "" {
		cfg.Mode = globalFlags.Mode
	}
	if globalFlags.Format != "" {
		cfg.Format = globalFlags.Format
	}
	if globalFlags.Tier != "" {
		cfg.Tier = globalFlags.Tier
	}
	if globalFlags.Lang != "" {
		cfg.Lang = globalFlags.Lang
	}
	cfg.Refresh = globalFlags.Refresh
	cfg.NoHistory = globalFlags.NoHistory
	cfg.Debug = globalFlags.Debug
	if globalFlags.Timeout != "" {
		if d, err2 := time.ParseDuration(globalFlags.Timeout); err2 == nil {
			cfg.Timeout = d
		}
	}

	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	return app.New(cfg), nil
}

// runClearCache deletes the configured cache directory, resolving it through
// the same config layering every command uses, and prints the confirmation.
// Clearing an empty or nonexistent cache succeeds with the same message.
func runClearCache(w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cache.Clear(cfg.CacheDir); err != nil {
		return err
	}
	fmt.Fprintln(w, "✓ Cache cleared")
	return nil
}

func init() {
	// --clear-cache short-circuits whatever command was invoked: it always
	// succeeds and always prints the same confirmation, even when the cache
	// directory never existed.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !globalFlags.ClearCache {
			return nil
		}
		if err := runClearCache(cmd.OutOrStdout()); err != nil {
			return err
		}
		os.Exit(0)
		return nil
	}

	pf := rootCmd.PersistentFlags()

	pf.BoolVar(&globalFlags.Imperial, "imperial", false,
		"use imperial units (°F, mph); wins over --metric when both are set")
	pf.BoolVar(&globalFlags.Metric, "metric", false,
		"use metric units (°C, km/h)")
	pf.StringVar(&globalFlags.Mode, "mode", "",
		"display mode: glyph|emoji|text (default: glyph)")
	pf.StringVar(&globalFlags.Format, "format", "",
		"output format: table|raw|json (default: table)")
	pf.StringVar(&globalFlags.Tier, "tier", "",
		"pin verbosity tier: full|compact|minimal|oneline (default: by terminal width)")
	pf.StringVar(&globalFlags.Lang, "lang", "",
		"language code for geocoding, e.g. fr, de")
	pf.BoolVar(&globalFlags.Refresh, "refresh", false,
		"force re-fetch and overwrite cached entries")
	pf.BoolVar(&globalFlags.ClearCache, "clear-cache", false,
		"delete all cached payloads and exit")
	pf.BoolVar(&globalFlags.NoHistory, "no-history", false,
		"do not record this lookup in the query log")
	pf.StringVar(&globalFlags.Timeout, "timeout", "",
		"HTTP request timeout (e.g. 10s, 1m)")
	pf.BoolVar(&globalFlags.Debug, "debug", false,
		"log cache decisions, URLs and responses")
}
