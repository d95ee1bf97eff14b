package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/nimbus-weather/nimbus/internal/model"
	"github.com/nimbus-weather/nimbus/internal/render"
	"github.com/nimbus-weather/nimbus/internal/view"
)

var currentCmd = &cobra.Command{
	Use:   "current [location]",
	Short: "Show current conditions (the default view)",
	Long: `Show current conditions for a location, or for the auto-detected
location when none is given.

The column set adapts to terminal width (full ≥100 columns, compact ≥80,
minimal below) unless --tier pins it. Air quality appears when the
air-quality service has data for the location.`,
	Example: `  nimbus current
  nimbus current "New York"
  nimbus current Oslo --tier minimal
  nimbus current Tokyo --format raw`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCurrent(cmd, args)
	},
}

// runCurrent backs both `nimbus current` and the bare root invocation.
func runCurrent(cmd *cobra.Command, args []string) error {
	deps, err := buildDeps()
	if err != nil {
		return err
	}
	defer deps.Close()

	start := time.Now()
	query := queryArg(args)

	snap, cacheHit, err := loadSnapshot(cmd, deps, query, true)
	if err != nil {
		return err
	}
	p, err := viewParams(deps, snap)
	if err != nil {
		return err
	}

	width := render.TerminalWidth()
	tier, err := render.SelectTier(deps.Config.Tier, width)
	if err != nil {
		return err
	}
	slog.Debug("tier selected", "tier", tier.String(), "width", width)

	logHistory(deps, query, snap, cacheHit)

	command := fmt.Sprintf("current %s", query)
	if tier == render.TierOneLine {
		line := render.FitLine(view.OneLine(snap, p), width)
		result := newResult(model.KindOneLine, command, snap, line, cacheHit, start)
		return emit(cmd.OutOrStdout(), deps, result, snap)
	}

	rep := render.Project(view.Current(snap, p), tier)
	result := newResult(model.KindReport, command, snap, rep, cacheHit, start)
	return emit(cmd.OutOrStdout(), deps, result, snap)
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
